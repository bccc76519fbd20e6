package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Cores
	Gray   = lipgloss.Color("#555")
	Green  = lipgloss.Color("#2ecc71")
	Red    = lipgloss.Color("#e74c3c")
	Yellow = lipgloss.Color("#f1c40f")
	White  = lipgloss.Color("#ecf0f1")

	HeaderStyle = lipgloss.NewStyle().Foreground(White).Bold(true)
	PassStyle   = lipgloss.NewStyle().Foreground(Green)
	FailStyle   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	WarnStyle   = lipgloss.NewStyle().Foreground(Yellow)
	MetaStyle   = lipgloss.NewStyle().Foreground(Gray)
)
