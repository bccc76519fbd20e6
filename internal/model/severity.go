package model

import "strings"

// NormalizeSeverity mapeia o vocabulário de severidade de cada ferramenta
// externa para os cinco buckets canônicos. Valores não reconhecidos caem
// em INFO, nunca são descartados.
func NormalizeSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SevCritical
	case "high":
		return SevHigh
	case "medium", "moderate":
		return SevMedium
	case "low":
		return SevLow
	case "info":
		return SevInfo
	default:
		return SevInfo
	}
}
