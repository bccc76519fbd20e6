package extract

import (
	"strings"

	"github.com/Sena-ops/payguard/internal/catalog"
	"github.com/Sena-ops/payguard/internal/model"
)

// Extract aplica as regras ao texto e devolve um finding por ocorrência,
// na ordem regra-então-offset, sem deduplicação. Match é puramente textual:
// ocorrências em strings e comentários contam igual.
func Extract(content, path string, rules []catalog.Rule) []model.Finding {
	var findings []model.Finding
	for _, rule := range rules {
		for _, loc := range rule.Pattern.FindAllStringIndex(content, -1) {
			findings = append(findings, model.Finding{
				Type:     rule.Name,
				File:     path,
				Line:     lineOf(content, loc[0]),
				Severity: rule.Severity,
				Message:  rule.Message,
			})
		}
	}
	return findings
}

// lineOf: 1 + quantidade de '\n' estritamente antes do início do match.
func lineOf(content string, offset int) int {
	return 1 + strings.Count(content[:offset], "\n")
}
