package deps

import (
	"github.com/Sena-ops/payguard/internal/catalog"
	"github.com/Sena-ops/payguard/internal/model"
)

// ScanManifest aplica as regras de dependência ao texto de um manifesto
// (package.json, lockfiles). No máximo um finding por regra por arquivo:
// lockfiles repetem o mesmo pacote várias vezes.
func ScanManifest(content, path string, rules []catalog.Rule) []model.Finding {
	var findings []model.Finding
	for _, rule := range rules {
		if !rule.Pattern.MatchString(content) {
			continue
		}
		findings = append(findings, model.Finding{
			Type:     "vulnerable_dependency",
			Package:  rule.Name,
			File:     path,
			Severity: rule.Severity,
			Message:  rule.Message,
		})
	}
	return findings
}
