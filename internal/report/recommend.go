package report

import (
	"fmt"

	"github.com/Sena-ops/payguard/internal/model"
)

// BuildRecommendations sintetiza as recomendações em ordem de prioridade.
// As condições são independentes: todas as aplicáveis são emitidas. A
// recomendação INFO sai apenas quando nenhum bucket tem issues.
func BuildRecommendations(rep *model.Report) []model.Recommendation {
	recs := []model.Recommendation{}
	summary := rep.Summary

	if summary.CriticalCount > 0 {
		recs = append(recs, model.Recommendation{
			Priority: model.SevCritical,
			Message:  fmt.Sprintf("🚨 %d critical security issues found. Immediate action required.", summary.CriticalCount),
			Action:   "Review and fix all critical issues before deployment",
		})
	}
	if summary.HighCount > 0 {
		recs = append(recs, model.Recommendation{
			Priority: model.SevHigh,
			Message:  fmt.Sprintf("⚠️ %d high severity issues found.", summary.HighCount),
			Action:   "Address high severity issues in current sprint",
		})
	}

	// condição independente dos buckets numéricos
	if scan := rep.ComplianceScan; scan != nil {
		if len(scan.SecretsFound) > 0 {
			recs = append(recs, model.Recommendation{
				Priority: model.SevCritical,
				Message:  fmt.Sprintf("🔑 %d potential secrets found in code", len(scan.SecretsFound)),
				Action:   "Remove all hardcoded secrets and use environment variables",
			})
		}
		if len(scan.PaymentIssues) > 0 {
			recs = append(recs, model.Recommendation{
				Priority: model.SevHigh,
				Message:  fmt.Sprintf("💳 %d payment data issues found", len(scan.PaymentIssues)),
				Action:   "Review payment data handling for PCI compliance",
			})
		}
	}

	if rep.HasSection("dependency_scan") {
		recs = append(recs, model.Recommendation{
			Priority: model.SevMedium,
			Message:  "📦 Run 'npm audit fix' to automatically resolve dependency vulnerabilities",
			Action:   "Update vulnerable dependencies to secure versions",
		})
	}

	if summary.TotalIssues == 0 {
		recs = append(recs, model.Recommendation{
			Priority: model.SevInfo,
			Message:  "✅ No security issues detected in this scan",
			Action:   "Continue following security best practices",
		})
	}

	return recs
}
