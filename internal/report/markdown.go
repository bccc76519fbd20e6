package report

import (
	"fmt"
	"strings"

	"github.com/Sena-ops/payguard/internal/model"
)

var priorityEmoji = map[model.Severity]string{
	model.SevCritical: "🚨",
	model.SevHigh:     "⚠️",
	model.SevMedium:   "📋",
	model.SevInfo:     "ℹ️",
}

// RenderMarkdown gera o resumo em markdown para comentário de PR.
func RenderMarkdown(rep *model.Report) string {
	var b strings.Builder
	s := rep.Summary

	b.WriteString("# 🔒 Security Scan Results\n\n")
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Total Issues:** %d\n", s.TotalIssues)
	fmt.Fprintf(&b, "- **Critical:** %d\n", s.CriticalCount)
	fmt.Fprintf(&b, "- **High:** %d\n", s.HighCount)
	fmt.Fprintf(&b, "- **Medium:** %d\n", s.MediumCount)
	fmt.Fprintf(&b, "- **Low:** %d\n", s.LowCount)
	fmt.Fprintf(&b, "- **Info:** %d\n", s.InfoCount)
	b.WriteString("\n## Scan Coverage\n")

	if scan := rep.ComplianceScan; scan != nil {
		b.WriteString("\n### 🔍 Compliance Scan\n")
		fmt.Fprintf(&b, "- **Files Scanned:** %d\n", scan.ScannedFiles)
		fmt.Fprintf(&b, "- **Secrets Found:** %d\n", len(scan.SecretsFound))
		fmt.Fprintf(&b, "- **Payment Issues:** %d\n", len(scan.PaymentIssues))
		fmt.Fprintf(&b, "- **Dependency Issues:** %d\n", len(scan.DependencyIssues))
	}

	if rep.HasSection("dependency_scan") {
		b.WriteString("\n### 📦 Dependency Vulnerability Scan\n")
		if rep.DependencyScan.NPMAudit != nil {
			b.WriteString("- ✅ npm audit completed\n")
		}
		if len(rep.DependencyScan.AuditCI) > 0 {
			b.WriteString("- ✅ audit-ci analysis completed\n")
		}
	}

	if rep.HasSection("eslint_security") {
		b.WriteString("\n### 🔧 ESLint Security Scan\n- ✅ Security linting completed\n")
	}

	if len(rep.Recommendations) > 0 {
		b.WriteString("\n## 🎯 Recommendations\n")
		for _, rec := range rep.Recommendations {
			emoji, ok := priorityEmoji[rec.Priority]
			if !ok {
				emoji = "ℹ️"
			}
			fmt.Fprintf(&b, "\n**%s %s:** %s\n", emoji, rec.Priority, rec.Message)
			fmt.Fprintf(&b, "*Action:* %s\n", rec.Action)
		}
	}

	fmt.Fprintf(&b, "\n---\n*Scan completed at %s*\n", rep.ScanTimestamp)
	return b.String()
}
