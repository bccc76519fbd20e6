package gate

import (
	"fmt"

	"github.com/Sena-ops/payguard/internal/model"
)

// Evaluate roda todos os checks do gate contra o relatório normalizado e a
// política. Função pura: o mesmo par relatório+política produz sempre o
// mesmo Verdict. Todos os checks rodam mesmo depois de uma violação.
func Evaluate(rep *model.Report, pol Policy) model.Verdict {
	v := model.Verdict{
		PassedChecks: []string{},
		Violations:   []string{},
		Warnings:     []string{},
	}

	checkSeverityBuckets(rep, pol, &v)
	checkCompliance(rep, pol, &v)
	checkDependencies(rep, pol, &v)
	checkRequiredScans(rep, pol, &v)
	checkMedium(rep, pol, &v)

	v.Pass = len(v.Violations) == 0
	return v
}

// check 1 e 2: buckets crítico e alto do summary (bloqueantes).
func checkSeverityBuckets(rep *model.Report, pol Policy, v *model.Verdict) {
	s := rep.Summary

	if s.CriticalCount > pol.MaxCriticalIssues {
		v.Violations = append(v.Violations, fmt.Sprintf(
			"❌ Critical issues found: %d (max allowed: %d)", s.CriticalCount, pol.MaxCriticalIssues))
	} else {
		v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ Critical issues: %d", s.CriticalCount))
	}

	if s.HighCount > pol.MaxHighIssues {
		v.Violations = append(v.Violations, fmt.Sprintf(
			"❌ High severity issues found: %d (max allowed: %d)", s.HighCount, pol.MaxHighIssues))
	} else {
		v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ High severity issues: %d", s.HighCount))
	}
}

// checks 3 e 4: segredos e dados de pagamento, lidos das seções brutas do
// scan de conformidade e não dos buckets do summary (bloqueantes).
func checkCompliance(rep *model.Report, pol Policy, v *model.Verdict) {
	scan := rep.ComplianceScan
	if scan == nil {
		v.Violations = append(v.Violations, "❌ Compliance scan results not found")
		return
	}

	secrets := len(scan.SecretsFound)
	if secrets > pol.MaxSecrets {
		v.Violations = append(v.Violations, fmt.Sprintf(
			"❌ Secrets found in code: %d (max allowed: %d)", secrets, pol.MaxSecrets))
	} else {
		v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ Secrets in code: %d", secrets))
	}

	payments := len(scan.PaymentIssues)
	if payments > pol.MaxPaymentIssues {
		v.Violations = append(v.Violations, fmt.Sprintf(
			"❌ Payment data issues: %d (max allowed: %d)", payments, pol.MaxPaymentIssues))
	} else {
		v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ Payment data issues: %d", payments))
	}
}

// check 5: vulnerabilidades de dependência, só warning, nunca bloqueia.
func checkDependencies(rep *model.Report, pol Policy, v *model.Verdict) {
	if !rep.HasSection("dependency_scan") {
		v.Warnings = append(v.Warnings, "⚠️ Dependency scan results not found")
		return
	}

	total := 0
	if rep.DependencyScan.NPMAudit != nil {
		total = len(rep.DependencyScan.NPMAudit.Vulnerabilities)
	}

	if total > pol.WarnDependencyIssues {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"⚠️ High number of dependency vulnerabilities: %d (warning threshold: %d)", total, pol.WarnDependencyIssues))
	} else {
		v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ Dependency vulnerabilities: %d", total))
	}
}

// check 6: cada scan obrigatório precisa de uma seção presente e não vazia.
func checkRequiredScans(rep *model.Report, pol Policy, v *model.Verdict) {
	for _, name := range pol.RequiredScans {
		if !rep.HasSection(name) {
			v.Violations = append(v.Violations, fmt.Sprintf("❌ Required scan missing: %s", name))
		} else {
			v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ Required scan completed: %s", name))
		}
	}
}

// check 7: issues médias, só warning.
func checkMedium(rep *model.Report, pol Policy, v *model.Verdict) {
	medium := rep.Summary.MediumCount
	if medium > pol.WarnMediumIssues {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"⚠️ High number of medium issues: %d (warning threshold: %d)", medium, pol.WarnMediumIssues))
	} else {
		v.PassedChecks = append(v.PassedChecks, fmt.Sprintf("✅ Medium severity issues: %d", medium))
	}
}
