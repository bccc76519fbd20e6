package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/payguard/internal/model"
)

func cleanReport() *model.Report {
	return &model.Report{
		ComplianceScan: model.NewScanResult(),
		DependencyScan: model.DependencySection{
			NPMAudit: &model.NPMAudit{Vulnerabilities: map[string]model.NPMVulnerability{}},
		},
	}
}

func TestEvaluateCleanReportPasses(t *testing.T) {
	v := Evaluate(cleanReport(), DefaultPolicy())

	assert.True(t, v.Pass)
	assert.Empty(t, v.Violations)
	assert.Empty(t, v.Warnings)
	// 2 buckets + segredos + pagamento + dependências + 2 required + medium
	assert.Len(t, v.PassedChecks, 8)
}

func TestEvaluateSecretViolation(t *testing.T) {
	rep := cleanReport()
	rep.ComplianceScan.AddSecret(model.Finding{Type: "api_key", Severity: model.SevHigh})
	rep.Summary.BumpN(model.SevCritical, 1)

	v := Evaluate(rep, DefaultPolicy())

	assert.False(t, v.Pass)
	assert.Contains(t, v.Violations, "❌ Secrets found in code: 1 (max allowed: 0)")
	assert.Contains(t, v.Violations, "❌ Critical issues found: 1 (max allowed: 0)")
}

func TestEvaluateRunsAllChecksAfterViolation(t *testing.T) {
	rep := cleanReport()
	rep.Summary = model.Summary{CriticalCount: 3, HighCount: 2, MediumCount: 9, TotalIssues: 14}

	v := Evaluate(rep, DefaultPolicy())

	// diagnóstico completo: as duas violações de bucket E o warning de medium
	assert.False(t, v.Pass)
	assert.Len(t, v.Violations, 2)
	assert.Contains(t, v.Warnings, "⚠️ High number of medium issues: 9 (warning threshold: 5)")
	assert.NotEmpty(t, v.PassedChecks)
}

func TestEvaluateDependencyWarningNeverBlocks(t *testing.T) {
	rep := cleanReport()
	vulns := map[string]model.NPMVulnerability{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		vulns[name] = model.NPMVulnerability{Severity: "low"}
	}
	rep.DependencyScan.NPMAudit.Vulnerabilities = vulns

	v := Evaluate(rep, DefaultPolicy())

	assert.True(t, v.Pass)
	assert.Contains(t, v.Warnings, "⚠️ High number of dependency vulnerabilities: 11 (warning threshold: 10)")
}

func TestEvaluateDependencyUnderThresholdIsPassedCheck(t *testing.T) {
	rep := cleanReport()
	rep.ComplianceScan.AddDependencyIssue(model.Finding{Type: "vulnerable_dependency", Package: "lodash", Severity: model.SevMedium})
	rep.DependencyScan.NPMAudit.Vulnerabilities = map[string]model.NPMVulnerability{
		"lodash": {Severity: "moderate"},
	}

	pol := DefaultPolicy()
	pol.WarnDependencyIssues = 10
	pol.MaxPaymentIssues = 0

	v := Evaluate(rep, pol)

	assert.Contains(t, v.PassedChecks, "✅ Dependency vulnerabilities: 1")
	assert.NotContains(t, v.Warnings, "⚠️ High number of dependency vulnerabilities: 1 (warning threshold: 10)")
}

func TestEvaluateRequiredScanMissing(t *testing.T) {
	rep := &model.Report{ComplianceScan: model.NewScanResult()} // sem dependency_scan

	pol := DefaultPolicy()
	pol.RequiredScans = []string{"compliance_scan", "dependency_scan"}

	v := Evaluate(rep, pol)

	assert.False(t, v.Pass)
	assert.Contains(t, v.Violations, "❌ Required scan missing: dependency_scan")
	assert.Contains(t, v.PassedChecks, "✅ Required scan completed: compliance_scan")
}

func TestEvaluateMissingComplianceSection(t *testing.T) {
	rep := &model.Report{}

	v := Evaluate(rep, DefaultPolicy())

	assert.False(t, v.Pass)
	assert.Contains(t, v.Violations, "❌ Compliance scan results not found")
}

func TestEvaluateIsIdempotent(t *testing.T) {
	rep := cleanReport()
	rep.ComplianceScan.AddSecret(model.Finding{Type: "api_key", Severity: model.SevHigh})
	rep.Summary.BumpN(model.SevCritical, 1)
	pol := DefaultPolicy()

	first := Evaluate(rep, pol)
	second := Evaluate(rep, pol)

	assert.Equal(t, first, second)
}

func TestEvaluateThresholdsAreInclusive(t *testing.T) {
	rep := cleanReport()
	rep.Summary = model.Summary{CriticalCount: 2, TotalIssues: 2}

	pol := DefaultPolicy()
	pol.MaxCriticalIssues = 2 // no limite, não acima

	v := Evaluate(rep, pol)

	assert.True(t, v.Pass)
	assert.Contains(t, v.PassedChecks, "✅ Critical issues: 2")
}

func TestEvaluateMissingDependencySectionIsWarningOnly(t *testing.T) {
	rep := &model.Report{ComplianceScan: model.NewScanResult()}

	pol := DefaultPolicy()
	pol.RequiredScans = []string{"compliance_scan"}

	v := Evaluate(rep, pol)

	require.True(t, v.Pass)
	assert.Contains(t, v.Warnings, "⚠️ Dependency scan results not found")
}
