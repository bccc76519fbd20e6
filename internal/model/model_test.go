package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanResultTallyInvariant(t *testing.T) {
	r := NewScanResult()
	r.AddSecret(Finding{Type: "api_key", Severity: SevHigh})
	r.AddPaymentIssue(Finding{Type: "expiry", Severity: SevMedium})
	r.AddPaymentIssue(Finding{Type: "cvv", Severity: SevHigh})
	r.AddDependencyIssue(Finding{Type: "npm_audit_vulnerability", Severity: SevLow})

	total := r.HighSeverityCount + r.MediumSeverityCount + r.LowSeverityCount
	assert.Equal(t, r.TotalFindings(), total)
	assert.Equal(t, 2, r.HighSeverityCount)
	assert.Equal(t, 1, r.MediumSeverityCount)
	assert.Equal(t, 1, r.LowSeverityCount)
}

func TestSummaryBumpKeepsTotalInSync(t *testing.T) {
	var s Summary
	s.Bump(SevCritical)
	s.Bump(SevHigh)
	s.BumpN(SevMedium, 3)
	s.Bump(SevLow)
	s.Bump(SevInfo)
	s.Bump(Severity("whatever")) // cai no bucket info

	sum := s.CriticalCount + s.HighCount + s.MediumCount + s.LowCount + s.InfoCount
	assert.Equal(t, s.TotalIssues, sum)
	assert.Equal(t, 2, s.InfoCount)
}

func TestReportHasSection(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		section  string
		expected bool
	}{
		{"compliance_present", Report{ComplianceScan: NewScanResult()}, "compliance_scan", true},
		{"compliance_absent", Report{}, "compliance_scan", false},
		{"dependency_npm", Report{DependencyScan: DependencySection{NPMAudit: &NPMAudit{}}}, "dependency_scan", true},
		{"dependency_auditci", Report{DependencyScan: DependencySection{AuditCI: []byte(`{}`)}}, "dependency_scan", true},
		{"dependency_absent", Report{}, "dependency_scan", false},
		{"eslint_empty", Report{}, "eslint_security", false},
		{"unknown_section", Report{}, "codeql_results", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.report.HasSection(tt.section))
		})
	}
}
