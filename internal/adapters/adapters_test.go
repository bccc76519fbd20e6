package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/payguard/internal/model"
)

func TestParseNPMAuditBytes(t *testing.T) {
	raw := `{
		"auditReportVersion": 2,
		"vulnerabilities": {
			"lodash": { "severity": "high", "via": ["GHSA-jf85-cpcp-j695", {"source": 1065}] }
		}
	}`

	audit, err := ParseNPMAuditBytes([]byte(raw))
	require.NoError(t, err)
	require.Contains(t, audit.Vulnerabilities, "lodash")
	assert.Equal(t, "high", audit.Vulnerabilities["lodash"].Severity)
}

func TestParseNPMAuditInvalidJSON(t *testing.T) {
	_, err := ParseNPMAuditBytes([]byte("{nope"))
	assert.Error(t, err)
}

func TestViaStrings(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"strings_only", `["GHSA-1", "GHSA-2"]`, []string{"GHSA-1", "GHSA-2"}},
		{"mixed", `["GHSA-1", {"source": 10}]`, []string{"GHSA-1"}},
		{"objects_only", `[{"source": 10}]`, nil},
		{"empty", ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ViaStrings(json.RawMessage(tt.raw)))
		})
	}
}

func TestParseESLintBytes(t *testing.T) {
	raw := `[
		{ "filePath": "src/a.ts", "messages": [ {"ruleId": "no-eval", "severity": 2, "line": 3} ] },
		{ "filePath": "src/b.ts", "messages": [] }
	]`

	results, err := ParseESLintBytes([]byte(raw))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "src/a.ts", results[0].FilePath)
	assert.Equal(t, 2, results[0].Messages[0].Severity)
}

func TestESLintSeverity(t *testing.T) {
	assert.Equal(t, model.SevHigh, ESLintSeverity(2))
	assert.Equal(t, model.SevMedium, ESLintSeverity(1))
	assert.Equal(t, model.SevMedium, ESLintSeverity(0))
}

func TestParseAuditCIFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit-ci-results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pass": true}`), 0o644))

	raw, err := ParseAuditCIFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pass": true}`, string(raw))
}

func TestParseAuditCIFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit-ci-results.json")
	require.NoError(t, os.WriteFile(path, []byte("não é json"), 0o644))

	_, err := ParseAuditCIFile(path)
	assert.Error(t, err)
}

func TestNormalizeSeverityTable(t *testing.T) {
	tests := []struct {
		in       string
		expected model.Severity
	}{
		{"critical", model.SevCritical},
		{"CRITICAL", model.SevCritical},
		{"high", model.SevHigh},
		{"medium", model.SevMedium},
		{"moderate", model.SevMedium},
		{"low", model.SevLow},
		{"info", model.SevInfo},
		{"unknown", model.SevInfo},
		{"", model.SevInfo},
		{" High ", model.SevHigh},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.NormalizeSeverity(tt.in))
		})
	}
}
