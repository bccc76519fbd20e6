package model

import "encoding/json"

// Summary agrega contagens por bucket de severidade.
// Invariante: TotalIssues == soma dos cinco buckets.
type Summary struct {
	TotalIssues   int `json:"total_issues"`
	CriticalCount int `json:"critical_count"`
	HighCount     int `json:"high_count"`
	MediumCount   int `json:"medium_count"`
	LowCount      int `json:"low_count"`
	InfoCount     int `json:"info_count"`
}

// Bump incrementa o bucket correspondente e o total.
func (s *Summary) Bump(sev Severity) {
	s.BumpN(sev, 1)
}

func (s *Summary) BumpN(sev Severity, n int) {
	switch sev {
	case SevCritical:
		s.CriticalCount += n
	case SevHigh:
		s.HighCount += n
	case SevMedium:
		s.MediumCount += n
	case SevLow:
		s.LowCount += n
	default:
		s.InfoCount += n
	}
	s.TotalIssues += n
}

type Recommendation struct {
	Priority Severity `json:"priority"` // CRITICAL | HIGH | MEDIUM | INFO
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

// NPMAudit é a parte do npm-audit.json que interessa ao pipeline.
type NPMAudit struct {
	Vulnerabilities map[string]NPMVulnerability `json:"vulnerabilities"`
}

type NPMVulnerability struct {
	Severity string          `json:"severity"`
	Via      json.RawMessage `json:"via,omitempty"`
}

// ESLintFileResult segue o formato de saída do eslint (-f json).
type ESLintFileResult struct {
	FilePath string          `json:"filePath"`
	Messages []ESLintMessage `json:"messages"`
}

type ESLintMessage struct {
	RuleID   string `json:"ruleId,omitempty"`
	Severity int    `json:"severity"` // 2=error, 1=warning
	Message  string `json:"message,omitempty"`
	Line     int    `json:"line,omitempty"`
}

type DependencySection struct {
	NPMAudit *NPMAudit       `json:"npm_audit,omitempty"`
	AuditCI  json.RawMessage `json:"audit_ci,omitempty"`
}

type ESLintSection struct {
	Results []ESLintFileResult `json:"results,omitempty"`
}

// Report é o relatório normalizado produzido pelo agregador
// (security-detailed-report.json).
type Report struct {
	ScanTimestamp   string            `json:"scan_timestamp"`
	DependencyScan  DependencySection `json:"dependency_scan"`
	ESLintSecurity  ESLintSection     `json:"eslint_security"`
	ComplianceScan  *ScanResult       `json:"compliance_scan,omitempty"`
	Summary         Summary           `json:"summary"`
	Recommendations []Recommendation  `json:"recommendations"`
}

// HasSection informa se a seção nomeada está presente e não vazia.
func (r *Report) HasSection(name string) bool {
	switch name {
	case "compliance_scan":
		return r.ComplianceScan != nil
	case "dependency_scan":
		return r.DependencyScan.NPMAudit != nil || len(r.DependencyScan.AuditCI) > 0
	case "eslint_security":
		return len(r.ESLintSecurity.Results) > 0
	default:
		return false
	}
}
