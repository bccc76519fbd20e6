package model

// ScanResult é o artefato produzido por um passe completo do scan de
// conformidade. Os contadores de severidade sempre batem com os findings
// contidos, mantidos em sincronia pelos métodos Add*.
type ScanResult struct {
	SecretsFound        []Finding `json:"secrets_found"`
	PaymentIssues       []Finding `json:"payment_issues"`
	DependencyIssues    []Finding `json:"dependency_issues"`
	HighSeverityCount   int       `json:"high_severity_count"`
	MediumSeverityCount int       `json:"medium_severity_count"`
	LowSeverityCount    int       `json:"low_severity_count"`
	ScanTimestamp       string    `json:"scan_timestamp"` // ISO-8601
	ScannedFiles        int       `json:"scanned_files"`
}

func NewScanResult() *ScanResult {
	return &ScanResult{
		SecretsFound:     []Finding{},
		PaymentIssues:    []Finding{},
		DependencyIssues: []Finding{},
	}
}

// AddSecret registra um finding de segredo e atualiza os contadores.
func (r *ScanResult) AddSecret(f Finding) {
	r.SecretsFound = append(r.SecretsFound, f)
	r.tally(f.Severity)
}

func (r *ScanResult) AddPaymentIssue(f Finding) {
	r.PaymentIssues = append(r.PaymentIssues, f)
	r.tally(f.Severity)
}

func (r *ScanResult) AddDependencyIssue(f Finding) {
	r.DependencyIssues = append(r.DependencyIssues, f)
	r.tally(f.Severity)
}

func (r *ScanResult) tally(s Severity) {
	switch s {
	case SevCritical, SevHigh:
		r.HighSeverityCount++
	case SevMedium:
		r.MediumSeverityCount++
	default:
		r.LowSeverityCount++
	}
}

// TotalFindings soma todas as sequências de findings.
func (r *ScanResult) TotalFindings() int {
	return len(r.SecretsFound) + len(r.PaymentIssues) + len(r.DependencyIssues)
}
