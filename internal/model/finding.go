package model

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// Finding é uma ocorrência individual encontrada pelo scan de conformidade.
// Os campos seguem o schema do artefato compliance-scan-results.json.
type Finding struct {
	Type     string   `json:"type"`              // nome da regra (api_key, credit_card, vulnerable_dependency, ...)
	Package  string   `json:"package,omitempty"` // só para findings de dependência
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"` // 1-based
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Via      []string `json:"via,omitempty"` // cadeia de advisories (npm audit)
}
