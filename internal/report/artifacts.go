package report

// Nomes fixos dos artefatos trocados entre os estágios do pipeline.
const (
	ComplianceFile = "compliance-scan-results.json"
	NPMAuditFile   = "npm-audit.json"
	AuditCIFile    = "audit-ci-results.json"
	ESLintFile     = "eslint-security.json"

	DetailedReportFile  = "security-detailed-report.json"
	SummaryMarkdownFile = "security-summary.md"
)
