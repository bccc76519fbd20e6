package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Sena-ops/payguard/internal/adapters"
	"github.com/Sena-ops/payguard/internal/model"
)

// Aggregator funde o resultado do scan de conformidade com os artefatos de
// ferramentas externas num único Report normalizado.
//
// Mapeamento de buckets: o high_severity_count do scan de conformidade entra
// no bucket CRITICAL do summary (um segredo hardcoded é sempre crítico); o
// bucket HIGH é alimentado só por artefatos externos (npm audit "high",
// erros do eslint). Os checks de segredos e pagamento do gate leem as seções
// brutas, não os buckets.
type Aggregator struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewAggregator(dir string, logger *zap.SugaredLogger) *Aggregator {
	return &Aggregator{dir: dir, logger: logger}
}

// Aggregate carrega os artefatos, normaliza severidades e sintetiza as
// recomendações. Falha apenas se o resultado de conformidade estiver
// ausente ou ilegível; os artefatos externos são opcionais e um artefato
// malformado é descartado com log.
func (a *Aggregator) Aggregate() (*model.Report, error) {
	rep := &model.Report{
		ScanTimestamp:   time.Now().Format(time.RFC3339),
		Recommendations: []model.Recommendation{},
	}

	scan, err := a.loadCompliance()
	if err != nil {
		return nil, err
	}
	rep.ComplianceScan = scan

	a.loadNPMAudit(rep)
	a.loadAuditCI(rep)
	a.loadESLint(rep)

	a.fold(rep)
	rep.Recommendations = BuildRecommendations(rep)
	return rep, nil
}

func (a *Aggregator) loadCompliance() (*model.ScanResult, error) {
	path := filepath.Join(a.dir, ComplianceFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resultado de conformidade ausente em %s: %w", path, err)
	}
	var scan model.ScanResult
	if err := json.Unmarshal(b, &scan); err != nil {
		return nil, fmt.Errorf("resultado de conformidade inválido: %w", err)
	}
	return &scan, nil
}

func (a *Aggregator) loadNPMAudit(rep *model.Report) {
	path := filepath.Join(a.dir, NPMAuditFile)
	if _, err := os.Stat(path); err != nil {
		return
	}
	audit, err := adapters.ParseNPMAuditFile(path)
	if err != nil {
		a.logger.Errorw("npm audit descartado", "arquivo", path, "erro", err)
		return
	}
	rep.DependencyScan.NPMAudit = audit
}

func (a *Aggregator) loadAuditCI(rep *model.Report) {
	path := filepath.Join(a.dir, AuditCIFile)
	if _, err := os.Stat(path); err != nil {
		return
	}
	raw, err := adapters.ParseAuditCIFile(path)
	if err != nil {
		a.logger.Errorw("audit-ci descartado", "arquivo", path, "erro", err)
		return
	}
	rep.DependencyScan.AuditCI = raw
}

func (a *Aggregator) loadESLint(rep *model.Report) {
	path := filepath.Join(a.dir, ESLintFile)
	if _, err := os.Stat(path); err != nil {
		return
	}
	results, err := adapters.ParseESLintFile(path)
	if err != nil {
		a.logger.Errorw("eslint descartado", "arquivo", path, "erro", err)
		return
	}
	rep.ESLintSecurity.Results = results
}

// fold soma cada fonte nos cinco buckets canônicos.
func (a *Aggregator) fold(rep *model.Report) {
	if rep.DependencyScan.NPMAudit != nil {
		for _, vuln := range rep.DependencyScan.NPMAudit.Vulnerabilities {
			rep.Summary.Bump(model.NormalizeSeverity(vuln.Severity))
		}
	}

	for _, file := range rep.ESLintSecurity.Results {
		for _, msg := range file.Messages {
			rep.Summary.Bump(adapters.ESLintSeverity(msg.Severity))
		}
	}

	if scan := rep.ComplianceScan; scan != nil {
		rep.Summary.BumpN(model.SevCritical, scan.HighSeverityCount)
		rep.Summary.BumpN(model.SevMedium, scan.MediumSeverityCount)
		rep.Summary.BumpN(model.SevLow, scan.LowSeverityCount)
	}
}

// WriteReport grava o security-detailed-report.json no diretório de saída.
func (a *Aggregator) WriteReport(rep *model.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal do relatório: %w", err)
	}
	path := filepath.Join(a.dir, DetailedReportFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escrever relatório: %w", err)
	}
	return path, nil
}

// WriteMarkdown grava o security-summary.md (resumo para comentário de PR).
func (a *Aggregator) WriteMarkdown(rep *model.Report) (string, error) {
	path := filepath.Join(a.dir, SummaryMarkdownFile)
	if err := os.WriteFile(path, []byte(RenderMarkdown(rep)), 0o644); err != nil {
		return "", fmt.Errorf("escrever resumo markdown: %w", err)
	}
	return path, nil
}

// LoadReport lê um relatório detalhado já gravado (usado pelo gate).
func LoadReport(dir string) (*model.Report, error) {
	path := filepath.Join(dir, DetailedReportFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("relatório de segurança ausente em %s: %w", path, err)
	}
	var rep model.Report
	if err := json.Unmarshal(b, &rep); err != nil {
		return nil, fmt.Errorf("relatório de segurança inválido: %w", err)
	}
	return &rep, nil
}
