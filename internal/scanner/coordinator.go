package scanner

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Sena-ops/payguard/internal/adapters"
	"github.com/Sena-ops/payguard/internal/catalog"
	"github.com/Sena-ops/payguard/internal/deps"
	"github.com/Sena-ops/payguard/internal/extract"
	"github.com/Sena-ops/payguard/internal/model"
	"github.com/Sena-ops/payguard/internal/parser"
)

const DefaultWorkers = 4

// Coordinator executa um passe completo do scan de conformidade sobre uma
// lista de arquivos e acumula um único ScanResult.
type Coordinator struct {
	catalog catalog.Catalog
	logger  *zap.SugaredLogger
	workers int
}

func New(cat catalog.Catalog, logger *zap.SugaredLogger, workers int) *Coordinator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Coordinator{catalog: cat, logger: logger, workers: workers}
}

// fileOutcome é o resultado por arquivo: escaneado com findings, ou pulado
// com motivo. Um arquivo ilegível nunca aborta o passe.
type fileOutcome struct {
	path     string
	secrets  []model.Finding
	payments []model.Finding
	skipped  bool
	reason   error
}

// Run escaneia os arquivos fonte num pool limitado de workers e os
// manifestos em sequência, e devolve o resultado finalizado com timestamp.
// O fold final é feito na ordem de entrada, então o resultado é
// determinístico independente da ordem de término dos workers.
func (c *Coordinator) Run(files []parser.ScanFile) *model.ScanResult {
	result := model.NewScanResult()

	var sources, manifests []parser.ScanFile
	for _, f := range files {
		if f.Kind == parser.Manifest {
			manifests = append(manifests, f)
		} else {
			sources = append(sources, f)
		}
	}

	secretRules := c.catalog.RulesFor(catalog.CategorySecret)
	paymentRules := c.catalog.RulesFor(catalog.CategoryPayment)

	// cada worker escreve só no seu índice; sem ordem de término importar
	outcomes := make([]fileOutcome, len(sources))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = c.scanFile(sources[i].Path, secretRules, paymentRules)
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// fold sequencial: contadores e findings ficam em lockstep por arquivo
	for _, out := range outcomes {
		if out.skipped {
			c.logger.Errorw("arquivo pulado", "arquivo", out.path, "erro", out.reason)
			continue
		}
		for _, f := range out.secrets {
			result.AddSecret(f)
		}
		for _, f := range out.payments {
			result.AddPaymentIssue(f)
		}
		result.ScannedFiles++
	}

	c.scanManifests(result, manifests)

	result.ScanTimestamp = time.Now().Format(time.RFC3339)
	return result
}

func (c *Coordinator) scanFile(path string, secretRules, paymentRules []catalog.Rule) fileOutcome {
	b, err := os.ReadFile(path)
	if err != nil {
		return fileOutcome{path: path, skipped: true, reason: err}
	}
	content := string(b)
	return fileOutcome{
		path:     path,
		secrets:  extract.Extract(content, path, secretRules),
		payments: extract.Extract(content, path, paymentRules),
	}
}

func (c *Coordinator) scanManifests(result *model.ScanResult, manifests []parser.ScanFile) {
	rules := c.catalog.RulesFor(catalog.CategoryDependency)
	for _, m := range manifests {
		b, err := os.ReadFile(m.Path)
		if err != nil {
			c.logger.Errorw("manifesto ilegível", "arquivo", m.Path, "erro", err)
			continue
		}
		for _, f := range deps.ScanManifest(string(b), m.Path, rules) {
			result.AddDependencyIssue(f)
		}
	}
}

// MergeNPMAudit incorpora um artefato npm-audit.json pré-existente, se
// houver. Ausência não é erro.
func (c *Coordinator) MergeNPMAudit(result *model.ScanResult, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	audit, err := adapters.ParseNPMAuditFile(path)
	if err != nil {
		c.logger.Errorw("artefato npm audit descartado", "arquivo", path, "erro", err)
		return
	}
	names := make([]string, 0, len(audit.Vulnerabilities))
	for name := range audit.Vulnerabilities {
		names = append(names, name)
	}
	sort.Strings(names) // ordem estável independente do mapa

	for _, name := range names {
		vuln := audit.Vulnerabilities[name]
		sev := auditSeverity(vuln.Severity)
		result.AddDependencyIssue(model.Finding{
			Type:     "npm_audit_vulnerability",
			Package:  name,
			Severity: sev,
			Message:  fmt.Sprintf("npm audit found %s vulnerability in %s", vuln.Severity, name),
			Via:      adapters.ViaStrings(vuln.Via),
		})
	}
}

// auditSeverity mapeia o vocabulário do npm audit para os contadores do
// ScanResult: high|critical somam no high, moderate no medium, o resto no low.
func auditSeverity(s string) model.Severity {
	switch model.NormalizeSeverity(s) {
	case model.SevCritical, model.SevHigh:
		return model.SevHigh
	case model.SevMedium:
		return model.SevMedium
	default:
		return model.SevLow
	}
}

// WriteResult grava o artefato compliance-scan-results.json. Única escrita
// externa do coordenador; o resultado não é mutado depois.
func WriteResult(result *model.ScanResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal do resultado: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escrever resultado: %w", err)
	}
	return nil
}
