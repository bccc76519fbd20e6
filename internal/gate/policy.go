package gate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy é a configuração declarativa do gate: limites máximos bloqueantes,
// limites de warning e a lista de scans obrigatórios. Carregada uma vez,
// nunca mutada durante a avaliação.
type Policy struct {
	MaxCriticalIssues    int      `json:"max_critical_issues" yaml:"max_critical_issues"`
	MaxHighIssues        int      `json:"max_high_issues" yaml:"max_high_issues"`
	MaxSecrets           int      `json:"max_secrets" yaml:"max_secrets"`
	MaxPaymentIssues     int      `json:"max_payment_issues" yaml:"max_payment_issues"`
	WarnMediumIssues     int      `json:"warn_medium_issues" yaml:"warn_medium_issues"`
	WarnDependencyIssues int      `json:"warn_dependency_issues" yaml:"warn_dependency_issues"`
	RequiredScans        []string `json:"required_scans" yaml:"required_scans"`
}

// DefaultPolicy: todos os limites bloqueantes em zero.
func DefaultPolicy() Policy {
	return Policy{
		MaxCriticalIssues:    0,
		MaxHighIssues:        0,
		MaxSecrets:           0,
		MaxPaymentIssues:     0,
		WarnMediumIssues:     5,
		WarnDependencyIssues: 10,
		RequiredScans:        []string{"compliance_scan", "dependency_scan"},
	}
}

// LoadPolicy lê a política de um arquivo JSON ou YAML (pela extensão).
// Caminho vazio ou arquivo ausente cai nos defaults embutidos.
func LoadPolicy(path string) (Policy, error) {
	pol := DefaultPolicy()
	if path == "" {
		return pol, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pol, nil
		}
		return pol, fmt.Errorf("ler política: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &pol); err != nil {
			return DefaultPolicy(), fmt.Errorf("política YAML inválida: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &pol); err != nil {
			return DefaultPolicy(), fmt.Errorf("política JSON inválida: %w", err)
		}
	}
	return pol, nil
}
