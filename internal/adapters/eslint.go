package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Sena-ops/payguard/internal/model"
)

// ParseESLintBytes lê a saída do eslint em formato JSON (lista ordenada de
// resultados por arquivo). Severidade numérica: 2=error, 1=warning.
func ParseESLintBytes(b []byte) ([]model.ESLintFileResult, error) {
	var doc []model.ESLintFileResult
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse do eslint: %w", err)
	}
	return doc, nil
}

func ParseESLintFile(path string) ([]model.ESLintFileResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseESLintBytes(b)
}

// ESLintSeverity normaliza a severidade numérica do eslint.
func ESLintSeverity(n int) model.Severity {
	if n == 2 {
		return model.SevHigh
	}
	return model.SevMedium
}
