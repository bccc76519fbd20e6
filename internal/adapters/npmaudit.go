package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Sena-ops/payguard/internal/model"
)

// ParseNPMAuditBytes lê o JSON do `npm audit --json`. Só o mapa de
// vulnerabilidades interessa; o resto do documento é ignorado.
func ParseNPMAuditBytes(b []byte) (*model.NPMAudit, error) {
	var doc model.NPMAudit
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse do npm audit: %w", err)
	}
	return &doc, nil
}

func ParseNPMAuditFile(path string) (*model.NPMAudit, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNPMAuditBytes(b)
}

// ViaStrings extrai as entradas textuais do campo "via" (que mistura strings
// e objetos de advisory).
func ViaStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
