package adapters

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseAuditCIFile valida e devolve o documento do audit-ci como seção
// opaca de pass-through.
func ParseAuditCIFile(path string) (json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("audit-ci: JSON inválido em %s", path)
	}
	return json.RawMessage(b), nil
}
