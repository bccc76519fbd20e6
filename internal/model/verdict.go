package model

// Verdict é o resultado de uma avaliação do gate. Produzido fresco a cada
// execução; Pass é verdadeiro sse não houver violações (warnings nunca
// bloqueiam).
type Verdict struct {
	PassedChecks []string `json:"passed_checks"`
	Violations   []string `json:"violations"`
	Warnings     []string `json:"warnings"`
	Pass         bool     `json:"pass"`
}
