package catalog

import (
	"regexp"

	"github.com/Sena-ops/payguard/internal/model"
)

type Category string

const (
	CategorySecret     Category = "secret"
	CategoryPayment    Category = "payment"
	CategoryDependency Category = "dependency"
)

// Rule é uma regra de detecção imutável. A severidade é declarada aqui,
// inclusive os overrides de pagamento (credit_card e cvv são HIGH, o resto
// MEDIUM).
type Rule struct {
	Name     string
	Category Category
	Severity model.Severity
	Message  string
	Pattern  *regexp.Regexp
}

// Catalog é o registro imutável de regras. Construído uma vez via Default();
// sem mutação em runtime.
type Catalog struct {
	rules []Rule
}

// RulesFor retorna as regras da categoria na ordem de declaração.
func (c Catalog) RulesFor(cat Category) []Rule {
	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

func (c Catalog) Len() int {
	return len(c.rules)
}

// Default constrói o catálogo padrão para projetos TypeScript/JavaScript.
// Todos os padrões são RE2 (tempo linear), então entradas grandes não
// explodem o tempo de match.
func Default() Catalog {
	return Catalog{rules: defaultRules()}
}

func defaultRules() []Rule {
	secret := func(name, pattern string) Rule {
		return Rule{
			Name:     name,
			Category: CategorySecret,
			Severity: model.SevHigh,
			Message:  "Potential " + name + " found",
			Pattern:  regexp.MustCompile(pattern),
		}
	}
	payment := func(name, pattern string, sev model.Severity) Rule {
		return Rule{
			Name:     name,
			Category: CategoryPayment,
			Severity: sev,
			Message:  "Potential " + name + " data found",
			Pattern:  regexp.MustCompile(pattern),
		}
	}
	dependency := func(name, pattern string) Rule {
		return Rule{
			Name:     name,
			Category: CategoryDependency,
			Severity: model.SevMedium,
			Message:  "Potentially vulnerable package: " + name,
			Pattern:  regexp.MustCompile(pattern),
		}
	}

	return []Rule{
		// segredos, sempre HIGH
		secret("api_key", `(?i)(api[_-]?key|apikey)\s*[:=]\s*["']([a-zA-Z0-9_\-]{16,})["']`),
		secret("secret_key", `(?i)(secret[_-]?key|secretkey)\s*[:=]\s*["']([a-zA-Z0-9_\-]{16,})["']`),
		secret("password", `(?i)password\s*[:=]\s*["']([^"']{8,})["']`),
		secret("jwt_token", `eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*`),
		secret("private_key", `-----BEGIN (RSA )?PRIVATE KEY-----`),
		secret("aws_access_key", `AKIA[0-9A-Z]{16}`),
		secret("aws_secret_key", `(?i)aws[_-]?secret[_-]?access[_-]?key.*["']([A-Za-z0-9/+=]{40})["']`),
		secret("github_token", `gh[ps]_[A-Za-z0-9_]{36}`),
		secret("bearer_token", `(?i)bearer\s+[A-Za-z0-9_\-\.]{20,}`),
		secret("stripe_key", `(?i)(sk|pk)_(test|live)_[A-Za-z0-9]{24,}`),

		// dados de pagamento
		payment("credit_card", `\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|3[0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})\b`, model.SevHigh),
		payment("cvv", `(?i)(cvv|cvc|security[_-]?code)\s*[:=]\s*["']?(\d{3,4})["']?`, model.SevHigh),
		payment("expiry", `(?i)(exp|expiry|expiration)[_-]?(date|month|year)?\s*[:=]\s*["']?(\d{1,2}[/\-]\d{2,4}|\d{4})["']?`, model.SevMedium),
		payment("payment_logging", `(?i)(console\.log|logger\.|log\.)\s*\([^)]*(?:card|payment|cvv|ssn|credit)[^)]*\)`, model.SevMedium),

		// Pacotes historicamente vulneráveis ou deprecados
		dependency("lodash", `"lodash"\s*:\s*"[^4]`), // versões < 4.x
		dependency("moment", `"moment"\s*:\s*"`),     // deprecado
		dependency("node-uuid", `"node-uuid"`),       // substituído por uuid
		dependency("request", `"request"\s*:\s*"`),   // deprecado
	}
}
