package backend

import (
	"strings"

	"github.com/quark-lang/quark/frontend"
)

// literal spells a literal token in the target dialect. Numbers keep their
// digits as written, with the complex marker `i` becoming `j`. Strings are
// wrapped in single quotes without escaping
func literal(tok frontend.Token) (string, error) {
	switch tok.Symbol {
	case frontend.NumberSymbol:
		if tok.Number.IsComplex() {
			return strings.TrimSuffix(tok.Lexeme, "i") + "j", nil
		}

		return tok.Lexeme, nil
	case frontend.StringSymbol:
		if value, ok := tok.Value.(string); ok {
			return "'" + value + "'", nil
		}
	case frontend.BooleanSymbol:
		if value, ok := tok.Value.(bool); ok {
			if value {
				return "True", nil
			}

			return "False", nil
		}
	}

	return "", UnexpectedTokenError{Token: tok, Context: "a literal"}
}
