package frontend

// Grammar holds a collection of helper methods for classifying runes and
// keywords for a given language
type Grammar struct {
	Keywords []string
	Booleans map[string]bool
	Symbols  []string
}

// quarkGrammar is the lexical grammar of the Quark language. Operator and
// punctuation symbols are listed longest first so that maximal munch can try
// them in order
var quarkGrammar = &Grammar{
	Keywords: []string{
		"fn",
		"return",
		"not",
		"and",
		"or",
	},
	Booleans: map[string]bool{
		"true":  true,
		"false": false,
	},
	Symbols: []string{
		"->", "==", "!=", "<=", ">=", "||",
		"+", "-", "*", "/", "%", "^", "<", ">", "|",
		"(", ")", "{", "}", "[", "]", ",", ";",
	},
}

func (g *Grammar) isCommentStart(r rune) (matches bool) {
	return (r == '#')
}

func (g *Grammar) isWhitespace(r rune) (matches bool) {
	return (r <= ' ')
}

func (g *Grammar) isAlphabetical(r rune) (matches bool) {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func (g *Grammar) isNumeric(r rune) (matches bool) {
	return (r >= '0' && r <= '9')
}

func (g *Grammar) isComplexMarker(r rune) (matches bool) {
	return (r == 'i')
}

// isKeyword returns true if a given string is included in the Grammar's list
// of valid keywords
func (g *Grammar) isKeyword(s string) (matches bool) {
	for i, l := 0, len(g.Keywords); i < l; i++ {
		if g.Keywords[i] == s {
			return true
		}
	}

	return false
}

// matchOperator returns the longest operator that starts with the rune `first`
// and, for two-rune operators, continues with `second`. The `ok` flag is false
// when no operator starts with `first`
func (g *Grammar) matchOperator(first rune, second rune, hasSecond bool) (op string, ok bool) {
	for _, candidate := range g.Symbols {
		runes := []rune(candidate)

		if runes[0] != first {
			continue
		}

		if len(runes) == 2 && (!hasSecond || runes[1] != second) {
			continue
		}

		return candidate, true
	}

	return "", false
}
