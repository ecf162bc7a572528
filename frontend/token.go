package frontend

import (
	"github.com/quark-lang/quark/source"
)

// TokenSymbol is the classification system for tokens. Identifier and literal
// tokens are represented by general token symbols (like "Identifier") while
// keyword, operator and punctuation tokens are represented by their literal
// values
type TokenSymbol string

// NumberKind distinguishes the four shapes a number literal can take
type NumberKind int

// Number literal kinds. The complex kinds are written with a trailing `i`
const (
	IntegerNumber NumberKind = iota
	FloatNumber
	ComplexIntegerNumber
	ComplexFloatNumber
)

func (k NumberKind) String() string {
	switch k {
	case IntegerNumber:
		return "integer"
	case FloatNumber:
		return "float"
	case ComplexIntegerNumber:
		return "complex integer"
	case ComplexFloatNumber:
		return "complex float"
	default:
		return "number"
	}
}

// IsComplex reports whether the literal carried the complex marker
func (k NumberKind) IsComplex() bool {
	return k == ComplexIntegerNumber || k == ComplexFloatNumber
}

// Token structs represent a lexical atom and are tagged with a token symbol
// classification, and source code line/column data. Literal tokens also carry
// their parsed Value: an int64 or float64 for numbers (see Number for which),
// a string for strings and a bool for booleans
type Token struct {
	Symbol TokenSymbol
	Lexeme string
	Span   source.Span
	Number NumberKind
	Value  interface{}
}

// IsLiteral reports whether the token is a number, string or boolean literal
func (t Token) IsLiteral() bool {
	return t.Symbol == NumberSymbol || t.Symbol == StringSymbol || t.Symbol == BooleanSymbol
}

// General token symbols
const (
	EOFSymbol     TokenSymbol = "EOF"
	IdentSymbol   TokenSymbol = "Identifier"
	NumberSymbol  TokenSymbol = "Number"
	StringSymbol  TokenSymbol = "String"
	BooleanSymbol TokenSymbol = "Boolean"
)

// Keyword symbols
const (
	FnSymbol     TokenSymbol = "fn"
	ReturnSymbol TokenSymbol = "return"
	NotSymbol    TokenSymbol = "not"
	AndSymbol    TokenSymbol = "and"
	OrSymbol     TokenSymbol = "or"
)

// Operator symbols
const (
	PlusSymbol         TokenSymbol = "+"
	MinusSymbol        TokenSymbol = "-"
	AsteriskSymbol     TokenSymbol = "*"
	SlashSymbol        TokenSymbol = "/"
	PercentSymbol      TokenSymbol = "%"
	CaretSymbol        TokenSymbol = "^"
	EqualSymbol        TokenSymbol = "=="
	NotEqualSymbol     TokenSymbol = "!="
	LessSymbol         TokenSymbol = "<"
	LessEqualSymbol    TokenSymbol = "<="
	GreaterSymbol      TokenSymbol = ">"
	GreaterEqualSymbol TokenSymbol = ">="
	ArrowSymbol        TokenSymbol = "->"
)

// Punctuation symbols
const (
	LParenSymbol     TokenSymbol = "("
	RParenSymbol     TokenSymbol = ")"
	LBraceSymbol     TokenSymbol = "{"
	RBraceSymbol     TokenSymbol = "}"
	LBracketSymbol   TokenSymbol = "["
	RBracketSymbol   TokenSymbol = "]"
	CommaSymbol      TokenSymbol = ","
	SemicolonSymbol  TokenSymbol = ";"
	PipeSymbol       TokenSymbol = "|"
	DoublePipeSymbol TokenSymbol = "||"
)
