package frontend

import (
	"fmt"
	"strconv"

	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/source"
)

// Tokenize converts the contents of a file into a complete token sequence
// terminated by a single EOF token. The first lexical error stops the lexer
func Tokenize(file *source.File) (toks []Token, msg feedback.Message) {
	return NewLexer(file, quarkGrammar).Tokenize()
}

// Lexer structs maintain state during the lexical analysis of a chunk of source
// code, generating a sequence of Tokens
type Lexer struct {
	Scanner *Scanner
	Grammar *Grammar
	tokens  []Token
}

// NewLexer is a constructor function that takes a File and a Grammar and
// returns a reference to a newly minted Lexer struct
func NewLexer(file *source.File, grammar *Grammar) *Lexer {
	return &Lexer{
		Scanner: NewScanner(file),
		Grammar: grammar,
	}
}

// Tokenize reads tokens until the end of the file
func (l *Lexer) Tokenize() (toks []Token, msg feedback.Message) {
	for {
		var tok Token

		if tok, msg = l.readNextToken(); msg != nil {
			return nil, msg
		}

		l.tokens = append(l.tokens, tok)

		if tok.Symbol == EOFSymbol {
			return l.tokens, nil
		}
	}
}

// readNextToken is responsible for digesting characters from a scanner and
// producing the next Token. Whitespace and comments are skipped
func (l *Lexer) readNextToken() (tok Token, msg feedback.Message) {
	for {
		peek, pos, eof := l.Scanner.Peek()

		switch {
		case eof:
			return l.eofToken(pos), nil
		case l.Grammar.isWhitespace(peek):
			l.Scanner.Next()
		case l.Grammar.isCommentStart(peek):
			l.lexComment()
		case l.Grammar.isAlphabetical(peek):
			return l.lexWord()
		case l.Grammar.isNumeric(peek):
			return l.lexNumber()
		case peek == '"':
			return l.lexString()
		default:
			return l.lexOperator()
		}
	}
}

// eofToken builds the terminating token. If some tokens have been emitted, the
// EOF token's span is set to the last token so that error messages will point
// to the last meaningful syntax token and not some empty line at the end of
// the file
func (l *Lexer) eofToken(pos source.Pos) Token {
	span := source.Span{Start: pos, End: pos}

	if len(l.tokens) > 0 {
		span = l.tokens[len(l.tokens)-1].Span
	}

	return Token{Symbol: EOFSymbol, Lexeme: "<EOF>", Span: span}
}

// Comments
//  - \#[^\n]*
func (l *Lexer) lexComment() {
	for {
		peek, _, eof := l.Scanner.Peek()

		if eof || peek == '\n' {
			return
		}

		l.Scanner.Next()
	}
}

// Identifiers and Keywords
//  - match [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) lexWord() (tok Token, msg feedback.Message) {
	var lexeme string
	var span source.Span

	span.Start = l.Scanner.Pos()

	for {
		peek, _, eof := l.Scanner.Peek()

		if eof || !(l.Grammar.isAlphabetical(peek) || l.Grammar.isNumeric(peek)) {
			break
		}

		r, pos := l.Scanner.Next()
		lexeme += string(r)
		span.End = pos
	}

	// Determine whether the word classifies as a keyword or boolean recognized
	// by the grammar. If it does, set the appropriate token symbol
	if value, ok := l.Grammar.Booleans[lexeme]; ok {
		return Token{Symbol: BooleanSymbol, Lexeme: lexeme, Span: span, Value: value}, nil
	}

	if l.Grammar.isKeyword(lexeme) {
		return Token{Symbol: TokenSymbol(lexeme), Lexeme: lexeme, Span: span}, nil
	}

	return Token{Symbol: IdentSymbol, Lexeme: lexeme, Span: span}, nil
}

// Number literals
//  - integer match [0-9]+
//  - float match [0-9]+\.[0-9]+
//  - either may be followed by `i` to mark a complex number
func (l *Lexer) lexNumber() (tok Token, msg feedback.Message) {
	var digits string
	var span source.Span

	kind := IntegerNumber
	span.Start = l.Scanner.Pos()
	digits, span.End = l.consumeDigits(digits, span.End)

	// A decimal point only belongs to the literal when a digit follows it
	if peek, _, eof := l.Scanner.Peek(); !eof && peek == '.' {
		if next, eof := l.Scanner.PeekNext(); !eof && l.Grammar.isNumeric(next) {
			r, _ := l.Scanner.Next()
			digits += string(r)
			digits, span.End = l.consumeDigits(digits, span.End)
			kind = FloatNumber
		}
	}

	lexeme := digits

	if peek, _, eof := l.Scanner.Peek(); !eof && l.Grammar.isComplexMarker(peek) {
		r, pos := l.Scanner.Next()
		lexeme += string(r)
		span.End = pos

		if kind == FloatNumber {
			kind = ComplexFloatNumber
		} else {
			kind = ComplexIntegerNumber
		}
	}

	tok = Token{Symbol: NumberSymbol, Lexeme: lexeme, Span: span, Number: kind}

	var err error

	switch kind {
	case IntegerNumber, ComplexIntegerNumber:
		tok.Value, err = strconv.ParseInt(digits, 10, 64)
	case FloatNumber, ComplexFloatNumber:
		tok.Value, err = strconv.ParseFloat(digits, 64)
	}

	if err != nil {
		return tok, feedback.RenderError(l.Scanner.File, span, feedback.LexError,
			fmt.Sprintf("%s literal `%s` cannot be represented", kind, lexeme))
	}

	return tok, nil
}

// consumeDigits appends a maximal run of decimal digits to `digits`, returning
// the extended text and the position of the last digit consumed
func (l *Lexer) consumeDigits(digits string, end source.Pos) (string, source.Pos) {
	for {
		peek, _, eof := l.Scanner.Peek()

		if eof || !l.Grammar.isNumeric(peek) {
			return digits, end
		}

		r, pos := l.Scanner.Next()
		digits += string(r)
		end = pos
	}
}

// String literal
//  - match double quoted string, no escape sequences
func (l *Lexer) lexString() (tok Token, msg feedback.Message) {
	var value string
	var span source.Span

	_, span.Start = l.Scanner.Next()
	span.End = span.Start

	for {
		peek, _, eof := l.Scanner.Peek()

		if eof {
			return Token{Symbol: StringSymbol, Lexeme: `"` + value, Span: span, Value: value},
				feedback.RenderError(l.Scanner.File, span, feedback.LexError, "unterminated string")
		}

		r, pos := l.Scanner.Next()
		span.End = pos

		if peek == '"' {
			break
		}

		value += string(r)
	}

	return Token{Symbol: StringSymbol, Lexeme: `"` + value + `"`, Span: span, Value: value}, nil
}

// Operators and punctuation
//  - two-rune symbols are tried before their one-rune prefixes
func (l *Lexer) lexOperator() (tok Token, msg feedback.Message) {
	var span source.Span

	peek, pos, _ := l.Scanner.Peek()
	next, eof := l.Scanner.PeekNext()
	span.Start = pos

	op, ok := l.Grammar.matchOperator(peek, next, !eof)

	if !ok {
		l.Scanner.Next()
		span.End = pos

		return Token{Lexeme: string(peek), Span: span}, feedback.RenderError(
			l.Scanner.File, span, feedback.LexError,
			fmt.Sprintf("unexpected character '%c'", peek))
	}

	for range []rune(op) {
		_, span.End = l.Scanner.Next()
	}

	return Token{Symbol: TokenSymbol(op), Lexeme: op, Span: span}, nil
}
