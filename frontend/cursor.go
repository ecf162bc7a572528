package frontend

import (
	"fmt"

	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/source"
)

// Cursor is a non-destructive view over a fully materialized token sequence.
// Consuming a token advances the cursor irreversibly. Once the sequence is
// exhausted every read returns an EOF token
type Cursor struct {
	File     *source.File
	tokens   []Token
	index    int
	previous Token
}

// NewCursor wraps a token sequence produced by Tokenize
func NewCursor(file *source.File, tokens []Token) *Cursor {
	return &Cursor{
		File:   file,
		tokens: tokens,
	}
}

func (c *Cursor) at(i int) Token {
	if i < len(c.tokens) {
		return c.tokens[i]
	}

	eof := Token{Symbol: EOFSymbol, Lexeme: "<EOF>"}

	if len(c.tokens) > 0 {
		eof.Span = c.tokens[len(c.tokens)-1].Span
	}

	return eof
}

// Peek returns the upcoming token without consuming it
func (c *Cursor) Peek() Token {
	return c.at(c.index)
}

// PeekNext returns the token after the upcoming one without consuming anything
func (c *Cursor) PeekNext() Token {
	return c.at(c.index + 1)
}

// PeekMatches returns true if the upcoming token matches a given TokenSymbol
func (c *Cursor) PeekMatches(sym TokenSymbol) bool {
	return c.Peek().Symbol == sym
}

// Next returns the upcoming token and advances the cursor
func (c *Cursor) Next() Token {
	tok := c.Peek()

	if c.index < len(c.tokens) {
		c.index++
	}

	c.previous = tok
	return tok
}

// Previous returns the most recently consumed token
func (c *Cursor) Previous() Token {
	return c.previous
}

// ExpectNext consumes and returns the next token if it matches the given
// TokenSymbol. If the upcoming token DOESN'T match, it is left in place and an
// error pointing at it is returned
func (c *Cursor) ExpectNext(sym TokenSymbol) (tok Token, msg feedback.Message) {
	tok = c.Peek()

	if tok.Symbol != sym {
		return tok, feedback.RenderError(c.File, tok.Span, feedback.UnexpectedToken,
			fmt.Sprintf("expected `%s` instead found %s", sym, describe(tok)))
	}

	return c.Next(), nil
}

// describe names a token the way diagnostics quote it
func describe(tok Token) string {
	switch tok.Symbol {
	case EOFSymbol:
		return "the end of the program"
	case IdentSymbol, NumberSymbol, StringSymbol, BooleanSymbol:
		return fmt.Sprintf("%s `%s`", tok.Symbol, tok.Lexeme)
	default:
		return fmt.Sprintf("`%s`", tok.Symbol)
	}
}
