package frontend

import (
	"fmt"

	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/source"
)

// Parse takes a file and returns an abstract-syntax-tree of every function
// declaration in it. Lexing and parsing stop at the first error, in which case
// no tree is returned
func Parse(file *source.File) (prog *Program, msg feedback.Message) {
	var toks []Token

	if toks, msg = Tokenize(file); msg != nil {
		return nil, msg
	}

	return NewParser(file, toks).Parse()
}

// ParseExpression parses a file holding exactly one expression
func ParseExpression(file *source.File) (expr Expr, msg feedback.Message) {
	var toks []Token

	if toks, msg = Tokenize(file); msg != nil {
		return nil, msg
	}

	p := NewParser(file, toks)

	if expr, msg = p.parseExpression(0); msg != nil {
		return nil, msg
	}

	if tok := p.Cursor.Peek(); tok.Symbol != EOFSymbol {
		return nil, p.unexpected(tok, "expected the end of the expression")
	}

	return expr, nil
}

type binaryParselet func(*Parser, Token, Expr) (Expr, feedback.Message)
type unaryParselet func(*Parser, Token) (Expr, feedback.Message)

// Binding powers of the expression grammar. Higher values bind tighter
const (
	orPrecedence             = 10
	andPrecedence            = 20
	comparisonPrecedence     = 30
	additivePrecedence       = 40
	multiplicativePrecedence = 50
	exponentPrecedence       = 60
	prefixPrecedence         = 70
	callPrecedence           = 80
)

// Parser instances contain a token Cursor and tables of binary operator
// precedences and parselets
type Parser struct {
	Cursor           *Cursor
	binaryPrecedence map[TokenSymbol]int
	binaryParselets  map[TokenSymbol]binaryParselet
	unaryParselets   map[TokenSymbol]unaryParselet
}

// NewParser is a Parser factory function that populates the Parser's parselet
// table with the appropriate symbols, precedence values and parselet functions
func NewParser(file *source.File, tokens []Token) *Parser {
	p := &Parser{
		Cursor:           NewCursor(file, tokens),
		binaryPrecedence: make(map[TokenSymbol]int),
		binaryParselets:  make(map[TokenSymbol]binaryParselet),
		unaryParselets:   make(map[TokenSymbol]unaryParselet),
	}

	p.addUnaryParselet(NumberSymbol, literalParselet)
	p.addUnaryParselet(StringSymbol, literalParselet)
	p.addUnaryParselet(BooleanSymbol, literalParselet)
	p.addUnaryParselet(IdentSymbol, identParselet)
	p.addUnaryParselet(LParenSymbol, groupParselet)
	p.addUnaryParselet(LBracketSymbol, listParselet)

	p.addUnaryParselet(PlusSymbol, prefixParselet)
	p.addUnaryParselet(MinusSymbol, prefixParselet)
	p.addUnaryParselet(NotSymbol, prefixParselet)

	p.addBinaryParselet(LParenSymbol, callPrecedence, callParselet)

	// Logical expressions
	p.addBinaryParselet(OrSymbol, orPrecedence, binaryInfixParselet(orPrecedence))
	p.addBinaryParselet(AndSymbol, andPrecedence, binaryInfixParselet(andPrecedence))

	// Comparison expressions
	for _, sym := range []TokenSymbol{EqualSymbol, NotEqualSymbol, LessSymbol, LessEqualSymbol, GreaterSymbol, GreaterEqualSymbol} {
		p.addBinaryParselet(sym, comparisonPrecedence, binaryInfixParselet(comparisonPrecedence))
	}

	// Arithmetic expressions
	p.addBinaryParselet(PlusSymbol, additivePrecedence, binaryInfixParselet(additivePrecedence))
	p.addBinaryParselet(MinusSymbol, additivePrecedence, binaryInfixParselet(additivePrecedence))
	p.addBinaryParselet(AsteriskSymbol, multiplicativePrecedence, binaryInfixParselet(multiplicativePrecedence))
	p.addBinaryParselet(SlashSymbol, multiplicativePrecedence, binaryInfixParselet(multiplicativePrecedence))
	p.addBinaryParselet(PercentSymbol, multiplicativePrecedence, binaryInfixParselet(multiplicativePrecedence))

	// Exponentiation is right associative
	p.addBinaryParselet(CaretSymbol, exponentPrecedence, binaryInfixParselet(exponentPrecedence-1))

	return p
}

func (p *Parser) addBinaryParselet(sym TokenSymbol, precedence int, parselet binaryParselet) {
	p.binaryPrecedence[sym] = precedence
	p.binaryParselets[sym] = parselet
}

func (p *Parser) addUnaryParselet(sym TokenSymbol, parselet unaryParselet) {
	p.unaryParselets[sym] = parselet
}

// Parse produces an AST holding every declaration until the end of the file
func (p *Parser) Parse() (prog *Program, msg feedback.Message) {
	prog = &Program{}

	for !p.Cursor.PeekMatches(EOFSymbol) {
		var decl *FunctionDclr

		if decl, msg = p.parseDeclaration(); msg != nil {
			return nil, msg
		}

		prog.Declarations = append(prog.Declarations, decl)
	}

	return prog, nil
}

// declaration -> functionDeclaration
func (p *Parser) parseDeclaration() (decl *FunctionDclr, msg feedback.Message) {
	if tok := p.Cursor.Peek(); tok.Symbol != FnSymbol {
		return nil, p.unexpected(tok, "expected a function declaration")
	}

	return p.parseFunctionDeclaration()
}

// functionDeclaration -> "fn" identifier "(" params? ")" ("->" identifier)? block
func (p *Parser) parseFunctionDeclaration() (decl *FunctionDclr, msg feedback.Message) {
	fnKeyword := p.Cursor.Next()
	decl = &FunctionDclr{FnKeyword: fnKeyword, ReturnType: UnitType}

	name := p.Cursor.Peek()
	if name.Symbol != IdentSymbol {
		return nil, p.declarationError(fnKeyword, "expected function name")
	}

	p.Cursor.Next()
	decl.Name = name.Lexeme
	decl.NameSpan = name.Span

	if !p.Cursor.PeekMatches(LParenSymbol) {
		return nil, p.declarationError(fnKeyword, "expected `(` after the function name")
	}

	p.Cursor.Next()

	if p.Cursor.PeekMatches(IdentSymbol) {
		if decl.Parameters, msg = p.parseParams(fnKeyword); msg != nil {
			return nil, msg
		}
	}

	if !p.Cursor.PeekMatches(RParenSymbol) {
		return nil, p.declarationError(fnKeyword, "expected `)` to close the parameter list")
	}

	p.Cursor.Next()

	if p.Cursor.PeekMatches(ArrowSymbol) {
		p.Cursor.Next()

		annotation := p.Cursor.Peek()
		if annotation.Symbol != IdentSymbol {
			return nil, p.declarationError(fnKeyword, "expected a return type after `->`")
		}

		p.Cursor.Next()

		var ok bool
		if decl.ReturnType, ok = LookupType(annotation.Lexeme); !ok {
			return nil, feedback.RenderError(p.Cursor.File, annotation.Span, feedback.UnknownType,
				fmt.Sprintf("unknown type name `%s`, expected one of %s", annotation.Lexeme, typeNameList()))
		}
	}

	if !p.Cursor.PeekMatches(LBraceSymbol) {
		return nil, p.declarationError(fnKeyword, "expected a block after the signature")
	}

	if decl.Body, msg = p.parseBlock(); msg != nil {
		return nil, msg
	}

	return decl, nil
}

// params -> parameter ("," parameter)*
func (p *Parser) parseParams(fnKeyword Token) (params *Params, msg feedback.Message) {
	params = &Params{}

	for {
		name := p.Cursor.Peek()
		if name.Symbol != IdentSymbol {
			return nil, p.declarationError(fnKeyword, "expected a parameter name")
		}

		p.Cursor.Next()
		params.Parameters = append(params.Parameters, &Parameter{
			Name: name.Lexeme,
			Span: name.Span,
		})

		if !p.Cursor.PeekMatches(CommaSymbol) {
			return params, nil
		}

		p.Cursor.Next()
	}
}

// block -> "{" statement* "}"
func (p *Parser) parseBlock() (block *Block, msg feedback.Message) {
	block = &Block{LeftBrace: p.Cursor.Next()}

	for !p.Cursor.PeekMatches(RBraceSymbol) {
		if p.Cursor.PeekMatches(EOFSymbol) {
			return nil, p.declarationError(block.LeftBrace, "expected `}` to close the block")
		}

		var stmt Stmt

		if stmt, msg = p.parseStatement(); msg != nil {
			return nil, msg
		}

		block.Statements = append(block.Statements, stmt)

		// statements may be separated by an optional semicolon
		if p.Cursor.PeekMatches(SemicolonSymbol) {
			p.Cursor.Next()
		}
	}

	block.RightBrace = p.Cursor.Next()
	return block, nil
}

// statement -> "return" expression | expression
func (p *Parser) parseStatement() (stmt Stmt, msg feedback.Message) {
	if p.Cursor.PeekMatches(ReturnSymbol) {
		ret := &ReturnStmt{ReturnKeyword: p.Cursor.Next()}

		if ret.Expression, msg = p.parseExpression(0); msg != nil {
			return nil, msg
		}

		return ret, nil
	}

	var expr Expr

	if expr, msg = p.parseExpression(0); msg != nil {
		return nil, msg
	}

	return expr, nil
}

// parseExpression returns a node representing the next expression so long as
// the next expression does not have less precedence than the "precedence"
// parameter
func (p *Parser) parseExpression(precedence int) (expr Expr, msg feedback.Message) {
	tok := p.Cursor.Next()

	unary, ok := p.unaryParselets[tok.Symbol]
	if !ok {
		return nil, p.unexpected(tok, "expected an expression")
	}

	if expr, msg = unary(p, tok); msg != nil {
		return nil, msg
	}

	// left-associated expressions based on their relative precedence
	for {
		next := p.Cursor.Peek()

		nextPrecedence, ok := p.binaryPrecedence[next.Symbol]
		if !ok || precedence >= nextPrecedence {
			return expr, nil
		}

		p.Cursor.Next()

		if expr, msg = p.binaryParselets[next.Symbol](p, next, expr); msg != nil {
			return nil, msg
		}
	}
}

// declarationError reports a failed grammar rule. The span runs from the
// token that started the rule to the last token consumed
func (p *Parser) declarationError(start Token, description string) feedback.Message {
	span := source.Join(start.Span, p.Cursor.Previous().Span)
	return feedback.RenderError(p.Cursor.File, span, feedback.ParseError, description)
}

// unexpected reports a token that no grammar rule accepts at this point
func (p *Parser) unexpected(tok Token, description string) feedback.Message {
	return feedback.RenderError(p.Cursor.File, tok.Span, feedback.UnexpectedToken,
		fmt.Sprintf("%s, found %s", description, describe(tok)))
}
