package frontend

import (
	"fmt"

	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/source"
)

func identParselet(p *Parser, tok Token) (expr Expr, msg feedback.Message) {
	return &IdentExpr{Token: tok}, nil
}

func literalParselet(p *Parser, tok Token) (expr Expr, msg feedback.Message) {
	if !tok.IsLiteral() {
		return nil, p.unexpected(tok, "expected a literal")
	}

	return &LiteralExpr{Token: tok}, nil
}

// primary -> "(" expression ")"
func groupParselet(p *Parser, leftParen Token) (expr Expr, msg feedback.Message) {
	var inner Expr
	var rightParen Token

	if inner, msg = p.parseExpression(0); msg != nil {
		return nil, msg
	}

	if rightParen, msg = p.Cursor.ExpectNext(RParenSymbol); msg != nil {
		return nil, msg
	}

	return &ParenExpr{
		LeftParen:  leftParen,
		Inner:      inner,
		RightParen: rightParen,
	}, nil
}

// list   -> "[" items? "]"
// matrix -> "[" items? (("|" | "||") items?)+ "]"
//
// Both row separators mean the same thing. Every row of a matrix must hold the
// same number of items, an empty row counting as zero
func listParselet(p *Parser, leftBracket Token) (expr Expr, msg feedback.Message) {
	var rows []*Items
	var separators []Token
	var rightBracket Token

	isMatrix := false

	for {
		var items *Items

		if items, msg = p.parseOptionalItems(); msg != nil {
			return nil, msg
		}

		rows = append(rows, items)

		if p.Cursor.PeekMatches(PipeSymbol) || p.Cursor.PeekMatches(DoublePipeSymbol) {
			separators = append(separators, p.Cursor.Next())
			isMatrix = true
			continue
		}

		break
	}

	if rightBracket, msg = p.Cursor.ExpectNext(RBracketSymbol); msg != nil {
		return nil, msg
	}

	if !isMatrix {
		return &ListExpr{
			LeftBracket:  leftBracket,
			Items:        rows[0],
			RightBracket: rightBracket,
		}, nil
	}

	matrix := &MatrixExpr{
		LeftBracket:  leftBracket,
		Rows:         rows,
		RightBracket: rightBracket,
	}

	width := rows[0].Len()

	for i, row := range rows[1:] {
		if row.Len() == width {
			continue
		}

		// an empty row is pointed at by the separator that opens it
		span := separators[i].Span
		if row != nil {
			span = SpanOf(row)
		}

		return nil, feedback.RenderError(p.Cursor.File, span, feedback.ParseError,
			fmt.Sprintf("the %s row has %s but the 1st row has %s",
				toOrdinal(i+2), pluralize(row.Len(), "item"), pluralize(width, "item")))
	}

	return matrix, nil
}

// parseOptionalItems parses the items of one list or matrix row. A row with no
// items at all produces a nil slot
func (p *Parser) parseOptionalItems() (items *Items, msg feedback.Message) {
	switch p.Cursor.Peek().Symbol {
	case RBracketSymbol, PipeSymbol, DoublePipeSymbol:
		return nil, nil
	}

	return p.parseItems()
}

// items -> expression ("," expression)*
func (p *Parser) parseItems() (items *Items, msg feedback.Message) {
	items = &Items{}

	for {
		var expr Expr

		if expr, msg = p.parseExpression(0); msg != nil {
			return nil, msg
		}

		items.Expressions = append(items.Expressions, expr)

		if !p.Cursor.PeekMatches(CommaSymbol) {
			return items, nil
		}

		p.Cursor.Next()
	}
}

// prefix -> ("+" | "-" | "not") expression
func prefixParselet(p *Parser, operator Token) (expr Expr, msg feedback.Message) {
	var operand Expr

	if operand, msg = p.parseExpression(prefixPrecedence); msg != nil {
		return nil, msg
	}

	return &PrefixExpr{
		Operator: operator,
		Operand:  operand,
	}, nil
}

// infix -> expression operator expression
//
// The right hand side is parsed at the operator's own precedence which makes
// the operator left associative. Passing a lower precedence makes it right
// associative
func binaryInfixParselet(precedence int) binaryParselet {
	return func(p *Parser, operator Token, left Expr) (expr Expr, msg feedback.Message) {
		var right Expr

		if right, msg = p.parseExpression(precedence); msg != nil {
			return nil, msg
		}

		return &InfixExpr{
			Left:     left,
			Operator: operator,
			Right:    right,
		}, nil
	}
}

// functionCall -> identifier "(" (expression ("," expression)*)? ")"
func callParselet(p *Parser, leftParen Token, left Expr) (expr Expr, msg feedback.Message) {
	callee, ok := left.(*IdentExpr)
	if !ok {
		return nil, feedback.RenderError(p.Cursor.File,
			source.Span{Start: left.Pos(), End: leftParen.Span.End},
			feedback.ParseError, "only named functions can be called")
	}

	var args []Expr

	for !p.Cursor.PeekMatches(RParenSymbol) {
		var arg Expr

		if arg, msg = p.parseExpression(0); msg != nil {
			return nil, msg
		}

		// add argument to the list of arguments
		args = append(args, arg)

		if !p.Cursor.PeekMatches(CommaSymbol) {
			break
		}

		// consume comma after argument expression
		p.Cursor.Next()
	}

	var rightParen Token

	if rightParen, msg = p.Cursor.ExpectNext(RParenSymbol); msg != nil {
		return nil, msg
	}

	return &CallExpr{
		Callee:     callee,
		LeftParen:  leftParen,
		Arguments:  args,
		RightParen: rightParen,
	}, nil
}
