package frontend

import (
	"github.com/quark-lang/quark/source"
)

// Node is a generic node in the abstract syntax tree (AST). The positions
// returned by Pos and End are inclusive
type Node interface {
	Pos() source.Pos
	End() source.Pos
}

// SpanOf returns the region of source code a node was parsed from
func SpanOf(n Node) source.Span {
	return source.Span{Start: n.Pos(), End: n.End()}
}

// Expr represents a Node that produces a value. The set of expression nodes is
// closed: IdentExpr, LiteralExpr, ParenExpr, ListExpr, MatrixExpr, PrefixExpr,
// InfixExpr and CallExpr
type Expr interface {
	Node
	exprNode()
	stmtNode()
}

// Stmt represents a Node that can appear in a block. Every Expr is also a
// statement
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node for an AST
type Program struct {
	Declarations []*FunctionDclr
}

// Pos returns the starting source code position of this node
func (p Program) Pos() source.Pos {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}

	return source.Pos{Line: 1, Col: 1}
}

// End returns the terminal source code position of this node
func (p Program) End() source.Pos {
	if len(p.Declarations) > 0 {
		return p.Declarations[len(p.Declarations)-1].End()
	}

	return source.Pos{Line: 1, Col: 1}
}

// FunctionDclr represents a named function declaration:
// fn <name> ( <params> ) -> <type> { <statements> }
type FunctionDclr struct {
	FnKeyword  Token
	Name       string
	NameSpan   source.Span
	ReturnType TypeTag
	Parameters *Params // nil when the parameter list is empty
	Body       *Block
}

// Pos returns the starting source code position of this node
func (f FunctionDclr) Pos() source.Pos {
	return f.FnKeyword.Span.Start
}

// End returns the terminal source code position of this node
func (f FunctionDclr) End() source.Pos {
	return f.Body.End()
}

// Parameter is a single named function parameter
type Parameter struct {
	Name string
	Span source.Span
}

// Pos returns the starting source code position of this node
func (p Parameter) Pos() source.Pos {
	return p.Span.Start
}

// End returns the terminal source code position of this node
func (p Parameter) End() source.Pos {
	return p.Span.End
}

// Params is the ordered, non-empty list of parameters of a function. Duplicate
// names are kept
type Params struct {
	Parameters []*Parameter
}

// Pos returns the starting source code position of this node
func (p Params) Pos() source.Pos {
	return p.Parameters[0].Pos()
}

// End returns the terminal source code position of this node
func (p Params) End() source.Pos {
	return p.Parameters[len(p.Parameters)-1].End()
}

// Names returns the parameter names in declaration order
func (p *Params) Names() (names []string) {
	if p == nil {
		return nil
	}

	for _, param := range p.Parameters {
		names = append(names, param.Name)
	}

	return names
}

// Block represents the brace-delimited statements of a function body
type Block struct {
	LeftBrace  Token
	Statements []Stmt
	RightBrace Token
}

// Pos returns the starting source code position of this node
func (b Block) Pos() source.Pos {
	return b.LeftBrace.Span.Start
}

// End returns the terminal source code position of this node
func (b Block) End() source.Pos {
	return b.RightBrace.Span.End
}

// ReturnStmt represents `return <expression>`
type ReturnStmt struct {
	ReturnKeyword Token
	Expression    Expr
}

// Pos returns the starting source code position of this node
func (r ReturnStmt) Pos() source.Pos {
	return r.ReturnKeyword.Span.Start
}

// End returns the terminal source code position of this node
func (r ReturnStmt) End() source.Pos {
	return r.Expression.End()
}

func (r ReturnStmt) stmtNode() {}

// IdentExpr represents a single identifier in the AST
type IdentExpr struct {
	Token Token
}

// Name returns the identifier's text
func (i IdentExpr) Name() string {
	return i.Token.Lexeme
}

// Pos returns the starting source code position of this node
func (i IdentExpr) Pos() source.Pos {
	return i.Token.Span.Start
}

// End returns the terminal source code position of this node
func (i IdentExpr) End() source.Pos {
	return i.Token.Span.End
}

func (i IdentExpr) exprNode() {}
func (i IdentExpr) stmtNode() {}

// LiteralExpr represents a number, string or boolean literal
type LiteralExpr struct {
	Token Token
}

// Pos returns the starting source code position of this node
func (l LiteralExpr) Pos() source.Pos {
	return l.Token.Span.Start
}

// End returns the terminal source code position of this node
func (l LiteralExpr) End() source.Pos {
	return l.Token.Span.End
}

func (l LiteralExpr) exprNode() {}
func (l LiteralExpr) stmtNode() {}

// ParenExpr represents an expression wrapped in parentheses
type ParenExpr struct {
	LeftParen  Token
	Inner      Expr
	RightParen Token
}

// Pos returns the starting source code position of this node
func (p ParenExpr) Pos() source.Pos {
	return p.LeftParen.Span.Start
}

// End returns the terminal source code position of this node
func (p ParenExpr) End() source.Pos {
	return p.RightParen.Span.End
}

func (p ParenExpr) exprNode() {}
func (p ParenExpr) stmtNode() {}

// Items holds the comma separated expressions of one list literal or one
// matrix row. A nil *Items stands for a slot with nothing in it
type Items struct {
	Expressions []Expr
}

// Len returns the number of expressions, counting a nil slot as empty
func (i *Items) Len() int {
	if i == nil {
		return 0
	}

	return len(i.Expressions)
}

// Pos returns the starting source code position of this node
func (i Items) Pos() source.Pos {
	if len(i.Expressions) == 0 {
		return source.Pos{}
	}

	return i.Expressions[0].Pos()
}

// End returns the terminal source code position of this node
func (i Items) End() source.Pos {
	if len(i.Expressions) == 0 {
		return source.Pos{}
	}

	return i.Expressions[len(i.Expressions)-1].End()
}

// ListExpr represents `[ <items> ]`
type ListExpr struct {
	LeftBracket  Token
	Items        *Items
	RightBracket Token
}

// Pos returns the starting source code position of this node
func (l ListExpr) Pos() source.Pos {
	return l.LeftBracket.Span.Start
}

// End returns the terminal source code position of this node
func (l ListExpr) End() source.Pos {
	return l.RightBracket.Span.End
}

func (l ListExpr) exprNode() {}
func (l ListExpr) stmtNode() {}

// MatrixExpr represents `[ <items> | <items> ... ]`, one Items slot per row
type MatrixExpr struct {
	LeftBracket  Token
	Rows         []*Items
	RightBracket Token
}

// Pos returns the starting source code position of this node
func (m MatrixExpr) Pos() source.Pos {
	return m.LeftBracket.Span.Start
}

// End returns the terminal source code position of this node
func (m MatrixExpr) End() source.Pos {
	return m.RightBracket.Span.End
}

func (m MatrixExpr) exprNode() {}
func (m MatrixExpr) stmtNode() {}

// PrefixExpr represents a unary operator applied to an operand
type PrefixExpr struct {
	Operator Token
	Operand  Expr
}

// Pos returns the starting source code position of this node
func (p PrefixExpr) Pos() source.Pos {
	return p.Operator.Span.Start
}

// End returns the terminal source code position of this node
func (p PrefixExpr) End() source.Pos {
	return p.Operand.End()
}

func (p PrefixExpr) exprNode() {}
func (p PrefixExpr) stmtNode() {}

// InfixExpr represents a basic expression of the form:
// <left expr> <operator> <right expr>
type InfixExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Pos returns the starting source code position of this node
func (b InfixExpr) Pos() source.Pos {
	return b.Left.Pos()
}

// End returns the terminal source code position of this node
func (b InfixExpr) End() source.Pos {
	return b.Right.End()
}

func (b InfixExpr) exprNode() {}
func (b InfixExpr) stmtNode() {}

// CallExpr represents a call of a named function including any arguments
type CallExpr struct {
	Callee     *IdentExpr
	LeftParen  Token
	Arguments  []Expr
	RightParen Token
}

// Pos returns the starting source code position of this node
func (c CallExpr) Pos() source.Pos {
	return c.Callee.Pos()
}

// End returns the terminal source code position of this node
func (c CallExpr) End() source.Pos {
	return c.RightParen.Span.End
}

func (c CallExpr) exprNode() {}
func (c CallExpr) stmtNode() {}
