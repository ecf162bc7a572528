package backend

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/quark-lang/quark/frontend"
)

// indent is the block indentation of the emitted code
const indent = "    "

// numpyImport is prepended to programs that build matrices
const numpyImport = "import numpy as np"

// UnexpectedTokenError reports a token that has no spelling in the target
// dialect at the position it was found. The parser never builds such trees, so
// this only fires for hand-built ASTs
type UnexpectedTokenError struct {
	Token   frontend.Token
	Context string
}

func (e UnexpectedTokenError) Error() string {
	return "unexpected token `" + e.Token.Lexeme + "` as " + e.Context + " at " + e.Token.Span.Start.String()
}

// Synthesise converts a whole program into target dialect source code.
// Declarations are separated by two blank lines and the numpy import is added
// when any matrix literal was emitted
func Synthesise(prog *frontend.Program) (string, error) {
	s := &synthesiser{}

	var decls []string

	for _, decl := range prog.Declarations {
		text, err := s.function(decl)
		if err != nil {
			return "", errors.Wrapf(err, "synthesising `%s`", decl.Name)
		}

		decls = append(decls, text)
	}

	if len(decls) == 0 {
		return "", nil
	}

	out := strings.Join(decls, "\n\n\n")

	if s.usesNumpy {
		out = numpyImport + "\n\n\n" + out
	}

	return out + "\n", nil
}

// SynthesiseExpr converts a single expression into target dialect text
func SynthesiseExpr(expr frontend.Expr) (string, error) {
	s := &synthesiser{}
	return s.expr(expr)
}

// synthesiser keeps track of what the emitted code depends on while the tree
// is being walked
type synthesiser struct {
	usesNumpy bool
}

// function emits `def <name>(<params>):` followed by the indented body
func (s *synthesiser) function(decl *frontend.FunctionDclr) (string, error) {
	lines := []string{"def " + decl.Name + "(" + strings.Join(decl.Parameters.Names(), ", ") + "):"}

	for _, stmt := range decl.Body.Statements {
		text, err := s.stmt(stmt)
		if err != nil {
			return "", err
		}

		lines = append(lines, indent+text)
	}

	if len(decl.Body.Statements) == 0 {
		lines = append(lines, indent+"pass")
	}

	return strings.Join(lines, "\n"), nil
}

func (s *synthesiser) stmt(generic frontend.Stmt) (string, error) {
	switch stmt := generic.(type) {
	case *frontend.ReturnStmt:
		value, err := s.expr(stmt.Expression)
		if err != nil {
			return "", err
		}

		return "return " + value, nil
	case frontend.Expr:
		return s.expr(stmt)
	default:
		return "", errors.Errorf("cannot synthesise statement %T", stmt)
	}
}

func (s *synthesiser) expr(generic frontend.Expr) (string, error) {
	switch node := generic.(type) {
	case *frontend.IdentExpr:
		if node.Token.Symbol != frontend.IdentSymbol {
			return "", UnexpectedTokenError{Token: node.Token, Context: "an identifier"}
		}

		return node.Name(), nil
	case *frontend.LiteralExpr:
		return literal(node.Token)
	case *frontend.ParenExpr:
		inner, err := s.expr(node.Inner)
		if err != nil {
			return "", err
		}

		return "(" + inner + ")", nil
	case *frontend.ListExpr:
		return s.items(node.Items)
	case *frontend.MatrixExpr:
		s.usesNumpy = true

		rows := make([]string, 0, len(node.Rows))

		for _, row := range node.Rows {
			text, err := s.items(row)
			if err != nil {
				return "", err
			}

			rows = append(rows, text)
		}

		return "np.array([" + strings.Join(rows, ", ") + "])", nil
	case *frontend.PrefixExpr:
		return s.prefix(node)
	case *frontend.InfixExpr:
		return s.infix(node)
	case *frontend.CallExpr:
		args := make([]string, 0, len(node.Arguments))

		for _, arg := range node.Arguments {
			text, err := s.expr(arg)
			if err != nil {
				return "", err
			}

			args = append(args, text)
		}

		return node.Callee.Name() + "(" + strings.Join(args, ", ") + ")", nil
	case nil:
		return "", errors.New("cannot synthesise a missing expression")
	default:
		return "", errors.Errorf("cannot synthesise expression %T", node)
	}
}

// items emits `[a, b, c]`, or `[]` for an empty slot
func (s *synthesiser) items(items *frontend.Items) (string, error) {
	if items == nil {
		return "[]", nil
	}

	exprs := make([]string, 0, len(items.Expressions))

	for _, expr := range items.Expressions {
		text, err := s.expr(expr)
		if err != nil {
			return "", err
		}

		exprs = append(exprs, text)
	}

	return "[" + strings.Join(exprs, ", ") + "]", nil
}

func (s *synthesiser) prefix(node *frontend.PrefixExpr) (string, error) {
	op, ok := prefixSpellings[node.Operator.Symbol]
	if !ok {
		return "", UnexpectedTokenError{Token: node.Operator, Context: "a prefix operator"}
	}

	operand, err := s.operand(node.Operand, prefixContext(node.Operator.Symbol))
	if err != nil {
		return "", err
	}

	return op + operand, nil
}

func (s *synthesiser) infix(node *frontend.InfixExpr) (string, error) {
	op, ok := infixSpellings[node.Operator.Symbol]
	if !ok {
		return "", UnexpectedTokenError{Token: node.Operator, Context: "an infix operator"}
	}

	left, err := s.operand(node.Left, infixContext(node.Operator.Symbol, leftSide))
	if err != nil {
		return "", err
	}

	right, err := s.operand(node.Right, infixContext(node.Operator.Symbol, rightSide))
	if err != nil {
		return "", err
	}

	return left + " " + op + " " + right, nil
}

// operand emits a child of a prefix or infix node, wrapping it in parentheses
// when the target dialect would otherwise group it differently
func (s *synthesiser) operand(child frontend.Expr, ctx operandContext) (string, error) {
	text, err := s.expr(child)
	if err != nil {
		return "", err
	}

	if ctx.needsParens(child) {
		return "(" + text + ")", nil
	}

	return text, nil
}
