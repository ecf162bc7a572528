package backend

import (
	"github.com/quark-lang/quark/frontend"
)

var prefixSpellings = map[frontend.TokenSymbol]string{
	frontend.PlusSymbol:  "+",
	frontend.MinusSymbol: "-",
	frontend.NotSymbol:   "not ",
}

var infixSpellings = map[frontend.TokenSymbol]string{
	frontend.PlusSymbol:         "+",
	frontend.MinusSymbol:        "-",
	frontend.AsteriskSymbol:     "*",
	frontend.SlashSymbol:        "/",
	frontend.PercentSymbol:      "%",
	frontend.CaretSymbol:        "**",
	frontend.AndSymbol:          "and",
	frontend.OrSymbol:           "or",
	frontend.EqualSymbol:        "==",
	frontend.NotEqualSymbol:     "!=",
	frontend.LessSymbol:         "<",
	frontend.LessEqualSymbol:    "<=",
	frontend.GreaterSymbol:      ">",
	frontend.GreaterEqualSymbol: ">=",
}

// Binding powers of the target dialect's operators, loosest first
const (
	targetOr = iota + 1
	targetAnd
	targetNot
	targetComparison
	targetAdditive
	targetMultiplicative
	targetUnary
	targetPower
	targetAtom
)

var infixPrecedence = map[frontend.TokenSymbol]int{
	frontend.OrSymbol:           targetOr,
	frontend.AndSymbol:          targetAnd,
	frontend.EqualSymbol:        targetComparison,
	frontend.NotEqualSymbol:     targetComparison,
	frontend.LessSymbol:         targetComparison,
	frontend.LessEqualSymbol:    targetComparison,
	frontend.GreaterSymbol:      targetComparison,
	frontend.GreaterEqualSymbol: targetComparison,
	frontend.PlusSymbol:         targetAdditive,
	frontend.MinusSymbol:        targetAdditive,
	frontend.AsteriskSymbol:     targetMultiplicative,
	frontend.SlashSymbol:        targetMultiplicative,
	frontend.PercentSymbol:      targetMultiplicative,
	frontend.CaretSymbol:        targetPower,
}

// targetPrecedence returns how tightly the target dialect binds an emitted
// expression
func targetPrecedence(expr frontend.Expr) int {
	switch node := expr.(type) {
	case *frontend.InfixExpr:
		if prec, ok := infixPrecedence[node.Operator.Symbol]; ok {
			return prec
		}
	case *frontend.PrefixExpr:
		if node.Operator.Symbol == frontend.NotSymbol {
			return targetNot
		}

		return targetUnary
	}

	return targetAtom
}

type side int

const (
	leftSide side = iota
	rightSide
	onlySide
)

// operandContext describes the slot an operand is emitted into
type operandContext struct {
	precedence int
	side       side
}

func prefixContext(op frontend.TokenSymbol) operandContext {
	if op == frontend.NotSymbol {
		return operandContext{precedence: targetNot, side: onlySide}
	}

	return operandContext{precedence: targetUnary, side: onlySide}
}

func infixContext(op frontend.TokenSymbol, s side) operandContext {
	return operandContext{precedence: infixPrecedence[op], side: s}
}

// needsParens reports whether the target dialect would read the child with a
// different grouping than the tree has. Comparisons are never left to chain
func (ctx operandContext) needsParens(child frontend.Expr) bool {
	prec := targetPrecedence(child)

	switch {
	case prec < ctx.precedence:
		return true
	case prec > ctx.precedence || ctx.side == onlySide:
		return false
	case prec == targetComparison:
		return true
	case prec == targetPower:
		return ctx.side == leftSide
	default:
		return ctx.side == rightSide
	}
}
