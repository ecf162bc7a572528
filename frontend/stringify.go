package frontend

import (
	"fmt"
	"strings"
)

// StringifyAST renders a Program as nested S-expressions. It is only meant for
// debugging the parser
func StringifyAST(prog *Program) string {
	return stringifyNode(prog)
}

func stringifyNode(generic Node) string {
	const newline = "\n"

	switch node := generic.(type) {
	case *Program:
		var decls []string

		for _, decl := range node.Declarations {
			decls = append(decls, stringifyNode(decl))
		}

		return fmt.Sprintf("(program (\n%s\n))", indentString(strings.Join(decls, newline)))
	case *FunctionDclr:
		return fmt.Sprintf("(fn \"%s\" (%s) %s %s)",
			node.Name,
			strings.Join(node.Parameters.Names(), " "),
			node.ReturnType,
			stringifyNode(node.Body))
	case *Block:
		var stmts []string

		for _, stmt := range node.Statements {
			stmts = append(stmts, stringifyNode(stmt))
		}

		if len(stmts) == 0 {
			return "()"
		}

		return fmt.Sprintf("(\n%s\n)", indentString(strings.Join(stmts, newline)))
	case *ReturnStmt:
		return fmt.Sprintf("(return %s)", stringifyNode(node.Expression))
	case *IdentExpr:
		return node.Name()
	case *LiteralExpr:
		if node.Token.Symbol == NumberSymbol {
			return fmt.Sprintf("[%s %s]", node.Token.Number, node.Token.Lexeme)
		}

		return fmt.Sprintf("[%s %s]", strings.ToLower(string(node.Token.Symbol)), node.Token.Lexeme)
	case *ParenExpr:
		return fmt.Sprintf("(group %s)", stringifyNode(node.Inner))
	case *ListExpr:
		return fmt.Sprintf("(list %s)", stringifyItems(node.Items))
	case *MatrixExpr:
		var rows []string

		for _, row := range node.Rows {
			rows = append(rows, stringifyItems(row))
		}

		return fmt.Sprintf("(matrix %s)", strings.Join(rows, " "))
	case *PrefixExpr:
		return fmt.Sprintf("(%s %s)", node.Operator.Symbol, stringifyNode(node.Operand))
	case *InfixExpr:
		return fmt.Sprintf("(%s %s %s)",
			node.Operator.Symbol,
			stringifyNode(node.Left),
			stringifyNode(node.Right))
	case *CallExpr:
		var args []string

		for _, arg := range node.Arguments {
			args = append(args, stringifyNode(arg))
		}

		return fmt.Sprintf("(call \"%s\" (%s))", node.Callee.Name(), strings.Join(args, " "))
	default:
		return fmt.Sprintf("<Unknown %T>", node)
	}
}

func stringifyItems(items *Items) string {
	if items == nil {
		return "()"
	}

	var exprs []string

	for _, expr := range items.Expressions {
		exprs = append(exprs, stringifyNode(expr))
	}

	return "(" + strings.Join(exprs, " ") + ")"
}

func indentString(s string) string {
	lines := strings.Split(s, "\n")

	for i, l := range lines {
		lines[i] = "   " + l
	}

	return strings.Join(lines, "\n")
}
