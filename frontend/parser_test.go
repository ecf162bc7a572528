package frontend

import (
	"strings"
	"testing"

	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/source"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()

	prog, msg := Parse(source.NewFile("test.qk", src))
	if msg != nil {
		t.Fatalf("Parse(%q) failed:\n%s", src, msg.Make(false))
	}

	return prog
}

func parseError(t *testing.T, src string) feedback.Error {
	t.Helper()

	prog, msg := Parse(source.NewFile("test.qk", src))
	if msg == nil {
		t.Fatalf("Parse(%q) should fail", src)
	}

	if prog != nil {
		t.Fatalf("Parse(%q) returned a partial program", src)
	}

	err, ok := msg.(feedback.Error)
	if !ok {
		t.Fatalf("expected feedback.Error, got %T", msg)
	}

	return err
}

func parseExpr(t *testing.T, src string) Expr {
	t.Helper()

	expr, msg := ParseExpression(source.NewFile("test.qk", src))
	if msg != nil {
		t.Fatalf("ParseExpression(%q) failed:\n%s", src, msg.Make(false))
	}

	return expr
}

func TestParseFunctionSignature(t *testing.T) {
	prog := parse(t, "fn add(a, b) -> Number { return a + b }")

	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}

	decl := prog.Declarations[0]

	if decl.Name != "add" {
		t.Errorf("name wrong. expected=%q, got=%q", "add", decl.Name)
	}

	if names := decl.Parameters.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("parameters wrong: %v", names)
	}

	if decl.ReturnType != NumberType {
		t.Errorf("return type wrong. expected=%s, got=%s", NumberType, decl.ReturnType)
	}

	if len(decl.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(decl.Body.Statements))
	}

	ret, ok := decl.Body.Statements[0].(*ReturnStmt)
	if !ok {
		t.Fatalf("expected *ReturnStmt, got %T", decl.Body.Statements[0])
	}

	infix, ok := ret.Expression.(*InfixExpr)
	if !ok {
		t.Fatalf("expected *InfixExpr, got %T", ret.Expression)
	}

	left, lok := infix.Left.(*IdentExpr)
	right, rok := infix.Right.(*IdentExpr)

	if !lok || !rok || left.Name() != "a" || right.Name() != "b" || infix.Operator.Symbol != PlusSymbol {
		t.Fatalf("unexpected infix %s", stringifyNode(infix))
	}
}

func TestFunctionSpanCoversKeywordToClosingBrace(t *testing.T) {
	tests := []string{
		"fn add(a, b) -> Number { return a + b }",
		"fn f() {}",
		"\n  fn multi(x)\n{\n  return x\n}\n",
	}

	for i, src := range tests {
		prog := parse(t, src)
		decl := prog.Declarations[0]

		if decl.Pos() != decl.FnKeyword.Span.Start {
			t.Errorf("tests[%d] - span starts at %s, keyword at %s", i, decl.Pos(), decl.FnKeyword.Span.Start)
		}

		if decl.End() != decl.Body.RightBrace.Span.End {
			t.Errorf("tests[%d] - span ends at %s, closing brace at %s", i, decl.End(), decl.Body.RightBrace.Span.End)
		}

		if !SpanOf(decl).Covers(SpanOf(decl.Body)) || !SpanOf(decl).Covers(decl.NameSpan) {
			t.Errorf("tests[%d] - declaration span does not cover its children", i)
		}
	}

	decl := parse(t, tests[0]).Declarations[0]
	if SpanOf(decl) != span(1, 1, 1, 39) {
		t.Fatalf("unexpected span %s", SpanOf(decl))
	}
}

func TestMissingFunctionNameFailsAtKeyword(t *testing.T) {
	err := parseError(t, "fn")

	if err.Classification != feedback.ParseError {
		t.Fatalf("expected %q, got %q", feedback.ParseError, err.Classification)
	}

	if err.What.Description != "expected function name" {
		t.Fatalf("unexpected description %q", err.What.Description)
	}

	if err.Span() != span(1, 1, 1, 2) {
		t.Fatalf("span should start and end at the keyword, got %s", err.Span())
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		input          string
		classification string
		description    string
		span           source.Span
	}{
		{"fn 1", feedback.ParseError, "expected function name", span(1, 1, 1, 2)},
		{"fn add", feedback.ParseError, "expected `(` after the function name", span(1, 1, 1, 6)},
		{"fn add(a,", feedback.ParseError, "expected a parameter name", span(1, 1, 1, 9)},
		{"fn add(a b)", feedback.ParseError, "expected `)` to close the parameter list", span(1, 1, 1, 8)},
		{"fn add() ->", feedback.ParseError, "expected a return type after `->`", span(1, 1, 1, 11)},
		{"fn add()", feedback.ParseError, "expected a block after the signature", span(1, 1, 1, 8)},
		{"fn add() -> Bool", feedback.ParseError, "expected a block after the signature", span(1, 1, 1, 16)},
		{"fn add() { return 1", feedback.ParseError, "expected `}` to close the block", span(1, 10, 1, 19)},
		{"fn add() { return }", feedback.UnexpectedToken, "expected an expression, found `}`", span(1, 19, 1, 19)},
		{"let x", feedback.UnexpectedToken, "expected a function declaration, found Identifier `let`", span(1, 1, 1, 3)},
	}

	for i, tt := range tests {
		err := parseError(t, tt.input)

		if err.Classification != tt.classification {
			t.Errorf("tests[%d] %q - classification wrong. expected=%q, got=%q", i, tt.input, tt.classification, err.Classification)
		}

		if err.What.Description != tt.description {
			t.Errorf("tests[%d] %q - description wrong. expected=%q, got=%q", i, tt.input, tt.description, err.What.Description)
		}

		if err.Span() != tt.span {
			t.Errorf("tests[%d] %q - span wrong. expected=%s, got=%s", i, tt.input, tt.span, err.Span())
		}
	}
}

func TestUnknownReturnType(t *testing.T) {
	err := parseError(t, "fn add() -> Float {}")

	if err.Classification != feedback.UnknownType {
		t.Fatalf("expected %q, got %q", feedback.UnknownType, err.Classification)
	}

	if err.Span() != span(1, 13, 1, 17) {
		t.Fatalf("error should point at the type name, got %s", err.Span())
	}

	if !strings.Contains(err.What.Description, "expected one of Bool, Number, String, Unit") {
		t.Fatalf("unexpected description %q", err.What.Description)
	}
}

func TestReturnTypes(t *testing.T) {
	tests := []struct {
		input string
		want  TypeTag
	}{
		{"fn f() {}", UnitType},
		{"fn f() -> Unit {}", UnitType},
		{"fn f() -> Number {}", NumberType},
		{"fn f() -> String {}", StringType},
		{"fn f() -> Bool {}", BooleanType},
	}

	for i, tt := range tests {
		decl := parse(t, tt.input).Declarations[0]

		if decl.ReturnType != tt.want {
			t.Errorf("tests[%d] - expected %s, got %s", i, tt.want, decl.ReturnType)
		}
	}
}

func TestEmptyParameterListIsNil(t *testing.T) {
	decl := parse(t, "fn main() {}").Declarations[0]

	if decl.Parameters != nil {
		t.Fatalf("expected no parameters, got %v", decl.Parameters.Names())
	}

	if len(decl.Body.Statements) != 0 {
		t.Fatalf("expected an empty body")
	}
}

func TestDuplicateParametersAreKept(t *testing.T) {
	decl := parse(t, "fn f(a, a) {}").Declarations[0]

	if names := decl.Parameters.Names(); len(names) != 2 || names[0] != "a" || names[1] != "a" {
		t.Fatalf("unexpected parameters %v", names)
	}

	if SpanOf(decl.Parameters) != span(1, 6, 1, 9) {
		t.Fatalf("unexpected params span %s", SpanOf(decl.Parameters))
	}
}

func TestParseStatementsAndDeclarations(t *testing.T) {
	prog := parse(t, `
fn first(x) {
  f(x); g(x)
  return x
}

fn second() -> String { return "two" }
`)

	if len(prog.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(prog.Declarations))
	}

	stmts := prog.Declarations[0].Body.Statements
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}

	if _, ok := stmts[0].(*CallExpr); !ok {
		t.Fatalf("expected *CallExpr, got %T", stmts[0])
	}

	if prog.Declarations[1].Name != "second" {
		t.Fatalf("unexpected name %q", prog.Declarations[1].Name)
	}
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parse(t, "  # nothing here\n")

	if len(prog.Declarations) != 0 {
		t.Fatalf("expected no declarations, got %d", len(prog.Declarations))
	}
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ [integer 1] (* [integer 2] [integer 3]))"},
		{"1 * 2 + 3", "(+ (* [integer 1] [integer 2]) [integer 3])"},
		{"a - b - c", "(- (- a b) c)"},
		{"a / b % c", "(% (/ a b) c)"},
		{"a ^ b ^ c", "(^ a (^ b c))"},
		{"-a ^ 2", "(^ (- a) [integer 2])"},
		{"2 * -a", "(* [integer 2] (- a))"},
		{"not a and b or c", "(or (and (not a) b) c)"},
		{"a or b and c", "(or a (and b c))"},
		{"a + 1 < b * 2", "(< (+ a [integer 1]) (* b [integer 2]))"},
		{"a < b == c", "(== (< a b) c)"},
		{"a != b and c >= d", "(and (!= a b) (>= c d))"},
		{"(a + b) * c", "(* (group (+ a b)) c)"},
		{"f(x, 1) + g()", `(+ (call "f" (x [integer 1])) (call "g" ()))`},
		{"-f(x)", `(- (call "f" (x)))`},
		{"+ +a", "(+ (+ a))"},
	}

	for i, tt := range tests {
		if got := stringifyNode(parseExpr(t, tt.input)); got != tt.want {
			t.Errorf("tests[%d] %q - expected=%s, got=%s", i, tt.input, tt.want, got)
		}
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hi"`, `[string "hi"]`},
		{"true", "[boolean true]"},
		{"false", "[boolean false]"},
		{"2.5i", "[complex float 2.5i]"},
		{"7i", "[complex integer 7i]"},
		{"1.5", "[float 1.5]"},
	}

	for i, tt := range tests {
		if got := stringifyNode(parseExpr(t, tt.input)); got != tt.want {
			t.Errorf("tests[%d] %q - expected=%s, got=%s", i, tt.input, tt.want, got)
		}
	}
}

func TestParseListsAndMatrices(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[]", "(list ())"},
		{"[1, 2]", "(list ([integer 1] [integer 2]))"},
		{"[[1], []]", "(list ((list ([integer 1])) (list ())))"},
		{"[1, 2 | 3, 4]", "(matrix ([integer 1] [integer 2]) ([integer 3] [integer 4]))"},
		{"[1 || 2]", "(matrix ([integer 1]) ([integer 2]))"},
		{"[a | b || c]", "(matrix (a) (b) (c))"},
		{"[ | ]", "(matrix () ())"},
	}

	for i, tt := range tests {
		if got := stringifyNode(parseExpr(t, tt.input)); got != tt.want {
			t.Errorf("tests[%d] %q - expected=%s, got=%s", i, tt.input, tt.want, got)
		}
	}
}

func TestEmptyListHasNilItems(t *testing.T) {
	list, ok := parseExpr(t, "[]").(*ListExpr)
	if !ok {
		t.Fatal("expected *ListExpr")
	}

	if list.Items != nil {
		t.Fatalf("empty list should hold a nil slot, got %+v", list.Items)
	}

	if SpanOf(list) != span(1, 1, 1, 2) {
		t.Fatalf("unexpected span %s", SpanOf(list))
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		input          string
		classification string
		description    string
		span           source.Span
	}{
		{"[1, 2 | 3]", feedback.ParseError, "the 2nd row has 1 item but the 1st row has 2 items", span(1, 9, 1, 9)},
		{"[1 | 2 | ]", feedback.ParseError, "the 3rd row has 0 items but the 1st row has 1 item", span(1, 8, 1, 8)},
		{"[1 | | 2]", feedback.ParseError, "the 2nd row has 0 items but the 1st row has 1 item", span(1, 4, 1, 4)},
		{"[ || 1, 2]", feedback.ParseError, "the 2nd row has 2 items but the 1st row has 0 items", span(1, 6, 1, 9)},
		{"a b", feedback.UnexpectedToken, "expected the end of the expression, found Identifier `b`", span(1, 3, 1, 3)},
		{"(a", feedback.UnexpectedToken, "expected `)` instead found the end of the program", span(1, 2, 1, 2)},
		{"[1, 2", feedback.UnexpectedToken, "expected `]` instead found the end of the program", span(1, 5, 1, 5)},
		{"(a)(b)", feedback.ParseError, "only named functions can be called", span(1, 1, 1, 4)},
		{"1 +", feedback.UnexpectedToken, "expected an expression, found the end of the program", span(1, 3, 1, 3)},
		{"", feedback.UnexpectedToken, "expected an expression, found the end of the program", span(1, 1, 1, 1)},
	}

	for i, tt := range tests {
		_, msg := ParseExpression(source.NewFile("test.qk", tt.input))
		if msg == nil {
			t.Errorf("tests[%d] %q - expected an error", i, tt.input)
			continue
		}

		err := msg.(feedback.Error)

		if err.Classification != tt.classification {
			t.Errorf("tests[%d] %q - classification wrong. expected=%q, got=%q", i, tt.input, tt.classification, err.Classification)
		}

		if err.What.Description != tt.description {
			t.Errorf("tests[%d] %q - description wrong. expected=%q, got=%q", i, tt.input, tt.description, err.What.Description)
		}

		if err.Span() != tt.span {
			t.Errorf("tests[%d] %q - span wrong. expected=%s, got=%s", i, tt.input, tt.span, err.Span())
		}
	}
}

func TestCompositeSpansCoverChildren(t *testing.T) {
	expr := parseExpr(t, "-(a + b) * [1, c | 2, d]")

	infix := expr.(*InfixExpr)
	if SpanOf(infix) != span(1, 1, 1, 24) {
		t.Fatalf("unexpected span %s", SpanOf(infix))
	}

	matrix := infix.Right.(*MatrixExpr)
	for _, row := range matrix.Rows {
		if !SpanOf(matrix).Covers(SpanOf(row)) {
			t.Fatalf("matrix span %s does not cover row %s", SpanOf(matrix), SpanOf(row))
		}
	}

	prefix := infix.Left.(*PrefixExpr)
	if !SpanOf(infix).Covers(SpanOf(prefix)) || SpanOf(prefix) != span(1, 1, 1, 8) {
		t.Fatalf("unexpected prefix span %s", SpanOf(prefix))
	}
}

func TestParseLexErrorStopsParsing(t *testing.T) {
	err := parseError(t, `fn f() { return "open }`)

	if err.Classification != feedback.LexError {
		t.Fatalf("expected %q, got %q", feedback.LexError, err.Classification)
	}
}

func TestPluralize(t *testing.T) {
	tests := map[int]string{0: "0 items", 1: "1 item", 2: "2 items", 11: "11 items"}

	for n, want := range tests {
		if got := pluralize(n, "item"); got != want {
			t.Errorf("pluralize(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestToOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 103: "103rd"}

	for n, want := range tests {
		if got := toOrdinal(n); got != want {
			t.Errorf("toOrdinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestEveryExpressionIsAStatement(t *testing.T) {
	prog := parse(t, `fn f(a) { a; 1; "s"; (a); [a]; [a | a]; -a; a + 1; g(a) }`)

	stmts := prog.Declarations[0].Body.Statements
	if len(stmts) != 9 {
		t.Fatalf("expected 9 statements, got %d", len(stmts))
	}

	for i, stmt := range stmts {
		expr, ok := stmt.(Expr)
		if !ok {
			t.Fatalf("statements[%d] - expected an expression, got %T", i, stmt)
		}

		var asStmt Stmt = expr
		if SpanOf(asStmt) != SpanOf(stmt) {
			t.Errorf("statements[%d] - span changed through the Stmt interface", i)
		}
	}
}
