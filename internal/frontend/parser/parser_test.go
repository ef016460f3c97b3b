package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/vcokltfre/viper/internal/frontend/ast"
	"github.com/vcokltfre/viper/internal/frontend/lexer"
)

func parseSource(t *testing.T, source string) *ast.Program {
	t.Helper()

	tokens, err := lexer.TokenizeString("test.vpr", source)
	if err != nil {
		t.Fatalf("tokenize %q: %v", source, err)
	}

	program, err := Parse(tokens, "test.vpr", source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return program
}

func TestParse_Precedence(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"x = 1 + 2 * 3", "x = (1 + (2 * 3))\n"},
		{"x = (1 + 2) * 3", "x = ((1 + 2) * 3)\n"},
		{"x = 1 + 2 + 3", "x = ((1 + 2) + 3)\n"},
		{"x = 2 ** 3 ** 2", "x = (2 ** (3 ** 2))\n"},
		{"x = a && b || c", "x = ((a && b) || c)\n"},
		{"x = a < b == c < d", "x = ((a < b) == (c < d))\n"},
		{"x = 1 .. n + 1", "x = (1 .. (n + 1))\n"},
		{"x = a - -b", "x = (a - (-b))\n"},
		{"x = !a && !b", "x = ((!a) && (!b))\n"},
		{"x = 10 % 3 - 1", "x = ((10 % 3) - 1)\n"},
	}

	for _, tc := range cases {
		program := parseSource(t, tc.source)
		if got := ast.Dump(program); got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.source, got, tc.want)
		}
	}
}

func TestParse_Literals(t *testing.T) {
	program := parseSource(t, `x = -3.5
y = "hi\n"
z = true`)

	want := "x = -3.5\ny = \"hi\\n\"\nz = true\n"
	if got := ast.Dump(program); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_Assignment(t *testing.T) {
	program := parseSource(t, "count = count + 1")

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}

	assign, ok := program.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", program.Statements[0])
	}
	if assign.Name != "count" {
		t.Errorf("expected name count, got %s", assign.Name)
	}

	want := &ast.BinaryExpr{
		Op: ast.OpAdd,
		X: &ast.Ident{
			Name:  "count",
			Token: lexer.Token{Kind: lexer.IDENTIFIER_TOKEN, Value: "count", Line: 1, Column: 9, Index: 8, Length: 5, Filename: "test.vpr"},
		},
		Y: &ast.IntLit{
			Value: 1,
			Token: lexer.Token{Kind: lexer.INT_TOKEN, Int: 1, Line: 1, Column: 17, Index: 16, Length: 1, Filename: "test.vpr"},
		},
		Token: lexer.Token{Kind: lexer.PLUS_TOKEN, Line: 1, Column: 15, Index: 14, Length: 1, Filename: "test.vpr"},
	}
	if diff := deep.Equal(assign.Value, want); diff != nil {
		t.Errorf("value mismatch: %v", diff)
	}
}

func TestParse_IfElseChain(t *testing.T) {
	source := `if x < 0 {
    sign = -1
} else if x == 0 {
    sign = 0
} else {
    sign = 1
}`
	program := parseSource(t, source)

	want := `if (x < 0) {
    sign = -1
} else if (x == 0) {
    sign = 0
} else {
    sign = 1
}
`
	if got := ast.Dump(program); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_ForLoop(t *testing.T) {
	program := parseSource(t, `for i in 0 .. 10 {
    total = total + i
    if i == 5 {
        break
    }
    continue
}`)

	stmt, ok := program.Statements[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", program.Statements[0])
	}
	if stmt.Binding != "i" {
		t.Errorf("expected binding i, got %s", stmt.Binding)
	}
	if len(stmt.Body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(stmt.Body))
	}
	if _, ok := stmt.Body[2].(*ast.ContinueStmt); !ok {
		t.Errorf("expected *ast.ContinueStmt, got %T", stmt.Body[2])
	}
}

func TestParse_Function(t *testing.T) {
	source := `add = (a, b) => {
    return a + b
}`
	program := parseSource(t, source)

	fn, ok := program.Statements[0].(*ast.FunctionStmt)
	if !ok {
		t.Fatalf("expected *ast.FunctionStmt, got %T", program.Statements[0])
	}
	if fn.Name != "add" {
		t.Errorf("expected name add, got %s", fn.Name)
	}
	if diff := deep.Equal(fn.Params, []string{"a", "b"}); diff != nil {
		t.Errorf("params mismatch: %v", diff)
	}

	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body[0])
	}
	if ast.ExprString(ret.Value) != "(a + b)" {
		t.Errorf("unexpected return value: %s", ast.ExprString(ret.Value))
	}
}

func TestParse_ParenthesizedNotFunction(t *testing.T) {
	program := parseSource(t, "x = (a)")

	assign := program.Statements[0].(*ast.Assignment)
	if _, ok := assign.Value.(*ast.Ident); !ok {
		t.Fatalf("expected *ast.Ident, got %T", assign.Value)
	}
}

func TestParse_Call(t *testing.T) {
	program := parseSource(t, `result = add(1, mul(2, 3))`)

	want := "result = add(1, mul(2, 3))\n"
	if got := ast.Dump(program); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		source      string
		line        int
		column      int
		msgContains string
	}{
		{"x = ", 1, 4, "Unexpected token"},
		{"x = (1 + 2", 1, 11, "Expected )"},
		{"if x {", 1, 7, "Unexpected end of input"},
		{"for in 0 .. 10 {}", 1, 5, "Expected identifier"},
		{"for i 0 .. 10 {}", 1, 7, "Expected in"},
		{"1 +\n* 2", 2, 1, "Unexpected token"},
	}

	for _, tc := range cases {
		tokens, err := lexer.TokenizeString("test.vpr", tc.source)
		if err != nil {
			t.Fatalf("tokenize %q: %v", tc.source, err)
		}

		program, err := Parse(tokens, "test.vpr", tc.source)
		if err == nil {
			t.Errorf("%q: expected error, got program %v", tc.source, program)
			continue
		}

		var parseErr *Error
		if !errors.As(err, &parseErr) {
			t.Errorf("%q: expected *parser.Error, got %T", tc.source, err)
			continue
		}
		if parseErr.Line != tc.line || parseErr.Column != tc.column {
			t.Errorf("%q: expected position %d:%d, got %d:%d", tc.source, tc.line, tc.column, parseErr.Line, parseErr.Column)
		}
		if !strings.Contains(parseErr.Message, tc.msgContains) {
			t.Errorf("%q: expected message containing %q, got %q", tc.source, tc.msgContains, parseErr.Message)
		}
	}
}

func TestParse_ErrorRendering(t *testing.T) {
	source := "x = 1 +\n* 2"
	tokens, err := lexer.TokenizeString("test.vpr", source)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	_, err = Parse(tokens, "test.vpr", source)
	if err == nil {
		t.Fatal("expected error")
	}

	rendered := err.Error()
	if !strings.Contains(rendered, "Parsing failed:") {
		t.Errorf("missing header: %q", rendered)
	}
	if !strings.Contains(rendered, "--> test.vpr:2:1") {
		t.Errorf("missing location: %q", rendered)
	}
	if !strings.Contains(rendered, "* 2") {
		t.Errorf("missing line context: %q", rendered)
	}
	if !strings.Contains(rendered, "~") {
		t.Errorf("missing underline: %q", rendered)
	}
}

func TestParse_Empty(t *testing.T) {
	program := parseSource(t, "   \n\t\n")
	if len(program.Statements) != 0 {
		t.Errorf("expected no statements, got %d", len(program.Statements))
	}
}
