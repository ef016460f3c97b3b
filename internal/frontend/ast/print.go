package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fdump writes a readable rendering of the program to w, one statement per
// line with nested bodies indented. Expressions are fully parenthesized so
// the resolved precedence is visible.
func Fdump(w io.Writer, program *Program) {
	for _, stmt := range program.Statements {
		dumpStmt(w, stmt, 0)
	}
}

// Dump renders the program as a string. Used by tests and the REPL.
func Dump(program *Program) string {
	var sb strings.Builder
	Fdump(&sb, program)
	return sb.String()
}

func dumpStmt(w io.Writer, stmt Statement, depth int) {
	indent := strings.Repeat("    ", depth)

	switch s := stmt.(type) {
	case *ExprStmt:
		fmt.Fprintf(w, "%s%s\n", indent, ExprString(s.X))
	case *Assignment:
		fmt.Fprintf(w, "%s%s = %s\n", indent, s.Name, ExprString(s.Value))
	case *ReturnStmt:
		if s.Value == nil {
			fmt.Fprintf(w, "%sreturn\n", indent)
		} else {
			fmt.Fprintf(w, "%sreturn %s\n", indent, ExprString(s.Value))
		}
	case *BreakStmt:
		fmt.Fprintf(w, "%sbreak\n", indent)
	case *ContinueStmt:
		fmt.Fprintf(w, "%scontinue\n", indent)
	case *IfStmt:
		fmt.Fprintf(w, "%sif %s {\n", indent, ExprString(s.Cond))
		for _, inner := range s.Body {
			dumpStmt(w, inner, depth+1)
		}
		dumpElse(w, s.Else, depth)
		fmt.Fprintf(w, "%s}\n", indent)
	case *BlockStmt:
		fmt.Fprintf(w, "%s{\n", indent)
		for _, inner := range s.Statements {
			dumpStmt(w, inner, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", indent)
	case *ForStmt:
		fmt.Fprintf(w, "%sfor %s in %s {\n", indent, s.Binding, ExprString(s.Iterable))
		for _, inner := range s.Body {
			dumpStmt(w, inner, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", indent)
	case *FunctionStmt:
		fmt.Fprintf(w, "%s%s = (%s) => {\n", indent, s.Name, strings.Join(s.Params, ", "))
		for _, inner := range s.Body {
			dumpStmt(w, inner, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", indent)
	default:
		fmt.Fprintf(w, "%s<unknown statement>\n", indent)
	}
}

func dumpElse(w io.Writer, elseStmt Statement, depth int) {
	if elseStmt == nil {
		return
	}
	indent := strings.Repeat("    ", depth)

	switch s := elseStmt.(type) {
	case *IfStmt:
		fmt.Fprintf(w, "%s} else if %s {\n", indent, ExprString(s.Cond))
		for _, inner := range s.Body {
			dumpStmt(w, inner, depth+1)
		}
		dumpElse(w, s.Else, depth)
	case *BlockStmt:
		fmt.Fprintf(w, "%s} else {\n", indent)
		for _, inner := range s.Statements {
			dumpStmt(w, inner, depth+1)
		}
	}
}

// ExprString renders an expression with explicit parentheses around every
// compound subexpression.
func ExprString(expr Expression) string {
	switch e := expr.(type) {
	case *IntLit:
		return fmt.Sprintf("%d", e.Value)
	case *FloatLit:
		return fmt.Sprintf("%g", e.Value)
	case *StringLit:
		return fmt.Sprintf("%q", e.Value)
	case *BoolLit:
		return fmt.Sprintf("%t", e.Value)
	case *Ident:
		return e.Name
	case *UnaryExpr:
		return fmt.Sprintf("(%s%s)", e.Op, ExprString(e.X))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", ExprString(e.X), e.Op, ExprString(e.Y))
	case *CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = ExprString(arg)
		}
		return fmt.Sprintf("%s(%s)", ExprString(e.Callee), strings.Join(args, ", "))
	default:
		return "<unknown expression>"
	}
}
