package ast

import "github.com/vcokltfre/viper/internal/frontend/lexer"

// Operator is the resolved operator of a unary or binary expression. It is
// derived from the token kind at parse time so later passes never need to
// consult the token stream again.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow

	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	OpAnd
	OpOr
	OpNot

	OpRange
	OpNegate
)

var operatorNames = map[Operator]string{
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpMod:          "%",
	OpPow:          "**",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpAnd:          "&&",
	OpOr:           "||",
	OpNot:          "!",
	OpRange:        "..",
	OpNegate:       "-",
}

func (op Operator) String() string {
	return operatorNames[op]
}

// Node is implemented by every syntax tree node. Tok returns the token the
// node starts at, which carries the position used in diagnostics.
type Node interface {
	Tok() lexer.Token
}

// Expression nodes produce a value.
type Expression interface {
	Node
	exprNode()
}

// Statement nodes do not produce a value.
type Statement interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source file or REPL line.
type Program struct {
	Filename   string
	Statements []Statement
}

// ============================================================================
// Expressions
// ============================================================================

type IntLit struct {
	Value int64
	Token lexer.Token
}

type FloatLit struct {
	Value float64
	Token lexer.Token
}

type StringLit struct {
	Value string
	Token lexer.Token
}

type BoolLit struct {
	Value bool
	Token lexer.Token
}

type Ident struct {
	Name  string
	Token lexer.Token
}

// UnaryExpr is a prefix operation: !x or -x.
type UnaryExpr struct {
	Op    Operator
	X     Expression
	Token lexer.Token // the operator token
}

// BinaryExpr is a left operand, an operator and a right operand. Precedence
// and associativity are already resolved in the tree shape.
type BinaryExpr struct {
	Op    Operator
	X     Expression
	Y     Expression
	Token lexer.Token // the operator token
}

// CallExpr is a function invocation: callee(arg, ...).
type CallExpr struct {
	Callee Expression
	Args   []Expression
	Token  lexer.Token // the opening parenthesis
}

func (e *IntLit) Tok() lexer.Token     { return e.Token }
func (e *FloatLit) Tok() lexer.Token   { return e.Token }
func (e *StringLit) Tok() lexer.Token  { return e.Token }
func (e *BoolLit) Tok() lexer.Token    { return e.Token }
func (e *Ident) Tok() lexer.Token      { return e.Token }
func (e *UnaryExpr) Tok() lexer.Token  { return e.Token }
func (e *BinaryExpr) Tok() lexer.Token { return e.Token }
func (e *CallExpr) Tok() lexer.Token   { return e.Token }

func (*IntLit) exprNode()     {}
func (*FloatLit) exprNode()   {}
func (*StringLit) exprNode()  {}
func (*BoolLit) exprNode()    {}
func (*Ident) exprNode()      {}
func (*UnaryExpr) exprNode()  {}
func (*BinaryExpr) exprNode() {}
func (*CallExpr) exprNode()   {}

// ============================================================================
// Statements
// ============================================================================

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	X Expression
}

// Assignment binds the value of an expression to a name: name = expr.
type Assignment struct {
	Name  string
	Value Expression
	Token lexer.Token // the identifier token
}

type ReturnStmt struct {
	Value Expression // nil for a bare return
	Token lexer.Token
}

type BreakStmt struct {
	Token lexer.Token
}

type ContinueStmt struct {
	Token lexer.Token
}

// IfStmt is a conditional with an optional else branch. Else is either a
// block ([]Statement wrapped by the parser) or another IfStmt for else-if
// chains; it is nil when absent.
type IfStmt struct {
	Cond  Expression
	Body  []Statement
	Else  Statement // *IfStmt or *BlockStmt, nil when absent
	Token lexer.Token
}

// BlockStmt groups statements between curly braces.
type BlockStmt struct {
	Statements []Statement
	Token      lexer.Token // the opening brace
}

// ForStmt iterates a binding over an iterable: for name in expr { }.
type ForStmt struct {
	Binding  string
	Iterable Expression
	Body     []Statement
	Token    lexer.Token
}

// FunctionStmt declares a named function: name = (params) => { body }.
type FunctionStmt struct {
	Name   string
	Params []string
	Body   []Statement
	Token  lexer.Token // the identifier token
}

func (s *ExprStmt) Tok() lexer.Token     { return s.X.Tok() }
func (s *Assignment) Tok() lexer.Token   { return s.Token }
func (s *ReturnStmt) Tok() lexer.Token   { return s.Token }
func (s *BreakStmt) Tok() lexer.Token    { return s.Token }
func (s *ContinueStmt) Tok() lexer.Token { return s.Token }
func (s *IfStmt) Tok() lexer.Token       { return s.Token }
func (s *BlockStmt) Tok() lexer.Token    { return s.Token }
func (s *ForStmt) Tok() lexer.Token      { return s.Token }
func (s *FunctionStmt) Tok() lexer.Token { return s.Token }

func (*ExprStmt) stmtNode()     {}
func (*Assignment) stmtNode()   {}
func (*ReturnStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*IfStmt) stmtNode()       {}
func (*BlockStmt) stmtNode()    {}
func (*ForStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode() {}
