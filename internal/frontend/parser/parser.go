package parser

import (
	"fmt"
	"strings"

	"github.com/vcokltfre/viper/internal/frontend/ast"
	"github.com/vcokltfre/viper/internal/frontend/lexer"
)

// Parser holds temporary state during parsing of a single token stream.
// It is created per parse and never reused.
type Parser struct {
	tokens   []lexer.Token
	lines    []string
	filename string
	current  int
}

// New creates a parser over a token stream. The source text is only used to
// recover line context for diagnostics.
func New(tokens []lexer.Token, filename, source string) *Parser {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &Parser{
		tokens:   withSentinel(tokens, filename),
		lines:    lines,
		filename: filename,
	}
}

// Parse tokenizes nothing itself: it consumes an already-produced token
// stream and returns the program, or the first parsing error.
func Parse(tokens []lexer.Token, filename, source string) (*ast.Program, error) {
	return New(tokens, filename, source).Parse()
}

// Parse consumes the whole token stream into a program.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{
		Filename:   p.filename,
		Statements: []ast.Statement{},
	}

	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

// withSentinel appends a synthetic end-of-input token positioned just past
// the last real token, so errors at end of input still point somewhere.
func withSentinel(tokens []lexer.Token, filename string) []lexer.Token {
	eof := lexer.Token{Kind: lexer.EOF_TOKEN, Line: 1, Column: 1, Filename: filename}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		eof.Line = last.Line
		eof.Column = last.Column + last.Length
		eof.Index = last.Index + last.Length
	}
	return append(tokens, eof)
}

// ============================================================================
// Statements
// ============================================================================

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.IF_TOKEN:
		return p.parseIf()
	case lexer.FOR_TOKEN:
		return p.parseFor()
	case lexer.RETURN_TOKEN:
		return p.parseReturn()
	case lexer.BREAK_TOKEN:
		p.advance()
		return &ast.BreakStmt{Token: tok}, nil
	case lexer.CONTINUE_TOKEN:
		p.advance()
		return &ast.ContinueStmt{Token: tok}, nil
	case lexer.IDENTIFIER_TOKEN:
		if p.peekAt(1).Kind == lexer.EQUALS_TOKEN {
			return p.parseAssignment()
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: expr}, nil
}

// parseAssignment: name = expr, or name = (params) => { body }.
func (p *Parser) parseAssignment() (ast.Statement, error) {
	name := p.advance()
	p.advance() // =

	if p.looksLikeFunction() {
		return p.parseFunction(name)
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Assignment{
		Name:  name.Value,
		Value: value,
		Token: name,
	}, nil
}

// looksLikeFunction reports whether the upcoming tokens form a parameter
// list followed by an arrow. Needed because "x = (a)" is a parenthesized
// expression while "x = (a) => {...}" is a function.
func (p *Parser) looksLikeFunction() bool {
	if p.peek().Kind != lexer.OPEN_PAREN {
		return false
	}

	offset := 1
	for {
		switch p.peekAt(offset).Kind {
		case lexer.CLOSE_PAREN:
			return p.peekAt(offset + 1).Kind == lexer.ARROW_TOKEN
		case lexer.IDENTIFIER_TOKEN, lexer.COMMA_TOKEN:
			offset++
		default:
			return false
		}
	}
}

func (p *Parser) parseFunction(name lexer.Token) (ast.Statement, error) {
	if _, err := p.expect(lexer.OPEN_PAREN); err != nil {
		return nil, err
	}

	params := []string{}
	for !p.check(lexer.CLOSE_PAREN) {
		param, err := p.expect(lexer.IDENTIFIER_TOKEN)
		if err != nil {
			return nil, err
		}
		params = append(params, param.Value)

		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}

	if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ARROW_TOKEN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionStmt{
		Name:   name.Value,
		Params: params,
		Body:   body,
		Token:  name,
	}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	tok := p.advance()

	// A bare return is only valid when nothing parseable follows on the
	// statement level, which for this grammar means a closing brace or the
	// end of input.
	if p.check(lexer.CLOSE_CURLY) || p.isAtEnd() {
		return &ast.ReturnStmt{Token: tok}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{Value: value, Token: tok}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseStmt ast.Statement
	if p.match(lexer.ELSE_TOKEN) {
		if p.check(lexer.IF_TOKEN) {
			elseStmt, err = p.parseIf()
		} else {
			brace := p.peek()
			var block []ast.Statement
			block, err = p.parseBlock()
			elseStmt = &ast.BlockStmt{Statements: block, Token: brace}
		}
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{
		Cond:  cond,
		Body:  body,
		Else:  elseStmt,
		Token: tok,
	}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	tok := p.advance()

	binding, err := p.expect(lexer.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN_TOKEN); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForStmt{
		Binding:  binding.Value,
		Iterable: iterable,
		Body:     body,
		Token:    tok,
	}, nil
}

func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(lexer.OPEN_CURLY); err != nil {
		return nil, err
	}

	stmts := []ast.Statement{}
	for !p.check(lexer.CLOSE_CURLY) {
		if p.isAtEnd() {
			return nil, p.errorf("Unexpected end of input inside block")
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	p.advance() // }
	return stmts, nil
}

// ============================================================================
// Expressions
// ============================================================================

// binaryPrecedence orders the binary operators from loosest to tightest.
// Exponentiation additionally binds right to left.
var binaryPrecedence = map[lexer.TOKEN]int{
	lexer.OR_TOKEN:  1,
	lexer.AND_TOKEN: 2,

	lexer.DOUBLE_EQUAL_TOKEN: 3,
	lexer.NOT_EQUAL_TOKEN:    3,

	lexer.LESS_TOKEN:          4,
	lexer.LESS_EQUAL_TOKEN:    4,
	lexer.GREATER_TOKEN:       4,
	lexer.GREATER_EQUAL_TOKEN: 4,

	lexer.RANGE_TOKEN: 5,

	lexer.PLUS_TOKEN:  6,
	lexer.MINUS_TOKEN: 6,

	lexer.MUL_TOKEN: 7,
	lexer.DIV_TOKEN: 7,
	lexer.MOD_TOKEN: 7,

	lexer.POWER_TOKEN: 8,
}

var binaryOperators = map[lexer.TOKEN]ast.Operator{
	lexer.OR_TOKEN:            ast.OpOr,
	lexer.AND_TOKEN:           ast.OpAnd,
	lexer.DOUBLE_EQUAL_TOKEN:  ast.OpEqual,
	lexer.NOT_EQUAL_TOKEN:     ast.OpNotEqual,
	lexer.LESS_TOKEN:          ast.OpLess,
	lexer.LESS_EQUAL_TOKEN:    ast.OpLessEqual,
	lexer.GREATER_TOKEN:       ast.OpGreater,
	lexer.GREATER_EQUAL_TOKEN: ast.OpGreaterEqual,
	lexer.RANGE_TOKEN:         ast.OpRange,
	lexer.PLUS_TOKEN:          ast.OpAdd,
	lexer.MINUS_TOKEN:         ast.OpSub,
	lexer.MUL_TOKEN:           ast.OpMul,
	lexer.DIV_TOKEN:           ast.OpDiv,
	lexer.MOD_TOKEN:           ast.OpMod,
	lexer.POWER_TOKEN:         ast.OpPow,
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseBinary(1)
}

// parseBinary is a precedence climber: it keeps folding operators at or
// above minPrecedence into the left operand.
func (p *Parser) parseBinary(minPrecedence int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek()
		precedence, ok := binaryPrecedence[op.Kind]
		if !ok || precedence < minPrecedence {
			return left, nil
		}
		p.advance()

		next := precedence + 1
		if op.Kind == lexer.POWER_TOKEN {
			next = precedence
		}

		right, err := p.parseBinary(next)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Op:    binaryOperators[op.Kind],
			X:     left,
			Y:     right,
			Token: op,
		}
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.peek()

	var op ast.Operator
	switch tok.Kind {
	case lexer.NOT_TOKEN:
		op = ast.OpNot
	case lexer.MINUS_TOKEN:
		op = ast.OpNegate
	default:
		return p.parsePostfix()
	}

	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryExpr{Op: op, X: operand, Token: tok}, nil
}

func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.OPEN_PAREN) {
		paren := p.advance()

		args := []ast.Expression{}
		for !p.check(lexer.CLOSE_PAREN) {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.match(lexer.COMMA_TOKEN) {
				break
			}
		}

		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}

		expr = &ast.CallExpr{Callee: expr, Args: args, Token: paren}
	}

	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.INT_TOKEN:
		p.advance()
		return &ast.IntLit{Value: tok.Int, Token: tok}, nil

	case lexer.FLOAT_TOKEN:
		p.advance()
		return &ast.FloatLit{Value: tok.Float, Token: tok}, nil

	case lexer.STRING_TOKEN:
		p.advance()
		return &ast.StringLit{Value: tok.Value, Token: tok}, nil

	case lexer.BOOL_TOKEN:
		p.advance()
		return &ast.BoolLit{Value: tok.Bool, Token: tok}, nil

	case lexer.IDENTIFIER_TOKEN:
		p.advance()
		return &ast.Ident{Name: tok.Value, Token: tok}, nil

	case lexer.OPEN_PAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorf("Unexpected token: %s", tok)
	}
}

// ============================================================================
// Cursor helpers
// ============================================================================

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF_TOKEN
}

func (p *Parser) peek() lexer.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) lexer.Token {
	if p.current+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+offset]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind lexer.TOKEN) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorf("Expected %s but got %s", kind, p.peek())
}

// errorf builds a parsing error pointing at the current token.
func (p *Parser) errorf(format string, args ...any) error {
	tok := p.peek()

	context := ""
	if tok.Line-1 >= 0 && tok.Line-1 < len(p.lines) {
		context = p.lines[tok.Line-1]
	}

	return &Error{
		Line:        tok.Line,
		Column:      tok.Column,
		Index:       tok.Index,
		Filename:    tok.Filename,
		Message:     fmt.Sprintf(format, args...),
		LineContext: context,
		TokenSize:   tok.Length,
	}
}
