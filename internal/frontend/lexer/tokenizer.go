package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ============================================================================
// TOKENIZER - Source Text to Token Conversion
// ============================================================================
//
// The Tokenizer owns the source text and a cursor and converts the text into
// a flat token sequence for the parser. It is built once per file and drained
// by a single Tokenize call; it performs no I/O and holds no shared state, so
// independent files can be tokenized in parallel with one Tokenizer each.

// Tokenizer scans a single in-memory source string.
type Tokenizer struct {
	filename string
	source   []rune
	lines    []string
	index    int
	line     int
	column   int
	prev     TOKEN // kind of the last emitted token, for the negative fold
}

// New creates a tokenizer for the given source. The filename is used for
// diagnostics only; reading the file is the caller's responsibility.
func New(filename, source string) *Tokenizer {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &Tokenizer{
		filename: filename,
		source:   []rune(source),
		lines:    lines,
		line:     1,
		column:   1,
	}
}

// TokenizeString tokenizes source in a single call.
func TokenizeString(filename, source string) ([]Token, error) {
	return New(filename, source).Tokenize()
}

// Tokenize drains the source to a complete token sequence or the first
// error. The terminating EOF sentinel is consumed internally and never
// appears in the result.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF_TOKEN {
			return tokens, nil
		}
		t.prev = tok.Kind
		tokens = append(tokens, tok)
	}
}

// next skips insignificant whitespace and produces exactly one token,
// dispatching on the leading character.
func (t *Tokenizer) next() (Token, error) {
	t.skipWhitespace()

	if t.isEnd() {
		return t.makeToken(EOF_TOKEN, t.mark()), nil
	}

	c, _ := t.peek(0)

	switch {
	case c == '-':
		start := t.mark()
		if next, ok := t.peek(1); ok && isDigit(next) && t.foldsNegative() {
			t.advance()
			return t.scanNumber(start, true)
		}
		t.advance()
		return t.makeToken(MINUS_TOKEN, start), nil
	case isOperatorChar(c):
		return t.scanOperator()
	case isDigit(c):
		return t.scanNumber(t.mark(), false)
	case isLetter(c):
		return t.scanIdentifier()
	case c == '"':
		return t.scanString()
	default:
		return Token{}, t.errorf(UnexpectedCharacter, "Unexpected character: %c", c)
	}
}

// foldsNegative reports whether a '-' immediately followed by a digit starts
// a negative literal. After an expression terminal the '-' must stay a
// subtraction operator so that `a - 5` keeps its operator.
func (t *Tokenizer) foldsNegative() bool {
	switch t.prev {
	case IDENTIFIER_TOKEN, INT_TOKEN, FLOAT_TOKEN, STRING_TOKEN, BOOL_TOKEN,
		CLOSE_PAREN, CLOSE_CURLY:
		return false
	}
	return true
}

// scanOperator performs greedy longest-match over the two-character operator
// table, degrading to a single-character token when no pair matches. The
// lookahead only peeks; both advances are committed together on a match.
func (t *Tokenizer) scanOperator() (Token, error) {
	start := t.mark()
	c, _ := t.peek(0)

	if next, ok := t.peek(1); ok {
		if kind, matched := twoCharOperator(c, next); matched {
			t.advance()
			t.advance()
			return t.makeToken(kind, start), nil
		}
	}

	return t.scanSingle(start)
}

func twoCharOperator(first, second rune) (TOKEN, bool) {
	switch string([]rune{first, second}) {
	case "**":
		return POWER_TOKEN, true
	case "==":
		return DOUBLE_EQUAL_TOKEN, true
	case ">=":
		return GREATER_EQUAL_TOKEN, true
	case "<=":
		return LESS_EQUAL_TOKEN, true
	case "!=":
		return NOT_EQUAL_TOKEN, true
	case "&&":
		return AND_TOKEN, true
	case "||":
		return OR_TOKEN, true
	case "=>":
		return ARROW_TOKEN, true
	case "..":
		return RANGE_TOKEN, true
	}
	return EOF_TOKEN, false
}

func (t *Tokenizer) scanSingle(start mark) (Token, error) {
	c, _ := t.peek(0)
	t.advance()

	var kind TOKEN
	switch c {
	case '+':
		kind = PLUS_TOKEN
	case '-':
		kind = MINUS_TOKEN
	case '*':
		kind = MUL_TOKEN
	case '/':
		kind = DIV_TOKEN
	case '%':
		kind = MOD_TOKEN
	case ',':
		kind = COMMA_TOKEN
	case '.':
		kind = DOT_TOKEN
	case '!':
		kind = NOT_TOKEN
	case '=':
		kind = EQUALS_TOKEN
	case '<':
		kind = LESS_TOKEN
	case '>':
		kind = GREATER_TOKEN
	case '(':
		kind = OPEN_PAREN
	case ')':
		kind = CLOSE_PAREN
	case '{':
		kind = OPEN_CURLY
	case '}':
		kind = CLOSE_CURLY
	default:
		// A lone '&' or '|' lands here: valid only as part of a pair.
		return Token{}, t.errorAt(start, UnexpectedCharacter, "Unexpected character: %c", c)
	}

	return t.makeToken(kind, start), nil
}

// scanNumber consumes a digit run with at most one decimal point. A '.'
// followed by a second '.' terminates the number instead, so `1..5` scans as
// a range over two integers.
func (t *Tokenizer) scanNumber(start mark, negative bool) (Token, error) {
	var text strings.Builder
	if negative {
		text.WriteRune('-')
	}
	isFloat := false

	for {
		c, ok := t.peek(0)
		if !ok {
			break
		}

		if isDigit(c) {
			text.WriteRune(c)
			t.advance()
			continue
		}

		if c == '.' {
			if next, ok := t.peek(1); ok && next == '.' {
				break
			}
			if isFloat {
				return Token{}, t.errorf(MalformedFloat, "Illegal second decimal point in float literal: '.'")
			}
			isFloat = true
			text.WriteRune(c)
			t.advance()
			continue
		}

		break
	}

	if !t.isBoundary() {
		c, _ := t.peek(0)
		return Token{}, t.errorf(InvalidNumericSuffix, "Unexpected character in numeric literal: %c", c)
	}

	tok := t.makeToken(INT_TOKEN, start)

	// The consumed text is numeric-grammar-valid by construction, so a parse
	// failure can only be magnitude overflow.
	if isFloat {
		value, err := strconv.ParseFloat(text.String(), 64)
		if err != nil {
			return Token{}, t.errorAt(start, NumericLiteralOverflow, "Numeric literal out of range: %s", text.String())
		}
		tok.Kind = FLOAT_TOKEN
		tok.Float = value
		return tok, nil
	}

	value, err := strconv.ParseInt(text.String(), 10, 64)
	if err != nil {
		return Token{}, t.errorAt(start, NumericLiteralOverflow, "Numeric literal out of range: %s", text.String())
	}
	tok.Int = value
	return tok, nil
}

// scanIdentifier consumes [A-Za-z0-9_]* starting from a letter and resolves
// the result against the keyword table.
func (t *Tokenizer) scanIdentifier() (Token, error) {
	start := t.mark()

	for {
		c, ok := t.peek(0)
		if !ok || !isIdentRune(c) {
			break
		}
		t.advance()
	}

	if !t.isBoundary() {
		c, _ := t.peek(0)
		return Token{}, t.errorf(InvalidIdentifierSuffix, "Unexpected character in identifier: %c", c)
	}

	text := string(t.source[start.index:t.index])
	tok := t.makeToken(lookupKeyword(text), start)
	switch tok.Kind {
	case IDENTIFIER_TOKEN:
		tok.Value = text
	case BOOL_TOKEN:
		tok.Bool = text == "true"
	}
	return tok, nil
}

// scanString consumes a double-quoted literal, resolving escape sequences
// into the token value.
func (t *Tokenizer) scanString() (Token, error) {
	start := t.mark()
	t.advance() // opening quote

	var value strings.Builder
	for {
		c, ok := t.peek(0)
		if !ok {
			return Token{}, t.errorf(UnterminatedString, "Unterminated string literal")
		}

		if c == '"' {
			t.advance()
			break
		}

		if c == '\\' {
			t.advance()
			escape := t.mark()
			e, ok := t.peek(0)
			if !ok {
				return Token{}, t.errorf(UnterminatedString, "Unterminated string literal")
			}
			t.advance()

			switch e {
			case 'n':
				value.WriteRune('\n')
			case 'r':
				value.WriteRune('\r')
			case 't':
				value.WriteRune('\t')
			case '0':
				value.WriteRune(0)
			case '\'':
				value.WriteRune('\'')
			case '"':
				value.WriteRune('"')
			case '\\':
				value.WriteRune('\\')
			default:
				return Token{}, t.errorAt(escape, InvalidEscapeSequence, "Invalid escape sequence: \\%c", e)
			}
			continue
		}

		t.advance()
		value.WriteRune(c)
	}

	tok := t.makeToken(STRING_TOKEN, start)
	tok.Value = value.String()
	// The diagnostic length counts the unescaped value plus the two quote
	// delimiters, not the raw source span.
	tok.Length = utf8.RuneCountInString(tok.Value) + 2
	return tok, nil
}

// ============================================================================
// Cursor
// ============================================================================

// mark is a snapshot of the cursor at the start of a token.
type mark struct {
	line   int
	column int
	index  int
}

func (t *Tokenizer) mark() mark {
	return mark{line: t.line, column: t.column, index: t.index}
}

func (t *Tokenizer) makeToken(kind TOKEN, start mark) Token {
	return Token{
		Kind:     kind,
		Line:     start.line,
		Column:   start.column,
		Index:    start.index,
		Length:   t.index - start.index,
		Filename: t.filename,
	}
}

func (t *Tokenizer) isEnd() bool {
	return t.index >= len(t.source)
}

func (t *Tokenizer) peek(offset int) (rune, bool) {
	i := t.index + offset
	if i >= len(t.source) {
		return 0, false
	}
	return t.source[i], true
}

// advance consumes one character, moving the byte index and column forward.
// Line accounting happens only in skipWhitespace.
func (t *Tokenizer) advance() {
	if t.isEnd() {
		return
	}
	t.index++
	t.column++
}

func (t *Tokenizer) skipWhitespace() {
	for {
		c, ok := t.peek(0)
		if !ok {
			return
		}
		switch c {
		case ' ', '\t', '\r':
			t.advance()
		case '\n':
			t.advance()
			t.line++
			t.column = 1
		default:
			return
		}
	}
}

// isBoundary reports whether the next character may legally follow a literal
// or identifier: whitespace, operator/punctuation, or end of input.
func (t *Tokenizer) isBoundary() bool {
	c, ok := t.peek(0)
	if !ok {
		return true
	}
	switch c {
	case ' ', '\t', '\r', '\n',
		'(', ')', '{', '}',
		'=', '+', '-', '*', '/', '%', '^',
		',', '.', '!', '>', '<', '&', '|':
		return true
	}
	return false
}

func (t *Tokenizer) errorf(kind ErrorKind, format string, args ...any) *Error {
	return t.errorAt(t.mark(), kind, format, args...)
}

func (t *Tokenizer) errorAt(at mark, kind ErrorKind, format string, args ...any) *Error {
	context := ""
	if at.line-1 < len(t.lines) {
		context = t.lines[at.line-1]
	}

	return &Error{
		Kind:        kind,
		Line:        at.line,
		Column:      at.column,
		Index:       at.index,
		Filename:    t.filename,
		Message:     fmt.Sprintf(format, args...),
		LineContext: context,
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentRune(c rune) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// isOperatorChar covers the characters dispatched to the operator scanner.
// '-' is handled separately by the scanning loop for the negative fold.
func isOperatorChar(c rune) bool {
	switch c {
	case '+', '*', '/', '%', ',', '.', '!', '=', '<', '>', '&', '|',
		'(', ')', '{', '}':
		return true
	}
	return false
}
