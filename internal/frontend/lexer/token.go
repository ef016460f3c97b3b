package lexer

import "fmt"

// TOKEN identifies the lexical class of a token.
type TOKEN int

const (
	EOF_TOKEN TOKEN = iota

	OPEN_PAREN  // (
	CLOSE_PAREN // )
	OPEN_CURLY  // {
	CLOSE_CURLY // }

	EQUALS_TOKEN // =

	PLUS_TOKEN  // +
	MINUS_TOKEN // -
	MUL_TOKEN   // *
	DIV_TOKEN   // /
	MOD_TOKEN   // %
	POWER_TOKEN // **

	DOUBLE_EQUAL_TOKEN  // ==
	NOT_EQUAL_TOKEN     // !=
	LESS_TOKEN          // <
	LESS_EQUAL_TOKEN    // <=
	GREATER_TOKEN       // >
	GREATER_EQUAL_TOKEN // >=

	AND_TOKEN // &&
	OR_TOKEN  // ||
	NOT_TOKEN // !

	COMMA_TOKEN // ,
	DOT_TOKEN   // .
	ARROW_TOKEN // =>
	RANGE_TOKEN // ..

	IF_TOKEN       // if
	ELSE_TOKEN     // else
	FOR_TOKEN      // for
	RETURN_TOKEN   // return
	BREAK_TOKEN    // break
	CONTINUE_TOKEN // continue
	IN_TOKEN       // in

	IDENTIFIER_TOKEN
	INT_TOKEN
	FLOAT_TOKEN
	STRING_TOKEN
	BOOL_TOKEN
)

var tokenNames = map[TOKEN]string{
	EOF_TOKEN:           "end of input",
	OPEN_PAREN:          "(",
	CLOSE_PAREN:         ")",
	OPEN_CURLY:          "{",
	CLOSE_CURLY:         "}",
	EQUALS_TOKEN:        "=",
	PLUS_TOKEN:          "+",
	MINUS_TOKEN:         "-",
	MUL_TOKEN:           "*",
	DIV_TOKEN:           "/",
	MOD_TOKEN:           "%",
	POWER_TOKEN:         "**",
	DOUBLE_EQUAL_TOKEN:  "==",
	NOT_EQUAL_TOKEN:     "!=",
	LESS_TOKEN:          "<",
	LESS_EQUAL_TOKEN:    "<=",
	GREATER_TOKEN:       ">",
	GREATER_EQUAL_TOKEN: ">=",
	AND_TOKEN:           "&&",
	OR_TOKEN:            "||",
	NOT_TOKEN:           "!",
	COMMA_TOKEN:         ",",
	DOT_TOKEN:           ".",
	ARROW_TOKEN:         "=>",
	RANGE_TOKEN:         "..",
	IF_TOKEN:            "if",
	ELSE_TOKEN:          "else",
	FOR_TOKEN:           "for",
	RETURN_TOKEN:        "return",
	BREAK_TOKEN:         "break",
	CONTINUE_TOKEN:      "continue",
	IN_TOKEN:            "in",
	IDENTIFIER_TOKEN:    "identifier",
	INT_TOKEN:           "int literal",
	FLOAT_TOKEN:         "float literal",
	STRING_TOKEN:        "string literal",
	BOOL_TOKEN:          "bool literal",
}

func (k TOKEN) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(k))
}

// Token is one classified unit of source text. Tokens are produced once by
// the tokenizer and consumed read-only by the parser. Position fields point
// at the first character of the token; Length is the number of source
// characters the token spans and is only used for diagnostic underlining.
type Token struct {
	Kind     TOKEN
	Value    string  // identifier name, or the unescaped string value
	Int      int64   // valid when Kind == INT_TOKEN
	Float    float64 // valid when Kind == FLOAT_TOKEN
	Bool     bool    // valid when Kind == BOOL_TOKEN
	Line     int     // 1-based
	Column   int     // 1-based
	Index    int     // absolute offset into the source
	Length   int
	Filename string
}

func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER_TOKEN:
		return fmt.Sprintf("Ident(%s)", t.Value)
	case INT_TOKEN:
		return fmt.Sprintf("Int(%d)", t.Int)
	case FLOAT_TOKEN:
		return fmt.Sprintf("Float(%g)", t.Float)
	case STRING_TOKEN:
		return fmt.Sprintf("String(%q)", t.Value)
	case BOOL_TOKEN:
		return fmt.Sprintf("Bool(%t)", t.Bool)
	default:
		return t.Kind.String()
	}
}

// lookupKeyword resolves a scanned identifier against the fixed keyword set.
// The match is case-sensitive; anything unknown stays an identifier.
func lookupKeyword(text string) TOKEN {
	switch text {
	case "if":
		return IF_TOKEN
	case "else":
		return ELSE_TOKEN
	case "for":
		return FOR_TOKEN
	case "return":
		return RETURN_TOKEN
	case "break":
		return BREAK_TOKEN
	case "continue":
		return CONTINUE_TOKEN
	case "in":
		return IN_TOKEN
	case "true", "false":
		return BOOL_TOKEN
	}
	return IDENTIFIER_TOKEN
}
