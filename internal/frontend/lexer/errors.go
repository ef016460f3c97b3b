package lexer

import (
	"fmt"
	"strings"
)

// ErrorKind distinguishes the classes of tokenization failure.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	MalformedFloat
	InvalidNumericSuffix
	InvalidIdentifierSuffix
	InvalidEscapeSequence
	UnterminatedString
	NumericLiteralOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case MalformedFloat:
		return "malformed float"
	case InvalidNumericSuffix:
		return "invalid numeric suffix"
	case InvalidIdentifierSuffix:
		return "invalid identifier suffix"
	case InvalidEscapeSequence:
		return "invalid escape sequence"
	case UnterminatedString:
		return "unterminated string"
	case NumericLiteralOverflow:
		return "numeric literal overflow"
	default:
		return "unknown"
	}
}

// Error is a terminal tokenization failure. Tokenization is all-or-nothing:
// the first Error aborts the pass and no partial token sequence is returned.
type Error struct {
	Kind        ErrorKind
	Line        int
	Column      int
	Index       int
	Filename    string
	Message     string
	LineContext string // full text of the offending source line
}

// Error renders the failure with the offending line and a caret under the
// offending column.
func (e *Error) Error() string {
	var marker strings.Builder
	if e.Column > 1 {
		marker.WriteString(strings.Repeat(" ", e.Column-1))
	}
	marker.WriteString("^")

	return fmt.Sprintf(
		"Failed to tokenise file %q [%d;%d] (%d): %s\n\n%s\n%s",
		e.Filename,
		e.Line,
		e.Column,
		e.Index,
		e.Message,
		e.LineContext,
		marker.String(),
	)
}
