package parser

import (
	"fmt"
	"strings"
)

// Error is a terminal parsing failure. Like tokenization, parsing is
// all-or-nothing: the first Error aborts the pass.
type Error struct {
	Line        int
	Column      int
	Index       int
	Filename    string
	Message     string
	LineContext string // full text of the offending source line
	TokenSize   int    // width of the offending token, for underlining
}

// Error renders the failure with the offending line and a tilde underline
// spanning the offending token.
func (e *Error) Error() string {
	size := e.TokenSize
	if size < 1 {
		size = 1
	}

	var marker strings.Builder
	if e.Column > 1 {
		marker.WriteString(strings.Repeat(" ", e.Column-1))
	}
	marker.WriteString(strings.Repeat("~", size))

	return fmt.Sprintf(
		"Parsing failed: %s\n --> %s:%d:%d (%d)\n\n   %s\n   %s",
		e.Message,
		e.Filename,
		e.Line,
		e.Column,
		e.Index,
		e.LineContext,
		marker.String(),
	)
}
