package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcokltfre/viper/internal/frontend/lexer"
	"github.com/vcokltfre/viper/internal/frontend/parser"
)

// Emitter renders diagnostics to a writer.
type Emitter struct {
	w     io.Writer
	color bool
}

// NewEmitter creates an emitter that writes colored output to stderr.
func NewEmitter() *Emitter {
	return &Emitter{w: os.Stderr, color: true}
}

// NewEmitterWithWriter creates an emitter over an arbitrary writer with
// color disabled. Used by tests and the REPL.
func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// SetColor toggles ANSI styling.
func (e *Emitter) SetColor(enabled bool) {
	e.color = enabled
}

// Emit renders an error from the frontend. Tokenization and parsing errors
// get the full source-context block; anything else is printed as a plain
// error line.
func (e *Emitter) Emit(err error) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		e.EmitDiagnostic(&Diagnostic{
			Severity: Error,
			Message:  lexErr.Message,
			Filename: lexErr.Filename,
			Line:     lexErr.Line,
			Column:   lexErr.Column,
			Span:     1,
			Context:  lexErr.LineContext,
		})
		return
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		e.EmitDiagnostic(&Diagnostic{
			Severity: Error,
			Message:  parseErr.Message,
			Filename: parseErr.Filename,
			Line:     parseErr.Line,
			Column:   parseErr.Column,
			Span:     parseErr.TokenSize,
			Context:  parseErr.LineContext,
		})
		return
	}

	fmt.Fprintf(e.w, "%s: %s\n", e.styled(errorStyle, "error"), err)
}

// EmitDiagnostic renders one diagnostic block:
//
//	error: <message>
//	  --> file:line:column
//	   |
//	 N | offending line
//	   |     ^
func (e *Emitter) EmitDiagnostic(d *Diagnostic) {
	severity := e.styled(d.Severity.style(), d.Severity.String())
	fmt.Fprintf(e.w, "%s: %s\n", severity, d.Message)
	fmt.Fprintf(e.w, "  %s %s:%d:%d\n", e.styled(locStyle, "-->"), d.Filename, d.Line, d.Column)

	gutterWidth := len(fmt.Sprintf("%d", d.Line))
	blank := strings.Repeat(" ", gutterWidth) + " |"

	fmt.Fprintln(e.w, e.styled(gutterStyle, blank))
	fmt.Fprintf(e.w, "%s %s\n", e.styled(gutterStyle, fmt.Sprintf("%*d |", gutterWidth, d.Line)), d.Context)

	span := d.Span
	if span < 1 {
		span = 1
	}
	char := "^"
	if span > 1 {
		char = "~"
	}

	marker := strings.Repeat(" ", d.Column-1) + strings.Repeat(char, span)
	fmt.Fprintf(e.w, "%s %s\n", e.styled(gutterStyle, blank), e.styled(markerStyle, marker))
}

func (e *Emitter) styled(style lipgloss.Style, text string) string {
	if !e.color {
		return text
	}
	return style.Render(text)
}
