package diagnostics

import "github.com/charmbracelet/lipgloss"

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	locStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (s Severity) style() lipgloss.Style {
	switch s {
	case Warning:
		return warningStyle
	case Info:
		return infoStyle
	default:
		return errorStyle
	}
}

// Diagnostic is a renderable report about one location in a source file.
// Span is the number of characters to underline; zero or one gets a caret,
// anything wider a tilde run.
type Diagnostic struct {
	Severity Severity
	Message  string
	Filename string
	Line     int
	Column   int
	Span     int
	Context  string // source text of the offending line
}
