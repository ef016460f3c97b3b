package repl

import (
	"strings"
	"testing"
)

func TestStart_EchoesParsedForm(t *testing.T) {
	in := strings.NewReader("x = 1 + 2 * 3\n")
	var out strings.Builder

	Start(in, &out, false)

	got := out.String()
	if !strings.Contains(got, PROMPT) {
		t.Errorf("missing prompt: %q", got)
	}
	if !strings.Contains(got, "x = (1 + (2 * 3))\n") {
		t.Errorf("missing parsed form: %q", got)
	}
}

func TestStart_RecoversFromErrors(t *testing.T) {
	in := strings.NewReader("x = @\ny = 2\n")
	var out strings.Builder

	Start(in, &out, false)

	got := out.String()
	if !strings.Contains(got, "Unexpected character: @") {
		t.Errorf("missing error: %q", got)
	}
	if !strings.Contains(got, "<repl>:1:5") {
		t.Errorf("missing error location: %q", got)
	}
	if !strings.Contains(got, "y = 2\n") {
		t.Errorf("session did not continue after error: %q", got)
	}
}
