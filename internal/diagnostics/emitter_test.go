package diagnostics

import (
	"errors"
	"strings"
	"testing"

	"github.com/vcokltfre/viper/internal/frontend/lexer"
	"github.com/vcokltfre/viper/internal/frontend/parser"
)

func TestEmit_LexerError(t *testing.T) {
	var sb strings.Builder
	emitter := NewEmitterWithWriter(&sb)

	_, err := lexer.TokenizeString("main.vpr", "x = @")
	if err == nil {
		t.Fatal("expected error")
	}
	emitter.Emit(err)

	out := sb.String()
	want := `error: Unexpected character: @
  --> main.vpr:1:5
  |
1 | x = @
  |     ^
`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEmit_ParserError(t *testing.T) {
	var sb strings.Builder
	emitter := NewEmitterWithWriter(&sb)

	source := "for count 10 {}"
	tokens, err := lexer.TokenizeString("main.vpr", source)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	_, err = parser.Parse(tokens, "main.vpr", source)
	if err == nil {
		t.Fatal("expected error")
	}
	emitter.Emit(err)

	out := sb.String()
	if !strings.Contains(out, "error: Expected in but got Int(10)") {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, "--> main.vpr:1:11") {
		t.Errorf("missing location: %q", out)
	}
	if !strings.Contains(out, "1 | for count 10 {}") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "~~") {
		t.Errorf("missing underline: %q", out)
	}
}

func TestEmit_PlainError(t *testing.T) {
	var sb strings.Builder
	emitter := NewEmitterWithWriter(&sb)

	emitter.Emit(errors.New("no such file"))

	if got := sb.String(); got != "error: no such file\n" {
		t.Errorf("got %q", got)
	}
}
