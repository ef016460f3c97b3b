package cmd

import (
	"fmt"
	"os"

	"github.com/vcokltfre/viper/internal/config"
	"github.com/vcokltfre/viper/internal/diagnostics"
	"github.com/vcokltfre/viper/internal/frontend/ast"
	"github.com/vcokltfre/viper/internal/frontend/lexer"
	"github.com/vcokltfre/viper/internal/frontend/parser"
)

// runFrontend reads a source file and runs it through the tokenizer and
// parser, returning the program or the first error.
func runFrontend(path string, cfg config.Config) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	source := string(data)

	if cfg.Output.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1] Tokenize %s (%d bytes)\n", path, len(source))
	}

	tokens, err := lexer.TokenizeString(path, source)
	if err != nil {
		return nil, err
	}

	if cfg.Output.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Generated %d token(s)\n", len(tokens))
		fmt.Fprintf(os.Stderr, "\n[Phase 2] Parse\n")
	}

	program, err := parser.Parse(tokens, path, source)
	if err != nil {
		return nil, err
	}

	if cfg.Output.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Generated %d top-level statement(s)\n", len(program.Statements))
	}

	return program, nil
}

// tokenizeFile reads a source file and runs the tokenizer only.
func tokenizeFile(path string, cfg config.Config) ([]lexer.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if cfg.Output.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1] Tokenize %s (%d bytes)\n", path, len(data))
	}

	return lexer.TokenizeString(path, string(data))
}

// reportError renders a frontend error to stderr.
func reportError(err error, cfg config.Config) {
	emitter := diagnostics.NewEmitter()
	emitter.SetColor(cfg.Output.Color)
	emitter.Emit(err)
}
