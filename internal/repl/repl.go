package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vcokltfre/viper/internal/diagnostics"
	"github.com/vcokltfre/viper/internal/frontend/ast"
	"github.com/vcokltfre/viper/internal/frontend/lexer"
	"github.com/vcokltfre/viper/internal/frontend/parser"
)

const PROMPT = ">>> "

// Filename reported in diagnostics for interactive input.
const Filename = "<repl>"

// Start reads lines from in and echoes the parsed form of each line to out
// until input is exhausted. Errors are rendered inline and do not end the
// session.
func Start(in io.Reader, out io.Writer, colored bool) {
	scanner := bufio.NewScanner(in)
	emitter := diagnostics.NewEmitterWithWriter(out)
	emitter.SetColor(colored)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := scanner.Text()

		tokens, err := lexer.TokenizeString(Filename, line)
		if err != nil {
			emitter.Emit(err)
			continue
		}

		program, err := parser.Parse(tokens, Filename, line)
		if err != nil {
			emitter.Emit(err)
			continue
		}

		ast.Fdump(out, program)
	}
}
