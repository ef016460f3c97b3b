package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcokltfre/viper/internal/frontend/ast"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Tokenize and parse a source file, printing the resulting program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		program, err := runFrontend(args[0], cfg)
		if err != nil {
			reportError(err, cfg)
			return fmt.Errorf("frontend failed on %s", args[0])
		}

		ast.Fdump(os.Stdout, program)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
