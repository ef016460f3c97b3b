package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a source file and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tokens, err := tokenizeFile(args[0], cfg)
		if err != nil {
			reportError(err, cfg)
			return fmt.Errorf("tokenization failed on %s", args[0])
		}

		for _, tok := range tokens {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", tok.Line, tok.Column, tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
