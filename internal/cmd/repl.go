package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vcokltfre/viper/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repl.Start(os.Stdin, os.Stdout, cfg.Output.Color)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
