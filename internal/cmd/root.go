package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vcokltfre/viper/internal/config"
)

var (
	configPath string
	debugFlag  bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:           "viper",
	Short:         "The viper scripting language",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a viper.toml config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print frontend phase information to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

// Execute runs the CLI. Errors have already been rendered by the time this
// returns; the caller only decides the exit code.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration: file values first, then
// command-line flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	if debugFlag {
		cfg.Output.Debug = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	return cfg, nil
}
