package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "viper.toml"

// Config is the tool configuration, loaded from a TOML file and overridden
// by command-line flags.
type Config struct {
	Output OutputConfig `toml:"output"`
}

type OutputConfig struct {
	Color bool `toml:"color"`
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: true},
	}
}

// Load reads the configuration at path. An empty path tries DefaultPath and
// silently falls back to defaults when that file does not exist; an explicit
// path that cannot be read is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
