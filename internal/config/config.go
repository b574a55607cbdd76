package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the optional salvage configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Theme    ThemeConfig    `toml:"theme"`
}

// DefaultsConfig holds persistent flag defaults.
type DefaultsConfig struct {
	ChunkSize *string `toml:"chunk_size"`
	BWLimit   *string `toml:"bwlimit"`
	ZeroFill  *bool   `toml:"zero_fill"`
	Log       *string `toml:"log"`
}

// ThemeConfig holds optional color overrides for terminal narration.
type ThemeConfig struct {
	Error  *string `toml:"error"`
	Prompt *string `toml:"prompt"`
	Done   *string `toml:"done"`
	Muted  *string `toml:"muted"`
}

// Path is $XDG_CONFIG_HOME/salvage/config.toml, falling back to
// ~/.config. It is empty when neither location can be resolved.
func Path() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "salvage", "config.toml")
}

// Load decodes the file at Path. A missing file yields the zero Config.
// On a decode error the zero Config is returned alongside the error so
// callers can warn and carry on with built-in defaults.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
