// Package config loads display settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	ThemeRosePine = "rose-pine"
	ThemeDefault  = "default"
)

// Config holds the settings read from config.toml
type Config struct {
	Title            string `toml:"title"`
	UppercaseHeaders bool   `toml:"uppercase_headers"`
	LogFile          string `toml:"log_file"`
	Theme            string `toml:"theme"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Title:            "Flexible Header Table",
		UppercaseHeaders: true,
		LogFile:          "flexheader.log",
		Theme:            ThemeRosePine,
	}
}

// Dir returns the directory holding config.toml
func Dir() (string, error) {
	// Check for XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "flexheader"), nil
	}

	// Fall back to ~/.config on Unix-like systems
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "flexheader"), nil
}

// Load reads the config file at path. An empty path means the default
// location, where a missing file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Theme {
	case ThemeRosePine, ThemeDefault:
		return nil
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
}
