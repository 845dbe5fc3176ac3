// Package config loads optional tool preferences from a TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const appName = "flatfile"

// Config holds tool preferences. A zero value means the key is not set and
// the built-in default applies; explicit command flags override both.
type Config struct {
	// Output is the default record format for parse output and format
	// input: json, yaml, or csv.
	Output string `toml:"output"`

	// LogLevel filters log output: debug, info, warn, or error.
	LogLevel string `toml:"log_level"`

	// OnError is the parse policy for lines that fail: skip or abort.
	OnError string `toml:"on_error"`
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/flatfile/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error; the
// zero Config is returned.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	return cfg, nil
}
