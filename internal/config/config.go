// Package config loads shell settings from a TOML file and command-line
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultDirName  = ".dendra-shell"
	DefaultFileName = "config.toml"
	DefaultPrompt   = "Enter command: "
)

var (
	ErrRelativeDir        = errors.New("directory must be an absolute path")
	ErrNegativeHistoryCap = errors.New("history_limit must not be negative")
)

// Config holds every tunable of the shell.
type Config struct {
	StartDir     string `toml:"start_dir"`
	HomeDir      string `toml:"home_dir"`
	Prompt       string `toml:"prompt"`
	NoColor      bool   `toml:"no_color"`
	Verbose      bool   `toml:"verbose"`
	HistoryFile  string `toml:"history_file"`
	HistoryLimit int    `toml:"history_limit"`
}

// Default returns the built-in settings. The cursor starts in the user's
// home directory, or "/" when it cannot be determined.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = string(filepath.Separator)
	}
	return Config{
		StartDir: home,
		HomeDir:  home,
		Prompt:   DefaultPrompt,
	}
}

// DefaultPath returns $HOME/.dendra-shell/config.toml, or an empty string
// when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultDirName, DefaultFileName)
}

// Load reads the config file at path on top of Default(). An explicit path
// must exist; an empty path falls back to DefaultPath(), which may be
// missing without error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config file not found: %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return cfg, nil
}

// Validate checks the settings for values the shell cannot work with.
func (c Config) Validate() error {
	if !filepath.IsAbs(c.StartDir) {
		return fmt.Errorf("start_dir %q: %w", c.StartDir, ErrRelativeDir)
	}
	if !filepath.IsAbs(c.HomeDir) {
		return fmt.Errorf("home_dir %q: %w", c.HomeDir, ErrRelativeDir)
	}
	if c.HistoryLimit < 0 {
		return ErrNegativeHistoryCap
	}
	return nil
}

// Save writes c as TOML to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
