// Package config loads REPL settings from an optional TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "playcount.toml"

// Config holds REPL configuration.
type Config struct {
	Prompt       string `toml:"prompt"`
	HistoryFile  string `toml:"history_file"` // "" disables line history
	HistoryLimit int    `toml:"history_limit"`
	Color        bool   `toml:"color"`
	Banner       bool   `toml:"banner"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Prompt:       "playcount> ",
		HistoryFile:  filepath.Join(os.TempDir(), ".playcount_history"),
		HistoryLimit: 1000,
		Color:        true,
		Banner:       true,
	}
}

// Load returns the defaults overlaid with the TOML file at path and then
// with environment variables. An empty path reads DefaultFile if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	path = os.ExpandEnv(path)

	_, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// No default file; keep defaults.
	default:
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from PLAYCOUNT_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PLAYCOUNT_PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookup("PLAYCOUNT_HISTORY"); ok {
		c.HistoryFile = v
	}
	if v, ok := lookup("PLAYCOUNT_HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PLAYCOUNT_HISTORY_LIMIT: invalid integer %q", v)
		}
		c.HistoryLimit = n
	}
	// NO_COLOR is honoured as documented at no-color.org.
	if _, ok := lookup("NO_COLOR"); ok {
		c.Color = false
	}
	if _, ok := lookup("PLAYCOUNT_NO_COLOR"); ok {
		c.Color = false
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	return nil
}
