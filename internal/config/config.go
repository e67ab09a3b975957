// Package config loads the tsdecl.json project configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tsdecl/tsdecl/internal/errors"
)

// Config represents the tsdecl configuration.
type Config struct {
	// Include and Exclude are glob patterns selecting the declaration files
	// to translate.
	Include []string `json:"include"`
	Exclude []string `json:"exclude,omitempty"`

	// Qualifier is the package qualifier stamped on every translated unit.
	Qualifier string `json:"qualifier,omitempty"`

	// OutDir is where translated declaration models are written.
	OutDir string `json:"outDir"`

	// Strict promotes translation warnings to errors.
	Strict bool `json:"strict,omitempty"`

	// Quiet suppresses warnings and informational diagnostics.
	Quiet bool `json:"quiet,omitempty"`

	// SingleFile disables whole-program symbol resolution and translates
	// each input in isolation.
	SingleFile bool `json:"singleFile,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Include: []string{"**/*.d.ts"},
		OutDir:  "out",
	}
}

// Load reads and parses a tsdecl config file. JSON format only.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %q", path)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "parse config file %q", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config in %q", path)
	}

	return &config, nil
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return errors.New("include must have at least one pattern")
	}
	if c.OutDir == "" {
		return errors.New("outDir must not be empty")
	}
	if filepath.Ext(c.OutDir) != "" {
		return errors.Newf("outDir must be a directory, got %q", c.OutDir)
	}
	if _, err := c.Matcher(); err != nil {
		return err
	}
	return nil
}
