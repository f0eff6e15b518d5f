// Package config loads defaults for the edc command line tools from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	edc "github.com/sqpp/edc-golang"
	"github.com/sqpp/edc-golang/internal/logging"
)

// Config holds the defaults applied when a flag is not given explicitly.
type Config struct {
	Parity    string  `yaml:"parity"`
	BlockSize int     `yaml:"block_size"`
	Divisor   string  `yaml:"divisor"`
	Baud      int     `yaml:"baud"`
	Output    string  `yaml:"output"`
	Workers   int     `yaml:"workers"`
	Logging   Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Parity:    "even",
		BlockSize: 8,
		Divisor:   "crc-3",
		Baud:      edc.BaudRate1200,
		Output:    "text",
		Workers:   4,
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads configPath and overlays it on DefaultConfig.
func Load(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks every field against what the engine and CLI accept.
func (c *Config) Validate() error {
	var errs []error
	if _, err := edc.ParsePolicy(c.Parity); err != nil {
		errs = append(errs, err)
	}
	if c.BlockSize < 1 || c.BlockSize > edc.MaxBlockSize {
		errs = append(errs, fmt.Errorf("block_size %d: %w", c.BlockSize, edc.ErrBlockSize))
	}
	if _, err := edc.ResolveDivisor(c.Divisor); err != nil {
		errs = append(errs, err)
	}
	if err := edc.CheckBaud(c.Baud); err != nil {
		errs = append(errs, err)
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Output))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// Save writes the configuration as YAML.
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
