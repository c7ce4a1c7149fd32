// Package config loads keeper settings from .keeper/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/example/keeper/internal/core/records"
)

// Environment overrides.
const (
	EnvLogLevel    = "KEEPER_LOG_LEVEL"
	EnvNoColor     = "KEEPER_NO_COLOR"
	EnvMergePolicy = "KEEPER_MERGE_POLICY"
)

// Config represents the flat keeper configuration
type Config struct {
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error
	Color       bool   `yaml:"color"`        // colored CLI output
	MergePolicy string `yaml:"merge_policy"` // "overwrite" or "reject"
	Metrics     bool   `yaml:"metrics"`      // print metrics after each command
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "warn",
		Color:       true,
		MergePolicy: string(records.MergeOverwrite),
	}
}

// DefaultPath returns the config path under dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, ".keeper", "config.yaml")
}

// Load reads configuration from path. A missing file yields the defaults.
// Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, records.InvalidArgument("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// Policy parses MergePolicy.
func (c *Config) Policy() (records.MergePolicy, error) {
	return records.ParseMergePolicy(c.MergePolicy)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if os.Getenv(EnvNoColor) != "" || os.Getenv("NO_COLOR") != "" {
		c.Color = false
	}
	if policy := os.Getenv(EnvMergePolicy); policy != "" {
		c.MergePolicy = policy
	}
}
