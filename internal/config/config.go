// Package config provides a unified configuration system for ctfresolve
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete ctfresolve configuration.
type Config struct {
	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Resolver configuration
	Resolver ResolverConfig `yaml:"resolver" json:"resolver"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level" json:"level" default:"info" env:"CTFRESOLVE_LOG_LEVEL"`
	Color string `yaml:"color" json:"color" default:"auto" env:"CTFRESOLVE_COLOR"`
}

// ResolverConfig contains resolver behavior settings
type ResolverConfig struct {
	// StrictEnumTags, when true (default), enforces the invariant that a
	// resolved variant tag field class must be an Enumeration. False is
	// reserved for a future relaxed IR translator and is currently
	// rejected by Validate.
	StrictEnumTags bool `yaml:"strict_enum_tags" json:"strict_enum_tags" default:"true" env:"CTFRESOLVE_STRICT_ENUM_TAGS"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			Color: "auto",
		},
		Resolver: ResolverConfig{
			StrictEnumTags: true,
		},
	}
}

// Load reads configuration from a YAML file, applies environment variable
// overrides, validates the result, and returns it.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	loader := NewLoader()
	if err := loader.LoadFromEnvironment(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
