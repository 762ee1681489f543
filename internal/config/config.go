package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds selector service configuration.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Parser settings
	KeepEmptyTokens bool `yaml:"keep_empty_tokens"`

	// Session settings
	StackShards int    `yaml:"stack_shards"`
	ConsoleID   string `yaml:"console_id"`

	// Presets maps an alias to the filter clauses it stands for,
	// e.g. staff: ["ra=true"].
	Presets map[string][]string `yaml:"presets"`
}

// Default returns default configuration
func Default() Config {
	return Config{
		LogLevel:    "info",
		StackShards: 16,
		Presets:     make(map[string][]string),
	}
}

// Load decodes YAML over the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.StackShards <= 0 {
		return Config{}, fmt.Errorf("stack_shards must be positive, got %d", cfg.StackShards)
	}
	if cfg.Presets == nil {
		cfg.Presets = make(map[string][]string)
	}
	return cfg, nil
}

// LoadFile reads path, or returns the defaults when path is empty.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Load(f)
}
