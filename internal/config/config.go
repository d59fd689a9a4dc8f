// Package config loads the optional lambda.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smasher164/lambda/reduce"
)

// FileName is the settings file looked up in the working directory.
const FileName = "lambda.yaml"

// Config holds the settings shared by every command.
type Config struct {
	Strategy string `yaml:"strategy"`
	Limit    int    `yaml:"limit"`
	Format   string `yaml:"format"`
	Prelude  string `yaml:"prelude,omitempty"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Strategy: reduce.HAP.String(),
		Limit:    reduce.DefaultLimit,
		Format:   "text",
	}
}

// Load reads a settings file. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses settings from YAML, rejecting unknown fields.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Discover loads explicit if it is set, else FileName from the working
// directory if it exists, else returns the defaults.
func Discover(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if _, err := os.Stat(FileName); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return Load(FileName)
}

// Validate checks every field and names the first one that is wrong.
func (c Config) Validate() error {
	if _, err := reduce.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit: must not be negative, got %d", c.Limit)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format: must be text or json, got %q", c.Format)
	}
	return nil
}
