package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/fields"
	"github.com/goliatone/go-formbuilder/pkg/history"
)

// EnvPrefix namespaces environment overrides.
const EnvPrefix = "FORMBUILDER_"

// Config holds the settings for the formbuilder CLI. Values are resolved in
// order: defaults, optional YAML file, FORMBUILDER_* environment variables,
// then command line flags applied by the caller.
type Config struct {
	HistoryLimit int    `yaml:"history_limit" env:"HISTORY_LIMIT"`
	Format       string `yaml:"format" env:"FORMAT"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL"`
	// Defaults points at a field list used by "restore defaults". When empty
	// the list loaded at startup is used.
	Defaults string `yaml:"defaults" env:"DEFAULTS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		HistoryLimit: history.DefaultCapacity,
		Format:       string(fields.FormatYAML),
		LogLevel:     "info",
	}
}

// Load resolves configuration from path (optional) and environ. A nil
// environ reads the process environment.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	var errs []error
	if c.HistoryLimit <= 0 {
		errs = append(errs, fmt.Errorf("config: history_limit must be positive, got %d", c.HistoryLimit))
	}
	if _, err := fields.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// OutputFormat returns the parsed output format.
func (c Config) OutputFormat() fields.Format {
	format, err := fields.ParseFormat(c.Format)
	if err != nil {
		return fields.FormatYAML
	}
	return format
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}
