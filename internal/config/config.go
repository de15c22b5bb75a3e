package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Default names.
const (
	DefaultMarkerName         = "Ithline.Extensions.Localization.LocalizedStringAttribute"
	DefaultProviderType       = "Microsoft.Extensions.Localization.IStringLocalizer"
	DefaultResultType         = "Microsoft.Extensions.Localization.LocalizedString"
	DefaultUniversalRoot      = "System.Object"
	DefaultReservedPrefix     = "_"
	DefaultMinLanguageVersion = 6
)

// Config is the generator configuration.
type Config struct {
	// MarkerName is the metadata name of the triggering attribute.
	MarkerName string `yaml:"marker" toml:"marker"`
	// ProviderType is the metadata name of the provider interface.
	ProviderType string `yaml:"provider_type" toml:"provider_type"`
	// ResultType is the metadata name every generated method must return.
	ResultType string `yaml:"result_type" toml:"result_type"`
	// UniversalRoot is the base type excluded from the provider walk.
	UniversalRoot string `yaml:"universal_root" toml:"universal_root"`
	// ReservedPrefix is the method name prefix reserved for generated members.
	ReservedPrefix string `yaml:"reserved_prefix" toml:"reserved_prefix"`
	// MinLanguageVersion is the lowest supported host language version.
	MinLanguageVersion int `yaml:"min_language_version" toml:"min_language_version"`
	// Workers bounds parallel validation; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" toml:"workers"`

	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		MarkerName:         DefaultMarkerName,
		ProviderType:       DefaultProviderType,
		ResultType:         DefaultResultType,
		UniversalRoot:      DefaultUniversalRoot,
		ReservedPrefix:     DefaultReservedPrefix,
		MinLanguageVersion: DefaultMinLanguageVersion,
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load reads a configuration file. The format is chosen by extension:
// .toml for TOML, anything else is parsed as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return ParseYAML(data)
}

// ParseYAML parses YAML data over the defaults and validates the result.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseTOML parses TOML data over the defaults and validates the result.
func ParseTOML(data []byte) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	names := []struct {
		key   string
		value string
	}{
		{"marker", c.MarkerName},
		{"provider_type", c.ProviderType},
		{"result_type", c.ResultType},
	}

	for _, n := range names {
		if _, err := analyze.ParseTypeID(n.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, n.key, err)
		}
	}

	if c.UniversalRoot != "" {
		if _, err := analyze.ParseTypeID(c.UniversalRoot); err != nil {
			return fmt.Errorf("%w: universal_root: %w", ErrInvalidConfig, err)
		}
	}

	if c.MinLanguageVersion < 0 {
		return fmt.Errorf("%w: min_language_version must not be negative", ErrInvalidConfig)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	if !logging.IsValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// NewLogger creates a logger writing to w with the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return logging.NewLogger(w, logging.LevelFromString(c.Log.Level), c.Log.Format)
}
