// Package config provides configuration loading for survey-labeler.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"survey-labeler/internal/match"
)

// Config represents the complete survey-labeler configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Match  MatchConfig  `yaml:"match"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// MatchConfig tunes the "did you mean" suggestions for unmatched columns.
type MatchConfig struct {
	// MaxSuggestions caps the suggestions per column (0 disables them).
	MaxSuggestions int `yaml:"max_suggestions"`
	// SuggestionThreshold is the minimum similarity (0-1) of a suggestion.
	SuggestionThreshold float64 `yaml:"suggestion_threshold"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default: :8080).
	Addr string `yaml:"addr"`
	// AllowedOrigins lists the CORS origins (empty = same origin only).
	AllowedOrigins []string `yaml:"allowed_origins"`
	// MaxBodyBytes limits request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// ReadTimeout bounds reading a whole request.
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `yaml:"metrics"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Match: MatchConfig{
			MaxSuggestions:      match.DefaultMaxSuggestions,
			SuggestionThreshold: match.DefaultSuggestionThreshold,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxBodyBytes:    10 << 20,
			ReadTimeout:     30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Metrics:         true,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if c.Match.MaxSuggestions < 0 {
		errs = append(errs, errors.New("match.max_suggestions must not be negative"))
	}

	if c.Match.SuggestionThreshold < 0 || c.Match.SuggestionThreshold > 1 {
		errs = append(errs, errors.New("match.suggestion_threshold must be between 0 and 1"))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}

	return errors.Join(errs...)
}

// ParseLevel converts a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", level)
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load returns the defaults when path is empty and the validated file
// otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
