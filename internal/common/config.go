package common

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// PreferenceStore is the subset of storage used for API key resolution.
// Declared here to avoid a common -> interfaces import cycle.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
}

// Config holds all configuration for TradeMind
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Gemini      GeminiConfig  `toml:"gemini"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the BadgerHold data directory.
type StorageConfig struct {
	Path string `toml:"path"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey       string `toml:"api_key"`
	Model        string `toml:"model"`
	RateLimit    int    `toml:"rate_limit"` // requests per second
	Timeout      string `toml:"timeout"`
	MaxAttempts  int    `toml:"max_attempts"`  // total attempts including the first
	InitialDelay string `toml:"initial_delay"` // backoff before the first retry
}

// GetTimeout parses and returns the request timeout duration
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// GetInitialDelay parses and returns the initial backoff delay
func (c *GeminiConfig) GetInitialDelay() time.Duration {
	d, err := time.ParseDuration(c.InitialDelay)
	if err != nil {
		return time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path: "data/trademind",
		},
		Gemini: GeminiConfig{
			Model:        "gemini-2.5-flash",
			RateLimit:    5,
			Timeout:      "120s",
			MaxAttempts:  3,
			InitialDelay: "1s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TRADEMIND_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("TRADEMIND_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("TRADEMIND_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("TRADEMIND_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("TRADEMIND_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if model := os.Getenv("TRADEMIND_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ResolveAPIKey resolves the Gemini API key from environment, the preference
// store, or the config fallback, in that priority order.
func ResolveAPIKey(ctx context.Context, store PreferenceStore, fallback string) (string, error) {
	for _, envVar := range []string{"GEMINI_API_KEY", "TRADEMIND_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(envVar); v != "" {
			return v, nil
		}
	}

	if store != nil {
		if key, err := store.Get(ctx, "gemini_api_key"); err == nil && key != "" {
			return key, nil
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("gemini API key not found in environment or store")
}
