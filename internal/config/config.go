// Package config provides configuration loading and validation for the
// course-matcher CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for the scoring pipeline and server.
const (
	DefaultPort            = 8080
	DefaultTopN            = 10
	DefaultMinimumScore    = 0.1
	DefaultMaxFeatures     = 500
	DefaultMaxUploadBytes  = 16 << 20 // 16MB
	DefaultRequestTimeout  = 10      // seconds
	DefaultRateLimitPerMin = 60
)

// Config represents the application configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or env/CLI overrides.
type Config struct {
	// Paths
	DatasetPath string `json:"dataset_path,omitempty"` // CSV or JSON course dataset
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL catalog source (overrides DatasetPath)

	// Server
	Port            int `json:"port,omitempty"`
	MaxUploadBytes  int `json:"max_upload_bytes,omitempty"`
	RequestTimeout  int `json:"request_timeout_seconds,omitempty"`
	RateLimitPerMin int `json:"rate_limit_per_minute,omitempty"`

	// Scoring
	TopN         int     `json:"top_n,omitempty"`
	MinimumScore float64 `json:"min_similarity_score,omitempty"`
	MaxFeatures  int     `json:"max_features,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the configuration with every field at its default value.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		MaxUploadBytes:  DefaultMaxUploadBytes,
		RequestTimeout:  DefaultRequestTimeout,
		RateLimitPerMin: DefaultRateLimitPerMin,
		TopN:            DefaultTopN,
		MinimumScore:    DefaultMinimumScore,
		MaxFeatures:     DefaultMaxFeatures,
	}
}

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Environment variables DATASET_PATH and DATABASE_URL override the
// corresponding fields when set.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if env := os.Getenv("DATASET_PATH"); env != "" {
		result.DatasetPath = env
	}
	if env := os.Getenv("DATABASE_URL"); env != "" {
		result.DatabaseURL = env
	}

	if result.DatasetPath == "" {
		result.DatasetPath = defaults.DatasetPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.RequestTimeout == 0 {
		result.RequestTimeout = defaults.RequestTimeout
	}
	if result.RateLimitPerMin == 0 {
		result.RateLimitPerMin = defaults.RateLimitPerMin
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MinimumScore == 0 {
		result.MinimumScore = defaults.MinimumScore
	}
	if result.MaxFeatures == 0 {
		result.MaxFeatures = defaults.MaxFeatures
	}
	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.MinimumScore < 0 {
		return fmt.Errorf("config error: 'min_similarity_score' must be non-negative")
	}
	if c.MaxFeatures < 0 {
		return fmt.Errorf("config error: 'max_features' must be non-negative")
	}
	if c.DatasetPath != "" {
		if _, err := os.Stat(c.DatasetPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.DatasetPath)
		}
	}
	return nil
}
