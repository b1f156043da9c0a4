package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the scanner.
type Config struct {
	// HTTP pacing and retry behaviour
	Fetcher FetcherConfig `yaml:"fetcher" json:"fetcher"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Media download settings
	Download DownloadConfig `yaml:"download" json:"download"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// FetcherConfig holds HTTP client configuration.
type FetcherConfig struct {
	// MinRequestInterval is the global minimum spacing between outbound
	// requests, enforced before every attempt including retries.
	MinRequestInterval time.Duration `yaml:"min_request_interval" json:"min_request_interval"`
	RequestTimeout     time.Duration `yaml:"request_timeout" json:"request_timeout"`
	// MaxRetries counts retries, not attempts: a request is tried at most
	// MaxRetries+1 times.
	MaxRetries       int           `yaml:"max_retries" json:"max_retries"`
	BackoffBaseDelay time.Duration `yaml:"backoff_base_delay" json:"backoff_base_delay"`
}

// OutputConfig holds output directory configuration.
type OutputConfig struct {
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`
}

// DownloadConfig holds media download configuration.
type DownloadConfig struct {
	PostLimit int `yaml:"post_limit" json:"post_limit"`
	// Randomized pause between successive post downloads, on top of the
	// fetcher's own pacing.
	MinPostDelay time.Duration `yaml:"min_post_delay" json:"min_post_delay"`
	MaxPostDelay time.Duration `yaml:"max_post_delay" json:"max_post_delay"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetcher: FetcherConfig{
			MinRequestInterval: 2 * time.Second,
			RequestTimeout:     10 * time.Second,
			MaxRetries:         3,
			BackoffBaseDelay:   1 * time.Second,
		},
		Output: OutputConfig{
			BaseDirectory: "./instagram_osint_results",
		},
		Download: DownloadConfig{
			PostLimit:    12,
			MinPostDelay: 1 * time.Second,
			MaxPostDelay: 3 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromEnv loads configuration overrides from environment variables.
func (c *Config) LoadFromEnv() error {
	if outputDir := os.Getenv("IGOSINT_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if logLevel := os.Getenv("IGOSINT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("IGOSINT_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}
	if retries := os.Getenv("IGOSINT_MAX_RETRIES"); retries != "" {
		var val int
		fmt.Sscanf(retries, "%d", &val)
		if val >= 0 {
			c.Fetcher.MaxRetries = val
		}
	}
	if interval := os.Getenv("IGOSINT_MIN_REQUEST_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil && d > 0 {
			c.Fetcher.MinRequestInterval = d
		}
	}
	if timeout := os.Getenv("IGOSINT_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			c.Fetcher.RequestTimeout = d
		}
	}
	if limit := os.Getenv("IGOSINT_POST_LIMIT"); limit != "" {
		var val int
		fmt.Sscanf(limit, "%d", &val)
		if val > 0 {
			c.Download.PostLimit = val
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for a config file in standard locations.
func (c *Config) findConfigFile() string {
	locations := []string{
		".igosint.yaml",
		".igosint.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "igosint", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "igosint", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".igosint.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Fetcher.MinRequestInterval < 0 {
		errs = append(errs, errors.New("min request interval cannot be negative"))
	}
	if c.Fetcher.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.Fetcher.MaxRetries < 0 {
		errs = append(errs, errors.New("max retries cannot be negative"))
	}
	if c.Fetcher.BackoffBaseDelay <= 0 {
		errs = append(errs, errors.New("backoff base delay must be positive"))
	}

	if c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}

	if c.Download.PostLimit <= 0 {
		errs = append(errs, errors.New("post limit must be positive"))
	}
	if c.Download.MaxPostDelay < c.Download.MinPostDelay {
		errs = append(errs, errors.New("max post delay cannot be below min post delay"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration.
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if limit, ok := flags["limit"].(int); ok && limit > 0 {
		c.Download.PostLimit = limit
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence.
// Precedence order: command line flags > environment variables > .env file >
// config file > defaults.
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".igosint.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
