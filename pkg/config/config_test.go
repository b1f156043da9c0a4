package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Fetcher.MinRequestInterval != 2*time.Second {
		t.Errorf("expected 2s min request interval, got %v", cfg.Fetcher.MinRequestInterval)
	}
	if cfg.Fetcher.MaxRetries != 3 {
		t.Errorf("expected 3 max retries, got %d", cfg.Fetcher.MaxRetries)
	}
	if cfg.Download.PostLimit != 12 {
		t.Errorf("expected post limit 12, got %d", cfg.Download.PostLimit)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info log level, got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IGOSINT_OUTPUT_DIR", "/tmp/results")
	t.Setenv("IGOSINT_LOG_LEVEL", "debug")
	t.Setenv("IGOSINT_MAX_RETRIES", "5")
	t.Setenv("IGOSINT_MIN_REQUEST_INTERVAL", "4s")
	t.Setenv("IGOSINT_POST_LIMIT", "20")

	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Output.BaseDirectory != "/tmp/results" {
		t.Errorf("expected /tmp/results, got %s", cfg.Output.BaseDirectory)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Logging.Level)
	}
	if cfg.Fetcher.MaxRetries != 5 {
		t.Errorf("expected 5 retries, got %d", cfg.Fetcher.MaxRetries)
	}
	if cfg.Fetcher.MinRequestInterval != 4*time.Second {
		t.Errorf("expected 4s interval, got %v", cfg.Fetcher.MinRequestInterval)
	}
	if cfg.Download.PostLimit != 20 {
		t.Errorf("expected post limit 20, got %d", cfg.Download.PostLimit)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
fetcher:
  min_request_interval: 3s
  max_retries: 2
output:
  base_directory: /tmp/custom
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Fetcher.MinRequestInterval != 3*time.Second {
		t.Errorf("expected 3s interval, got %v", cfg.Fetcher.MinRequestInterval)
	}
	if cfg.Fetcher.MaxRetries != 2 {
		t.Errorf("expected 2 retries, got %d", cfg.Fetcher.MaxRetries)
	}
	if cfg.Output.BaseDirectory != "/tmp/custom" {
		t.Errorf("expected /tmp/custom, got %s", cfg.Output.BaseDirectory)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn, got %s", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults.
	if cfg.Fetcher.RequestTimeout != 10*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Fetcher.RequestTimeout)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeCommandLineFlags(map[string]interface{}{
		"output":    "/tmp/flagged",
		"limit":     7,
		"log-level": "debug",
	})

	if cfg.Output.BaseDirectory != "/tmp/flagged" {
		t.Errorf("expected /tmp/flagged, got %s", cfg.Output.BaseDirectory)
	}
	if cfg.Download.PostLimit != 7 {
		t.Errorf("expected limit 7, got %d", cfg.Download.PostLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Logging.Level)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("IGOSINT_OUTPUT_DIR", "/tmp/from-env")

	cfg, err := Load("", map[string]interface{}{"output": "/tmp/from-flag"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.BaseDirectory != "/tmp/from-flag" {
		t.Errorf("flags should beat env, got %s", cfg.Output.BaseDirectory)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative interval", func(c *Config) { c.Fetcher.MinRequestInterval = -time.Second }},
		{"zero timeout", func(c *Config) { c.Fetcher.RequestTimeout = 0 }},
		{"negative retries", func(c *Config) { c.Fetcher.MaxRetries = -1 }},
		{"empty output dir", func(c *Config) { c.Output.BaseDirectory = "" }},
		{"zero post limit", func(c *Config) { c.Download.PostLimit = 0 }},
		{"inverted post delays", func(c *Config) { c.Download.MinPostDelay = 5 * time.Second }},
		{"bad log level", func(c *Config) { c.Logging.Level = "noisy" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
