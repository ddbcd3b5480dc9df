package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Giphy: GiphyConfig{
			APIKey:        "valid-api-key",
			Limit:         10,
			Rating:        "pg",
			RetryAttempts: 3,
		},
		Service: ServiceConfig{
			RetryAttempts: 2,
			MaxBatch:      10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *Config) { cfg.Giphy.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder api key",
			mutate:  func(cfg *Config) { cfg.Giphy.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "limit too large",
			mutate:  func(cfg *Config) { cfg.Giphy.Limit = 51 },
			wantErr: true,
		},
		{
			name:    "limit too small",
			mutate:  func(cfg *Config) { cfg.Giphy.Limit = 0 },
			wantErr: true,
		},
		{
			name:    "invalid rating",
			mutate:  func(cfg *Config) { cfg.Giphy.Rating = "nc-17" },
			wantErr: true,
		},
		{
			name:    "zero retry attempts",
			mutate:  func(cfg *Config) { cfg.Giphy.RetryAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "negative retry delay",
			mutate:  func(cfg *Config) { cfg.Giphy.RetryDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero max batch",
			mutate:  func(cfg *Config) { cfg.Service.MaxBatch = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
giphy:
  api_key: test-key
  rating: g
  retry_attempts: 5
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Giphy.APIKey != "test-key" {
		t.Errorf("api_key = %q, want %q", cfg.Giphy.APIKey, "test-key")
	}
	if cfg.Giphy.Rating != "g" {
		t.Errorf("rating = %q, want %q", cfg.Giphy.Rating, "g")
	}
	if cfg.Giphy.RetryAttempts != 5 {
		t.Errorf("retry_attempts = %d, want 5", cfg.Giphy.RetryAttempts)
	}

	// Defaults fill everything the file leaves out
	if cfg.Giphy.Limit != 10 {
		t.Errorf("limit default = %d, want 10", cfg.Giphy.Limit)
	}
	if cfg.Giphy.Timeout != 5*time.Second {
		t.Errorf("timeout default = %v, want 5s", cfg.Giphy.Timeout)
	}
	if cfg.Giphy.MaxConnsPerHost != 20 {
		t.Errorf("max_conns_per_host default = %d, want 20", cfg.Giphy.MaxConnsPerHost)
	}
	if cfg.Service.Limit != 5 {
		t.Errorf("service.limit default = %d, want 5", cfg.Service.Limit)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("logging.format default = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
