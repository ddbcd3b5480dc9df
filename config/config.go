// Package config loads and validates the gifrelay configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gifrelay"))
		}

		// Check /etc
		v.AddConfigPath("/etc/gifrelay/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Giphy defaults
	v.SetDefault("giphy.base_url", "https://api.giphy.com/v1/gifs")
	v.SetDefault("giphy.limit", 10)
	v.SetDefault("giphy.rating", "pg")
	v.SetDefault("giphy.lang", "en")
	v.SetDefault("giphy.timeout", "5s")
	v.SetDefault("giphy.retry_attempts", 3)
	v.SetDefault("giphy.retry_delay", "1s")
	v.SetDefault("giphy.max_conns", 100)
	v.SetDefault("giphy.max_conns_per_host", 20)

	// Service defaults
	v.SetDefault("service.limit", 5)
	v.SetDefault("service.timeout", "3s")
	v.SetDefault("service.retry_attempts", 2)
	v.SetDefault("service.max_batch", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Giphy.APIKey == "" || cfg.Giphy.APIKey == "your-api-key-here" {
		return fmt.Errorf("giphy.api_key must be set to a valid API key")
	}

	if cfg.Giphy.Limit < 1 || cfg.Giphy.Limit > 50 {
		return fmt.Errorf("giphy.limit must be between 1 and 50")
	}

	validRatings := map[string]bool{
		"g":     true,
		"pg":    true,
		"pg-13": true,
		"r":     true,
	}
	if !validRatings[cfg.Giphy.Rating] {
		return fmt.Errorf("invalid giphy.rating: %s (must be one of g, pg, pg-13, r)", cfg.Giphy.Rating)
	}

	if cfg.Giphy.RetryAttempts < 1 {
		return fmt.Errorf("giphy.retry_attempts must be at least 1")
	}
	if cfg.Giphy.RetryDelay < 0 {
		return fmt.Errorf("giphy.retry_delay must not be negative")
	}
	if cfg.Service.RetryAttempts < 1 {
		return fmt.Errorf("service.retry_attempts must be at least 1")
	}
	if cfg.Service.MaxBatch < 1 {
		return fmt.Errorf("service.max_batch must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
