package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Giphy   GiphyConfig   `mapstructure:"giphy"`
	Service ServiceConfig `mapstructure:"service"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GiphyConfig holds Giphy API connection and retry settings
type GiphyConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Limit           int           `mapstructure:"limit"`
	Rating          string        `mapstructure:"rating"`
	Lang            string        `mapstructure:"lang"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RetryAttempts   int           `mapstructure:"retry_attempts"`
	RetryDelay      time.Duration `mapstructure:"retry_delay"`
	MaxConns        int           `mapstructure:"max_conns"`
	MaxConnsPerHost int           `mapstructure:"max_conns_per_host"`
}

// ServiceConfig tunes the message-facing service layer
type ServiceConfig struct {
	Limit         int           `mapstructure:"limit"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	MaxBatch      int           `mapstructure:"max_batch"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
