// Package config provides configuration for the storefront backend: the
// HTTP server, the catalog data directory, and the recommender defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Catalog     CatalogConfig
	Recommender RecommenderConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

// CatalogConfig holds catalog persistence configuration
type CatalogConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// RecommenderConfig holds the recommender defaults. The confidence
// threshold is the only scoring knob exposed to configuration; boost
// multipliers and heuristic weights are fixed constants.
type RecommenderConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
}

// RateLimitConfig holds rate limiting for the chat endpoint
type RateLimitConfig struct {
	ChatPerSecond float64 `mapstructure:"chat_per_second"`
	ChatBurst     int     `mapstructure:"chat_burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront/")

	// Environment variable settings
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")

	// Catalog defaults
	v.SetDefault("catalog.data_dir", "./storefront_data")

	// Recommender defaults
	v.SetDefault("recommender.confidence_threshold", 6.0)

	// Rate limit defaults
	v.SetDefault("ratelimit.chat_per_second", 5.0)
	v.SetDefault("ratelimit.chat_burst", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if config.Recommender.ConfidenceThreshold < 0 {
		return fmt.Errorf("confidence threshold cannot be negative, got: %f", config.Recommender.ConfidenceThreshold)
	}

	if config.RateLimit.ChatPerSecond <= 0 {
		return fmt.Errorf("chat rate limit must be positive, got: %f", config.RateLimit.ChatPerSecond)
	}

	return nil
}
