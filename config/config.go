package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/shelfscout/backend/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Matching  MatchingConfig
	Suggest   SuggestConfig
	RateLimit RateLimitConfig
	Log       logging.Config
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig holds photo-identification tuning
type MatchingConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	MaxSuggestions      int     `mapstructure:"max_suggestions"`
}

// SuggestConfig holds text-suggestion tuning
type SuggestConfig struct {
	Limit int `mapstructure:"limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shelfscout/")

	v.SetEnvPrefix("SHELFSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("matching.confidence_threshold", 0.6)
	v.SetDefault("matching.max_suggestions", 5)

	v.SetDefault("suggest.limit", 10)

	v.SetDefault("ratelimit.per_ip", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Matching.ConfidenceThreshold <= 0 || config.Matching.ConfidenceThreshold > 1 {
		return fmt.Errorf("matching confidence threshold must be in (0, 1], got: %v", config.Matching.ConfidenceThreshold)
	}

	if config.Matching.MaxSuggestions < 0 {
		return fmt.Errorf("matching max suggestions must not be negative, got: %d", config.Matching.MaxSuggestions)
	}

	if config.Suggest.Limit <= 0 {
		return fmt.Errorf("suggest limit must be positive, got: %d", config.Suggest.Limit)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("per-IP rate limit must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
