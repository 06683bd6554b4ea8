package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SHELFSCOUT_SERVER_PORT")
		os.Unsetenv("SHELFSCOUT_SERVER_ENVIRONMENT")
		os.Unsetenv("SHELFSCOUT_MATCHING_CONFIDENCE_THRESHOLD")
		os.Unsetenv("SHELFSCOUT_MATCHING_MAX_SUGGESTIONS")
		os.Unsetenv("SHELFSCOUT_SUGGEST_LIMIT")
		os.Unsetenv("SHELFSCOUT_RATELIMIT_PER_IP")
		os.Unsetenv("SHELFSCOUT_LOG_LEVEL")
		os.Unsetenv("SHELFSCOUT_LOG_FORMAT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.ConfidenceThreshold != 0.6 {
			t.Errorf("Matching.ConfidenceThreshold = %v, want 0.6", cfg.Matching.ConfidenceThreshold)
		}
		if cfg.Matching.MaxSuggestions != 5 {
			t.Errorf("Matching.MaxSuggestions = %d, want 5", cfg.Matching.MaxSuggestions)
		}
		if cfg.Suggest.Limit != 10 {
			t.Errorf("Suggest.Limit = %d, want 10", cfg.Suggest.Limit)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFSCOUT_SERVER_PORT", "9090")
		os.Setenv("SHELFSCOUT_MATCHING_CONFIDENCE_THRESHOLD", "0.75")
		os.Setenv("SHELFSCOUT_SUGGEST_LIMIT", "20")
		os.Setenv("SHELFSCOUT_LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Matching.ConfidenceThreshold != 0.75 {
			t.Errorf("Matching.ConfidenceThreshold = %v, want 0.75", cfg.Matching.ConfidenceThreshold)
		}
		if cfg.Suggest.Limit != 20 {
			t.Errorf("Suggest.Limit = %d, want 20", cfg.Suggest.Limit)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
		}
	})

	t.Run("rejects out-of-range confidence threshold", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFSCOUT_MATCHING_CONFIDENCE_THRESHOLD", "1.5")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation failure")
		}
	})

	t.Run("rejects non-positive suggest limit", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFSCOUT_SUGGEST_LIMIT", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation failure")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFSCOUT_RATELIMIT_PER_IP", "-1")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation failure")
		}
	})
}
