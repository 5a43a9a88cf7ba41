package main

import (
	"os"
	"strconv"
)

// Config holds the environment-derived settings for the report pipeline.
// Data directory and port come from CLI flags, everything else from the
// environment (or a .env file loaded at startup).
type Config struct {
	Provider        string
	GoogleAPIKey    string
	AnthropicAPIKey string
	MaxAttempts     int
	TopK            int
}

// LoadConfig reads configuration from the environment with defaults matching
// the pipeline's contract: 3 attempts, top-2 retrieval, Gemini provider.
func LoadConfig() Config {
	return Config{
		Provider:        os.Getenv("LLM_PROVIDER"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		MaxAttempts:     envInt("SALESCOPE_MAX_ATTEMPTS", 3),
		TopK:            envInt("SALESCOPE_TOP_K", 2),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		if logger != nil {
			logger.Warn("Ignoring invalid config value", "key", key, "value", raw)
		}
		return fallback
	}
	return n
}
