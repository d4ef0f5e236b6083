package metadata

import (
	"os"
	"strconv"
)

// Config holds all configuration for the metadata lookup subsystem.
type Config struct {
	Enabled    bool
	Endpoint   string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults.
// Lookups are disabled by default; the tracker is fully usable offline.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Endpoint:   "http://localhost:8810",
		TimeoutMs:  5000,
		MaxRetries: 1,
	}
}

// LoadConfig reads metadata configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NEXTUP_METADATA_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NEXTUP_METADATA_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("NEXTUP_METADATA_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("NEXTUP_METADATA_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NEXTUP_METADATA_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
