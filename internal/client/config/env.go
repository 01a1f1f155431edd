package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries, as godotenv never overwrites them.
//
// Recognised variables:
//
//	FINWALLET_SERVER_URL     base URL of the backend REST API
//	FINWALLET_DATABASE_PATH  path to the local SQLite credential database
//	FINWALLET_HTTP_TIMEOUT   per-request timeout, Go duration syntax ("15s")
//	FINWALLET_LOG_LEVEL      debug, info, warn or error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FINWALLET_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("FINWALLET_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("FINWALLET_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("FINWALLET_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
