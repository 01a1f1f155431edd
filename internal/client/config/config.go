package config

import "time"

// Config holds runtime settings for the FinWallet CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - DatabasePath: path to the local SQLite credential database.
//   - HTTPTimeout: per-request timeout for API calls (0 disables it).
//   - LogLevel: minimum level for log output (debug, info, warn, error).
//
// Units: HTTPTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	ServerURL    string
	DatabasePath string
	HTTPTimeout  time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://api.managemymoney.com"
	c.DatabasePath = "finwallet.db"
	c.HTTPTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
