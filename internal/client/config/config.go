// Package config loads runtime settings for the PoleForge client from,
// in order of increasing precedence: built-in defaults, a JSON file,
// environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the PoleForge client.
//
// Fields:
//   - APIBaseURL: base URL of the backend API, no trailing slash required.
//   - AppOrigin: origin of the companion web app (used in reset links
//     shown to the user).
//   - DatabaseDSN: path/DSN of the client-local sqlite database.
//   - RequestTimeout: upper bound on a single API round trip.
type Config struct {
	APIBaseURL     string        `env:"POLEFORGE_API_BASE_URL"`
	AppOrigin      string        `env:"POLEFORGE_APP_URL"`
	DatabaseDSN    string        `env:"POLEFORGE_DATABASE_DSN"`
	RequestTimeout time.Duration `env:"POLEFORGE_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.AppOrigin = "http://localhost:5173"
	c.DatabaseDSN = "poleforge.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
