package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the recipebox CLI.
//
// Fields:
//   - BackendURL: base URL of the recipe service; treated as opaque and used
//     both for API calls and for the admin console link.
//   - DataDir: directory holding the local credential database.
//   - HealthCheckInterval: how often the client probes service reachability.
type Config struct {
	BackendURL          string
	DataDir             string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:1111"
	c.DataDir = ".recipebox"
	c.HealthCheckInterval = 30 * time.Second
}

// AdminURL returns the human-facing admin console address derived from the
// backend base URL.
func (c *Config) AdminURL() string {
	return strings.TrimRight(c.BackendURL, "/") + "/admin"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if one is
// named via -c/-config), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
