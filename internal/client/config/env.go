package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is folded in first; a missing file is fine
// and real environment variables win over it.
//
// Supported variables:
//
//	BACKEND_URL            base URL of the recipe service
//	RECIPEBOX_DATA_DIR     directory for the local credential database
//	HEALTH_CHECK_INTERVAL  probe interval in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("RECIPEBOX_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HEALTH_CHECK_INTERVAL"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.HealthCheckInterval = time.Duration(seconds) * time.Second
		}
	}
}
