package config

import (
	"flag"
	"os"
	"time"

	"github.com/ssolovjova/recipebox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the recipe service (default from Config)
//	-d string   data directory for the credential database
//	-i int      health check interval in seconds (default from Config)
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "base URL of the recipe service")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the credential database")
	healthCheckInterval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Non-positive intervals would blow up the watcher ticker; keep the
	// current value, matching the env path.
	if *healthCheckInterval > 0 {
		cfg.HealthCheckInterval = time.Duration(*healthCheckInterval) * time.Second
	}
}
