// Package config loads runtime configuration for the recipebox CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env overlay (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the recipe service
//	-d string   data directory for the credential database
//	-i int      health check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "backend_url": "https://recipes.example.com",
//	  "data_dir": ".recipebox",
//	  "health_check_interval": "30s"
//	}
//
// The backend URL is opaque to the rest of the client: it is the prefix for
// every API call and for the admin console link (see (*Config).AdminURL),
// and is never parsed beyond trimming a trailing slash.
package config
