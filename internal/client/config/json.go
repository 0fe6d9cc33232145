package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ssolovjova/recipebox/internal/flagx"
	"github.com/ssolovjova/recipebox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "30s" or as
// integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	BackendURL          string         `json:"backend_url"`
	DataDir             string         `json:"data_dir"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file named via the
// -c or -config flags. With no such flag the function is a no-op; a read or
// unmarshal failure panics (configuration errors are fatal at startup).
// Fields absent from the file keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendURL != "" {
		cfg.BackendURL = jc.BackendURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.HealthCheckInterval.Duration > 0 {
		cfg.HealthCheckInterval = time.Duration(jc.HealthCheckInterval.Duration)
	}
}
