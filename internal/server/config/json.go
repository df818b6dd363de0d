package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/usergate/internal/flagx"
	"github.com/dmitrijs2005/usergate/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// both "10s" strings and integer nanoseconds.
type JsonConfig struct {
	HTTPAddr        string         `json:"http_addr"`
	Backend         string         `json:"backend"`
	SupabaseURL     string         `json:"supabase_url"`
	SupabaseKey     string         `json:"supabase_key"`
	DatabaseDSN     string         `json:"database_dsn"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the JSON file named by -c/-config in args.
// Missing keys keep their current value. An unreadable or invalid file panics,
// as the process cannot start with a configuration it did not understand.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&config.HTTPAddr, c.HTTPAddr)
	overlay(&config.Backend, c.Backend)
	overlay(&config.SupabaseURL, c.SupabaseURL)
	overlay(&config.SupabaseKey, c.SupabaseKey)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)

	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
