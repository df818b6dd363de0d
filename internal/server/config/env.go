package config

import "time"

// Environment variables read by parseEnv.
const (
	EnvSupabaseURL     = "SUPABASE_URL"
	EnvSupabaseKey     = "SUPABASE_ANON_KEY"
	EnvDatabaseDSN     = "DATABASE_DSN"
	EnvBackend         = "BACKEND"
	EnvHTTPAddr        = "HTTP_ADDR"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// parseEnv overlays values from the environment. Unset or empty variables
// leave the current value alone. lookup is os.LookupEnv outside of tests.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str(EnvSupabaseURL, &config.SupabaseURL)
	str(EnvSupabaseKey, &config.SupabaseKey)
	str(EnvDatabaseDSN, &config.DatabaseDSN)
	str(EnvBackend, &config.Backend)
	str(EnvHTTPAddr, &config.HTTPAddr)

	if v, ok := lookup(EnvShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}
}
