package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/usergate/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-b string   backend: rest, postgres or sqlite
//	-u string   hosted backend URL
//	-k string   hosted backend access key
//	-d string   database DSN for the postgres/sqlite backends
//	-t int      shutdown timeout, seconds; applied only when given
//
// args is filtered with flagx.FilterArgs first so that -c/-config and any
// foreign flags do not break parsing.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-u", "-k", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.Backend, "b", config.Backend, "backend (rest, postgres, sqlite)")
	fs.StringVar(&config.SupabaseURL, "u", config.SupabaseURL, "hosted backend URL")
	fs.StringVar(&config.SupabaseKey, "k", config.SupabaseKey, "hosted backend access key")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Sub-second timeouts from env or JSON must survive an absent -t.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
