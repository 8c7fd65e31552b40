package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/flagx"
)

// Flags lists every flag the CLI understands, including -c/-config. The
// command line parser uses it to tell flags apart from command words.
var Flags = []string{"-a", "-t", "-w", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the HTTP API (default from Config)
//	-t string   bearer token (default from Config)
//	-w int      request timeout in seconds (default from Config)
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "base URL of the HTTP API")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "bearer token")
	timeout := fs.Int("w", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *timeout <= 0 {
		panic("request timeout must be positive")
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
