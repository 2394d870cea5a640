package config

import (
	"flag"
	"io"
	"os"

	"github.com/neatdog/neatdog/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string     API base URL
//	-s string     credential store path
//	-l string     log level
//	-t duration   per-request timeout
//
// os.Args is filtered with flagx.FilterArgs first so -c/-config and any
// other flags do not trip the parser. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], "a", "s", "l", "t")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "API base URL")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "credential store path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout, 0 disables")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
