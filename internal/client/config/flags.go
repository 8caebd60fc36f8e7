package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/scripto/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend base URL
//	-t int      request timeout in seconds
//	-d string   path of the local database
//	-i int      online check interval in seconds
//	-v          verbose logging
//
// Only these flags are looked at; the rest of args is filtered out with
// flagx.FilterArgs so other components can own their flags.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args,
		flagx.Value("a"), flagx.Value("t"), flagx.Value("d"), flagx.Value("i"), flagx.Switch("v"))

	fs := flag.NewFlagSet("scripto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	// Flags are whole seconds; keep a sub-second file value unless overridden.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["t"] {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	if set["i"] {
		cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	}
	return nil
}
