package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     base URL of the backend API
//	-t duration   idle timeout (e.g. 30m)
//	-d string     path to the local store file
//	-l string     log format: pretty or json
//
// Only the flags listed here are parsed; the config-file flags (-c/-config)
// are handled separately, and unknown arguments are ignored rather than
// rejected so other components can define their own.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("jobly", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.DurationVar(&cfg.IdleTimeout, "t", cfg.IdleTimeout, "session idle timeout")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path to the local store file")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format: pretty or json")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
