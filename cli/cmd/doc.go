// Package cmd implements the vcalc subcommands: run, eval, fmt, repl and
// init.
//
// Commands receive their dependencies through the [context.Context] passed
// to Run: the parsed [kong.Context] ([WithContext]) and the script search
// path ([WithSearchPath]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
