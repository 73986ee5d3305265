// Package cli contains the command line interface for vcalc.
//
// # Usage
//
//	vcalc [flags] [repl] [-f FILE]...
//	vcalc [flags] run [--expr] FILE...
//	vcalc [flags] eval [-f FILE]... EXPR...
//	vcalc [flags] fmt {native,json,yaml,tree} [FILE]
//	vcalc [flags] init [--force]
//
// Without a command, vcalc starts the interactive session.
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (e.g. ~/.config/vcalc). The YAML file is the one
// written by "vcalc init"; nested keys name grouped flags:
//
//	log:
//	  level: debug
//	  format: json
//	path:
//	  - ~/lib/vcalc
//
// Keys of config.json are flat flag names with underscores in place of
// hyphens:
//
//	{"log_level": "debug", "path": ["~/lib/vcalc"]}
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (kitchen, rfc3339, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Style text output for terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/vcalc/pprof)
//
// # Examples
//
//	# Evaluate with debug logging
//	vcalc --log-level=debug eval 'f(x) = x ^ 2' 'f([1 2 3])'
//
//	# Run a script found on the search path with CPU profiling
//	vcalc -I ~/lib/vcalc --pprof-mode=cpu run bench
package cli
