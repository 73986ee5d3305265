//go:build pprof

package profile

import (
	"maps"
	"slices"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Enabled reports whether profiling support is compiled in.
const Enabled = true

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the supported profiling modes in lexical order.
func Modes() []string { return slices.Sorted(maps.Keys(mode)) }

// option appends a [profile.Profile] setting.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func start(p Profiler) Stopper {
	fn, ok := mode[p.Mode]
	if !ok {
		return ignore{}
	}

	var opts []func(*profile.Profile)
	for _, o := range []option{
		withMode(fn),
		withPath(p.Path),
		withQuiet(p.Quiet),
		withNoShutdownHook(),
	} {
		opts = o(opts)
	}

	return profile.Start(opts...)
}

func withMode(fn func(*profile.Profile)) option {
	return func(o []func(*profile.Profile)) []func(*profile.Profile) {
		return append(o, fn)
	}
}

func withPath(path string) option {
	return func(o []func(*profile.Profile)) []func(*profile.Profile) {
		if path == "" {
			return o
		}

		return append(o, profile.ProfilePath(path))
	}
}

func withQuiet(quiet bool) option {
	return func(o []func(*profile.Profile)) []func(*profile.Profile) {
		if !quiet {
			return o
		}

		return append(o, profile.Quiet)
	}
}

// withNoShutdownHook leaves interrupt handling to the REPL, which stops the
// profiler on exit.
func withNoShutdownHook() option {
	return func(o []func(*profile.Profile)) []func(*profile.Profile) {
		return append(o, profile.NoShutdownHook)
	}
}
