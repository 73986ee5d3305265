// Package profile provides optional runtime profiling for vcalc.
//
// Profiling is implemented with [github.com/pkg/profile] and must be enabled
// at build time using the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// [Stopper].
//
// # Modes
//
// The following modes are supported when built with the pprof tag:
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap memory profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace profiling
//
// Profiles are written to [Profiler.Path] with names matching the mode
// (e.g., cpu.pprof). Analyze them with go tool pprof:
//
//	vcalc --pprof-mode cpu run bench.vc
//	go tool pprof -http=: ~/.cache/vcalc/pprof/cpu.pprof
//
// The pprof build also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

// Profiler configures a profiling session.
type Profiler struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory; empty uses the working directory
	Quiet bool   // suppress the profiler's own log messages
}

// Start starts profiling and returns a [Stopper] that ends it.
//
// If the pprof build tag is unset, or p.Mode is empty or unknown, then Start
// returns a no-op implementation. Both Start and Stop are always safely
// callable.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
