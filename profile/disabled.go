//go:build !pprof

package profile

// Enabled reports whether profiling support is compiled in.
const Enabled = false

// Modes returns nil; profiling support is not compiled in.
func Modes() []string { return nil }

func start(Profiler) Stopper { return ignore{} }
