// Package profile provides optional runtime profiling for logtree.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag. Without the tag every operation is a no-op and
// [Modes] is empty.
//
//	var cfg profile.Config = func() (string, string, bool) { return "cpu", dir, true }
//	defer cfg.Start().Stop()
//
// Profiles are written below the given directory with names matching the
// mode (cpu.pprof, mem.pprof, ...) and can be inspected with go tool pprof.
// Builds with the tag also register the [net/http/pprof] handlers.
package profile
