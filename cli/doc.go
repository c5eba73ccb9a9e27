// Package cli contains the command line interface for logtree.
//
// # Commands
//
//	logtree emit [flags] MESSAGE [DATA...]
//	logtree levels [NAME]
//	logtree render [-s FILE]...
//	logtree init [--force]
//
// emit builds a console logger tree, logs MESSAGE from the logger selected
// with --logger, and only then attaches the transport chosen with
// --transport, so the record reaches it through the buffer replay:
//
//	logtree emit --root-level warn --levels db=debug \
//		--logger db/query --level debug --transport yaml \
//		"slow query" "{table: users}" 250
//
// render reads the JSON lines written by the json transport and prints them
// the way the console renderer does.
//
// # Configuration
//
// Flag defaults are read from config.yaml (and config.json) in the user
// configuration directory. init writes the current values there.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (clock, RFC3339, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
