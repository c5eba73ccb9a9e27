package profile

// Tag is the build tag enabling profiling. It also names the default profile
// directory.
const Tag = `pprof`

// Config yields the profiling mode, the output directory, and whether
// profiler messages are suppressed.
type Config func() (mode, path string, quiet bool)

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start starts profiling as configured. An empty or unknown mode starts
// nothing.
func (c Config) Start() Stopper {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode returns c with the mode replaced.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath returns c with the output directory replaced.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet returns c with quiet replaced.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

type ignore struct{}

func (ignore) Stop() {}
