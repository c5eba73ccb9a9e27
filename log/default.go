package log

import (
	"os"
	"sync"
)

var (
	defaultMu   sync.RWMutex
	defaultOpts []Option
	defaultRoot = NewProcess(os.Stderr)
)

// Default returns the package default root, a process root writing to
// standard error unless replaced with [SetDefault].
func Default() *Root {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultRoot
}

// SetDefault replaces the package default root. A nil root is ignored.
func SetDefault(root *Root) {
	if root == nil {
		return
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRoot = root
}

// Config replaces the default root with a process root on standard error.
// Options accumulate across calls, so later calls override only the settings
// they name.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultOpts = append(defaultOpts, opts...)
	defaultRoot = NewProcess(os.Stderr, defaultOpts...)
}

// Trace logs a message at Trace level using the default root.
func Trace(msg string, data ...any) { logDefault(LevelTrace, msg, data) }

// Debug logs a message at Debug level using the default root.
func Debug(msg string, data ...any) { logDefault(LevelDebug, msg, data) }

// Info logs a message at Info level using the default root.
func Info(msg string, data ...any) { logDefault(LevelInfo, msg, data) }

// Warn logs a message at Warn level using the default root.
func Warn(msg string, data ...any) { logDefault(LevelWarn, msg, data) }

// Error logs a message at Error level using the default root.
func Error(msg string, data ...any) { logDefault(LevelError, msg, data) }

func logDefault(level Level, msg string, data []any) {
	root := Default()
	if !level.Enabled(root.LogLevel()) {
		return
	}

	// One frame more than the methods for logDefault itself.
	root.output(callDepth+1, level, msg, data)
}
