package log

import (
	"iter"
	"log/slog"
	"slices"
)

// Level represents the severity of a log message.
//
// Levels share the numbering of [slog.Level] so that a [Level] can be handed
// to a [slog.Handler] unchanged. Trace sits below [slog.LevelDebug].
type Level int

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)  // trace
	LevelDebug Level = Level(slog.LevelDebug) // debug
	LevelInfo  Level = Level(slog.LevelInfo)  // info
	LevelWarn  Level = Level(slog.LevelWarn)  // warn
	LevelError Level = Level(slog.LevelError) // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// levels holds every defined level in ascending order.
var levels = []Level{
	LevelTrace,
	LevelDebug,
	LevelInfo,
	LevelWarn,
	LevelError,
}

// AllLevels returns every defined level in ascending order.
func AllLevels() []Level { return slices.Clone(levels) }

// Levels returns an iterator over the names of all defined log levels in
// ascending order.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range levels {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// String returns the lowercase level name, or the empty string for a value
// outside the enumeration.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return ""
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool { return l.String() != "" }

// Enabled reports whether a call at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool { return l >= threshold }

// ParseLevel parses a level name. Names are case-sensitive and limited to
// "trace", "debug", "info", "warn", and "error".
func ParseLevel(s string) (Level, error) {
	for _, level := range levels {
		if level.String() == s {
			return level, nil
		}
	}

	return DefaultLevel, ErrInvalidLevel.With(slog.String("level", s))
}

// IsLogLevel reports whether s names a defined level.
func IsLogLevel(s string) bool {
	_, err := ParseLevel(s)

	return err == nil
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, ErrInvalidLevel.With(slog.Int("level", int(l)))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}
