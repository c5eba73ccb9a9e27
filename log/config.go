package log

import (
	"io"
	"iter"
	"strings"
	"time"
)

// Format represents the output format of the process renderer.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the default process renderer format.
const DefaultFormat = FormatText

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return ""
	}
}

// Formats returns an iterator over all defined output formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{FormatText, FormatJSON} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a format name. Valid names are "json" and "text".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout renders wall-clock time with milliseconds.
const DefaultTimeLayout = "15:04:05.000"

// config holds the settings shared by both root variants.
type config struct {
	output      io.Writer
	console     Console
	clock       func() time.Time
	formatTime  FormatTime
	level       Level
	format      Format
	bufferLimit int
	quiet       bool
	caller      bool
	pretty      bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	return apply(config{
		clock:      time.Now,
		formatTime: makeFormatTimeFunc(DefaultTimeLayout),
		level:      DefaultLevel,
		format:     DefaultFormat,
		pretty:     true,
	}, opts...)
}

// WithLevel returns an option that sets the root's initial level.
// Invalid levels are ignored.
func WithLevel(level Level) Option {
	return func(c config) config {
		if level.Valid() {
			c.level = level
		}

		return c
	}
}

// WithConsole returns an option that sets the backend used by the console
// renderer. A nil console selects a [StreamConsole] on the standard streams.
func WithConsole(console Console) Option {
	return func(c config) config {
		c.console = console

		return c
	}
}

// WithOutput returns an option that sets the stream written by the process
// renderer. If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithConsoleOutput returns an option that enables or disables console
// rendering. Records are still produced and delivered to transports when
// console output is disabled.
func WithConsoleOutput(enable bool) Option {
	return func(c config) config {
		c.quiet = !enable

		return c
	}
}

// WithTimeLayout returns an option that sets the layout used to format
// rendered timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "Kitchen"). Otherwise, it is passed verbatim
// to [time.Time.Format].
//
// If an empty string (after trimming whitespace) is provided, timestamps are
// omitted from rendered output.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithClock returns an option that replaces the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c config) config {
		if now != nil {
			c.clock = now
		}

		return c
	}
}

// WithFormat returns an option that sets the process renderer format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithPretty returns an option that controls colorized rendering.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

// WithCaller returns an option that controls whether the process renderer
// includes the calling source location.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithBufferLimit returns an option that bounds the number of records held
// before the first transport is attached. Once full, the oldest record is
// dropped for each new one. Zero or less keeps every record.
func WithBufferLimit(n int) Option {
	return func(c config) config {
		c.bufferLimit = max(n, 0)

		return c
	}
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822":      time.RFC822,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"timeonly":    time.TimeOnly,
	"clock":       DefaultTimeLayout,
	"none":        "",

	"stamp":      time.Stamp,
	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"ms":         time.StampMilli,
	"stampmicro": time.StampMicro,
	"us":         time.StampMicro,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Trim whitespace only for inspection.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		if std == "" {
			return func(time.Time) string { return "" }
		}

		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
