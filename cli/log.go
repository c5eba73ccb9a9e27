package cli

import (
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/logtree/log"
)

// logFormat configures the default logger format as a side effect of
// parsing, so that errors reported during parsing already use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f logFormat) MarshalText() ([]byte, error) { return []byte(f), nil }

// logLevel configures the default logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names are left for kong's enum validation to report.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)

	if level, err := log.ParseLevel(string(*l)); err == nil {
		log.Config(log.WithLevel(level))
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l logLevel) MarshalText() ([]byte, error) { return []byte(l), nil }

type logConfig struct {
	Level      logLevel  `default:"info"  enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text"  enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"clock"                         help:"Set timestamp format."`
	Caller     bool      `default:"false"                         help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                          help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	var levels, formats []string

	for name := range log.Levels() {
		levels = append(levels, name)
	}

	for name := range log.Formats() {
		formats = append(formats, name)
	}

	return kong.Vars{
		"logLevelEnum":  strings.Join(levels, ","),
		"logFormatEnum": strings.Join(formats, ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) options() []log.Option {
	level, err := log.ParseLevel(string(f.Level))
	if err != nil {
		level = log.DefaultLevel
	}

	return []log.Option{
		log.WithLevel(level),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}
}

func (f *logConfig) start() {
	log.Config(f.options()...)

	log.Debug("logger initialized", map[string]any{
		"level":  string(f.Level),
		"format": string(f.Format),
		"time":   f.TimeLayout,
		"caller": f.Caller,
		"pretty": f.Pretty,
	})
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing.
//
// logFormat and logLevel configure the logger as kong decodes them, but
// boolean flags do not pass through a TextUnmarshaler, so this pass covers
// them as well.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		negated := strings.HasPrefix(name, "--no-log-")
		if !negated && !strings.HasPrefix(name, "--log-") {
			continue
		}

		// Non-boolean flags consume the next argument unless assigned inline.
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" && args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		// Boolean flags are true unless assigned a false value inline.
		flag := func() (bool, bool) {
			v := true

			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return false, false
				}

				v = b
			}

			return v != negated, true
		}

		switch strings.TrimPrefix(strings.TrimPrefix(name, "--no-log-"), "--log-") {
		case "level":
			_ = f.Level.UnmarshalText([]byte(next()))

		case "format":
			_ = f.Format.UnmarshalText([]byte(next()))

		case "time-layout":
			f.TimeLayout = next()
			log.Config(log.WithTimeLayout(f.TimeLayout))

		case "pretty":
			if v, ok := flag(); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case "caller":
			if v, ok := flag(); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}
		}
	}
}
