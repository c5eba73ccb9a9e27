package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// Attribute keys written by the process renderer.
const (
	nameKey    = "logger"
	parentsKey = "parents"
	dataKey    = "data"
)

// processRenderer writes records to a stream through a [slog.Handler].
type processRenderer struct {
	handler slog.Handler
}

// newProcessRenderer builds the handler selected by the configuration.
// Level gating happens in the logger tree, so the handler accepts every
// defined level.
func newProcessRenderer(cfg config) *processRenderer {
	out := cfg.output
	if out == nil {
		out = os.Stderr
	}

	return &processRenderer{handler: cfg.handler(out)}
}

func (p *processRenderer) render(r Record, pc uintptr) {
	rec := slog.NewRecord(r.Meta.Date, slog.Level(r.Meta.LogLevel), r.Msg, pc)

	rec.AddAttrs(slog.String(nameKey, r.Meta.Name))

	if len(r.Meta.ParentNames) > 0 {
		rec.AddAttrs(slog.Any(parentsKey, r.Meta.ParentNames))
	}

	if len(r.Data) > 0 {
		rec.AddAttrs(slog.Any(dataKey, plain(r.Data)))
	}

	_ = p.handler.Handle(context.Background(), rec)
}

// handler creates a slog.Handler based on the current configuration.
func (c config) handler(w io.Writer) slog.Handler {
	formatTime := c.formatTime

	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(LevelTrace),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					formatted := formatTime(t)
					if formatted == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(formatted)
				}
			}

			// Show "TRACE" instead of "DEBUG-4".
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(strings.ToUpper(Level(level).String()))
				}
			}

			return a
		},
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)

	case FormatText:
		if c.pretty {
			return newPrettyHandler(w, opts)
		}

		return slog.NewTextHandler(w, opts)

	default:
		return slog.DiscardHandler
	}
}

func runtimeFrame(pc uintptr) runtime.Frame {
	fs := runtime.CallersFrames([]uintptr{pc})
	f, _ := fs.Next()

	return f
}
