package cmd

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/logtree/log"
	"github.com/ardnew/logtree/transport"
)

// loggerSeparator splits a logger path into SubLogger names.
const loggerSeparator = "/"

// Emit logs one message through a fresh console logger tree.
//
// The record is emitted before the transport is attached, so the transport
// receives it through the buffer replay.
type Emit struct {
	Level     string            `default:"info" help:"Level of the emitted message."               short:"l"`
	RootLevel string            `default:"info" help:"Level of the root logger."`
	Levels    map[string]string `help:"Per-logger level overrides."         placeholder:"NAME=LEVEL"`
	Logger    string            `help:"Slash-separated path of the emitting logger below root." short:"n"`
	Transport string            `default:"json" enum:"json,yaml,none"       help:"Transport attached after emitting."`
	Filter    string            `help:"Expression selecting records for the transport."`
	Time      string            `default:"clock" help:"Console timestamp layout."`
	Pretty    bool              `default:"true" help:"Style console output." negatable:""`
	NoConsole bool              `help:"Disable console output."`

	Message string   `arg:"" help:"Message to log."`
	Data    []string `arg:"" help:"Extra values, each parsed as YAML."  optional:""`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) error {
	out, errOut := stdout(ctx), stderr(ctx)

	level, err := parseLevel(e.Level)
	if err != nil {
		return err
	}

	rootLevel, err := parseLevel(e.RootLevel)
	if err != nil {
		return err
	}

	overrides, err := e.overrides()
	if err != nil {
		return err
	}

	data, err := parseData(e.Data)
	if err != nil {
		return err
	}

	tr, err := e.transport(out)
	if err != nil {
		return err
	}

	root := log.NewConsole(
		log.WithLevel(rootLevel),
		log.WithConsole(log.NewStreamConsole(out, errOut)),
		log.WithConsoleOutput(!e.NoConsole),
		log.WithTimeLayout(e.Time),
		log.WithPretty(e.Pretty),
	)

	// The path is resolved first so that overrides naming one of its loggers
	// find it in place instead of creating it below root.
	logger, err := resolveLogger(root, e.Logger)
	if err != nil {
		return err
	}

	log.ApplyLevels(root, overrides)

	logger.Log(level, e.Message, data)

	log.Debug("emitted", map[string]any{
		"logger":   logger.Name(),
		"level":    level.String(),
		"buffered": root.Buffered(),
	})

	if tr == nil {
		return nil
	}

	if err := root.AttachTransport(tr); err != nil {
		return ErrAttach.Wrap(err).With(slog.String("transport", e.Transport))
	}

	return nil
}

func (e *Emit) overrides() (map[string]log.Level, error) {
	levels := make(map[string]log.Level, len(e.Levels))

	for _, name := range slices.Sorted(maps.Keys(e.Levels)) {
		level, err := parseLevel(e.Levels[name])
		if err != nil {
			return nil, ErrUnknownLevel.Wrap(err).With(slog.String("logger", name))
		}

		levels[name] = level
	}

	return levels, nil
}

// transport builds the transport selected by the flags, or nil for none.
func (e *Emit) transport(w io.Writer) (log.Transport, error) {
	onError := transport.OnError(func(err error) {
		log.Warn("transport", err)
	})

	var tr log.Transport

	switch e.Transport {
	case "json":
		tr = transport.JSON(w, onError)
	case "yaml":
		tr = transport.YAML(w, onError)
	case "none":
		return nil, nil
	default:
		return nil, ErrUnknownFormat.With(slog.String("transport", e.Transport))
	}

	if e.Filter == "" {
		return tr, nil
	}

	return transport.Filter(e.Filter, tr, onError)
}

// resolveLogger walks path from root, creating loggers as needed.
func resolveLogger(root *log.Root, path string) (*log.Logger, error) {
	logger := root.Logger

	if path == "" {
		return logger, nil
	}

	for name := range strings.SplitSeq(path, loggerSeparator) {
		if name == "" {
			return nil, ErrLoggerPath.With(slog.String("path", path))
		}

		logger = logger.SubLogger(name)
	}

	return logger, nil
}

// parseData decodes each argument as a YAML value. Arguments decoding to null
// are kept verbatim.
func parseData(args []string) ([]any, error) {
	data := make([]any, 0, len(args))

	for i, arg := range args {
		var v any

		if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
			return nil, ErrParseData.Wrap(err).With(
				slog.Int("index", i),
				slog.String("value", arg),
			)
		}

		if v == nil {
			v = arg
		}

		data = append(data, v)
	}

	return data, nil
}
