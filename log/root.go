package log

import (
	"io"
	"log/slog"
)

// Root is the top of a logger tree. It owns the registry shared by all of its
// descendants and, for console roots, the buffer and the set of transports.
type Root struct {
	*Logger
}

// NewConsole returns the root of a new logger tree that renders to a
// [Console] and supports transports.
//
// Records produced before the first call to [Root.AttachTransport] are
// buffered and replayed, in order, to that first transport.
func NewConsole(opts ...Option) *Root {
	cfg := makeConfig(opts...)

	var out renderer
	if !cfg.quiet {
		out = newConsoleRenderer(cfg)
	}

	return newRoot(cfg, out, newSink(cfg.bufferLimit))
}

// NewProcess returns the root of a new logger tree that renders to w through
// a [slog.Handler]. Process roots do not support transports.
func NewProcess(w io.Writer, opts ...Option) *Root {
	cfg := makeConfig(append([]Option{WithOutput(w)}, opts...)...)

	var out renderer
	if !cfg.quiet {
		out = newProcessRenderer(cfg)
	}

	return newRoot(cfg, out, nil)
}

// CreateRootLogger returns a console root at the given level, optionally with
// console output disabled.
func CreateRootLogger(level Level, disableConsoleOutput bool) *Root {
	return NewConsole(
		WithLevel(level),
		WithConsoleOutput(!disableConsoleOutput),
	)
}

func newRoot(cfg config, out renderer, s *sink) *Root {
	t := &tree{
		nodes:  make(map[string]*Logger),
		sink:   s,
		out:    out,
		clock:  cfg.clock,
		caller: cfg.caller,
	}

	root := &Logger{
		tree:    t,
		name:    RootName,
		parents: []string{},
	}
	root.level.Store(int64(cfg.level))

	t.root = root
	t.nodes[RootName] = root

	return &Root{Logger: root}
}

// AttachTransport registers t to receive records.
//
// The first transport attached to a console root receives every record
// buffered so far, in emission order, before any later record; the buffer is
// then discarded for good. Transports attached afterwards receive only
// records emitted after their own attachment. Attaching the same function
// twice registers it twice.
//
// Process roots return [ErrTransportUnsupported].
func (r *Root) AttachTransport(t Transport) error {
	if r.tree.sink == nil {
		return ErrTransportUnsupported.With(slog.String("root", RootName))
	}

	return r.tree.sink.attach(t)
}

// SupportsTransports reports whether r accepts transports.
func (r *Root) SupportsTransports() bool { return r.tree.sink != nil }

// Buffering reports whether r is still holding records for its first
// transport.
func (r *Root) Buffering() bool {
	return r.tree.sink != nil && r.tree.sink.buffering()
}

// Buffered returns the number of records waiting for the first transport.
func (r *Root) Buffered() int {
	if r.tree.sink == nil {
		return 0
	}

	return r.tree.sink.buffered()
}

// Dropped returns the number of buffered records discarded because the
// buffer limit was reached.
func (r *Root) Dropped() uint64 {
	if r.tree.sink == nil {
		return 0
	}

	return r.tree.sink.droppedCount()
}
