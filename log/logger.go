package log

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// BaseLogger is the capability set shared by the root and every child logger.
type BaseLogger interface {
	Name() string
	ParentNames() []string

	LogLevel() Level
	SetLogLevel(level Level)
	IsLogLevel(level string) bool
	Levels() []Level

	Log(level Level, msg string, data []any)
	Error(msg string, data ...any)
	Warn(msg string, data ...any)
	Info(msg string, data ...any)
	Debug(msg string, data ...any)
	Trace(msg string, data ...any)

	SubLogger(name string) *Logger
	GetLogger(name string) (*Logger, bool)
}

// RootLogger is a [BaseLogger] that also accepts transports.
type RootLogger interface {
	BaseLogger

	AttachTransport(t Transport) error
}

var (
	_ BaseLogger = (*Logger)(nil)
	_ RootLogger = (*Root)(nil)
)

// renderer presents a record to an output; pc is zero unless caller
// information was requested.
type renderer interface {
	render(r Record, pc uintptr)
}

// tree is the state shared by every logger descending from one root.
// Loggers hold a pointer to it and never copy it.
type tree struct {
	mu     sync.Mutex
	nodes  map[string]*Logger
	root   *Logger
	sink   *sink
	out    renderer
	clock  func() time.Time
	caller bool
}

// Logger is a named node of a logger tree.
//
// Every Logger carries its own level. Calls below that level are dropped
// without building a record, regardless of the levels of its ancestors.
type Logger struct {
	tree    *tree
	name    string
	parents []string
	level   atomic.Int64
}

// Name returns the logger's name. The root is always named [RootName].
func (l *Logger) Name() string { return l.name }

// ParentNames returns the ancestor chain from the root down to, but
// excluding, l. The root has no parents.
func (l *Logger) ParentNames() []string { return slices.Clone(l.parents) }

// LogLevel returns the level of l.
func (l *Logger) LogLevel() Level { return Level(l.level.Load()) }

// SetLogLevel changes the level of l.
//
// Setting the root's level overwrites the level of every logger in the tree.
// Setting any other logger's level affects only that logger.
// Passing a level outside the enumeration is a caller error; use
// [Logger.IsLogLevel] or [ParseLevel] to validate input first.
func (l *Logger) SetLogLevel(level Level) {
	if l != l.tree.root {
		l.level.Store(int64(level))

		return
	}

	l.tree.mu.Lock()
	defer l.tree.mu.Unlock()

	for _, node := range l.tree.nodes {
		node.level.Store(int64(level))
	}
}

// IsLogLevel reports whether level names a defined level.
func (*Logger) IsLogLevel(level string) bool { return IsLogLevel(level) }

// Levels returns every defined level in ascending order.
func (*Logger) Levels() []Level { return AllLevels() }

// SubLogger returns the logger registered under name, creating it as a child
// of l if no logger in the tree has that name yet.
//
// Names are unique across the whole tree: requesting an existing name from
// any logger returns the same instance, wherever it was first created.
// New loggers start at the root's current level.
func (l *Logger) SubLogger(name string) *Logger {
	l.tree.mu.Lock()
	defer l.tree.mu.Unlock()

	if node, ok := l.tree.nodes[name]; ok {
		return node
	}

	parents := make([]string, 0, len(l.parents)+1)
	parents = append(parents, l.parents...)
	parents = append(parents, l.name)

	node := &Logger{
		tree:    l.tree,
		name:    name,
		parents: parents,
	}
	node.level.Store(l.tree.root.level.Load())

	l.tree.nodes[name] = node

	return node
}

// GetLogger returns the logger registered under name, if any.
// It never creates a logger.
func (l *Logger) GetLogger(name string) (*Logger, bool) {
	l.tree.mu.Lock()
	defer l.tree.mu.Unlock()

	node, ok := l.tree.nodes[name]

	return node, ok
}

// Log emits msg at level with the given data.
// A nil data slice is delivered as an empty collection.
func (l *Logger) Log(level Level, msg string, data []any) {
	if !level.Valid() || !level.Enabled(l.LogLevel()) {
		return
	}

	l.output(callDepth, level, msg, data)
}

// Error logs a message at Error level.
func (l *Logger) Error(msg string, data ...any) {
	if !LevelError.Enabled(l.LogLevel()) {
		return
	}

	l.output(callDepth, LevelError, msg, data)
}

// Warn logs a message at Warn level.
func (l *Logger) Warn(msg string, data ...any) {
	if !LevelWarn.Enabled(l.LogLevel()) {
		return
	}

	l.output(callDepth, LevelWarn, msg, data)
}

// Info logs a message at Info level.
func (l *Logger) Info(msg string, data ...any) {
	if !LevelInfo.Enabled(l.LogLevel()) {
		return
	}

	l.output(callDepth, LevelInfo, msg, data)
}

// Debug logs a message at Debug level.
func (l *Logger) Debug(msg string, data ...any) {
	if !LevelDebug.Enabled(l.LogLevel()) {
		return
	}

	l.output(callDepth, LevelDebug, msg, data)
}

// Trace logs a message at Trace level.
func (l *Logger) Trace(msg string, data ...any) {
	if !LevelTrace.Enabled(l.LogLevel()) {
		return
	}

	l.output(callDepth, LevelTrace, msg, data)
}

// callDepth is the frame skip that lands on the caller of an exported
// logging method.
const callDepth = 3

// output builds the record for a call that passed the level gate, renders it,
// and hands it to the root's sink. depth is passed to [runtime.Callers] when
// caller information is enabled.
func (l *Logger) output(depth int, level Level, msg string, data []any) {
	var pc uintptr

	if l.tree.caller {
		var pcs [1]uintptr
		runtime.Callers(depth, pcs[:])
		pc = pcs[0]
	}

	r := newRecord(l.tree.clock(), level, l.name, l.parents, msg, data)

	if l.tree.out != nil {
		l.tree.out.render(r, pc)
	}

	if l.tree.sink != nil {
		l.tree.sink.dispatch(r)
	}
}
