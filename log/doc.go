// Package log implements a tree of named loggers that share one registry,
// one buffer and one set of transports.
//
// # Trees
//
// A tree is created by its root, either [NewConsole] for an interactive
// console or [NewProcess] for a process stream:
//
//	root := log.NewConsole(log.WithLevel(log.LevelDebug))
//	db := root.SubLogger("db")
//	db.Info("connected", map[string]any{"host": "localhost"})
//
// Logger names are unique across the tree. [Logger.SubLogger] returns the
// existing logger for a name wherever it was created, and [Logger.GetLogger]
// only looks names up. Every record carries the emitting logger's name and its
// ancestor chain starting at [RootName].
//
// # Levels
//
// Each logger gates calls on its own level. A new logger starts at the root's
// current level, setting the root's level overwrites the level of every logger
// in the tree, and setting any other logger's level affects only that logger.
//
// # Transports
//
// Console roots buffer every record until the first [Transport] is attached
// with [Root.AttachTransport]. That transport receives the buffered records in
// order before any new one. Later transports see only records emitted after
// they were attached. Process roots do not support transports and report
// [ErrTransportUnsupported].
//
// # Rendering
//
// Console roots write a banner, a timestamp and the logger name ahead of the
// message to a [Console], appending any extra data as one trailing
// collection. Process roots hand records to a [log/slog] handler selected by
// [WithFormat] and [WithPretty].
package log
