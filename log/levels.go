package log

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/logtree/pkg"
)

// ApplyLevels configures the levels of a logger tree.
//
// The entry for [RootName], if any, is applied first so that it cascades to
// every logger already in the tree. The remaining entries are then applied in
// name order to loggers obtained with [Logger.SubLogger], creating direct
// children of root for names not yet registered. Invalid levels are skipped.
func ApplyLevels(root *Root, levels map[string]Level) {
	if root == nil {
		return
	}

	if level, ok := levels[RootName]; ok && level.Valid() {
		root.SetLogLevel(level)
	}

	for _, name := range slices.Sorted(maps.Keys(levels)) {
		level := levels[name]
		if name == RootName || !level.Valid() {
			continue
		}

		root.SubLogger(name).SetLogLevel(level)
	}
}

// ParseLevels parses a map of logger names to level names.
// Every invalid level is reported in the returned error.
func ParseLevels(names map[string]string) (map[string]Level, error) {
	levels := make(map[string]Level, len(names))

	var errs []error

	for _, name := range slices.Sorted(maps.Keys(names)) {
		level, err := ParseLevel(names[name])
		if err != nil {
			errs = append(errs, pkg.WrapError(err).With(slog.String(nameKey, name)))

			continue
		}

		levels[name] = level
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return levels, nil
}
