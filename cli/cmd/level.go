package cmd

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/logtree/log"
)

// parseLevel parses name as a log level, suggesting close matches on failure.
func parseLevel(name string) (log.Level, error) {
	level, err := log.ParseLevel(name)
	if err == nil {
		return level, nil
	}

	e := ErrUnknownLevel.Wrap(err).With(slog.String("level", name))

	if hint := suggestLevels(name); len(hint) > 0 {
		e = e.With(slog.String("suggest", strings.Join(hint, ",")))
	}

	return level, e
}

// suggestLevels returns the level names that fuzzy-match name in either
// direction, best match first.
func suggestLevels(name string) []string {
	names := slices.Collect(log.Levels())
	query := strings.ToLower(strings.TrimSpace(name))

	if query == "" {
		return nil
	}

	var hint []string

	for _, m := range fuzzy.Find(query, names) {
		hint = append(hint, m.Str)
	}

	for _, n := range names {
		if slices.Contains(hint, n) {
			continue
		}

		if len(fuzzy.Find(n, []string{query})) > 0 {
			hint = append(hint, n)
		}
	}

	return hint
}
