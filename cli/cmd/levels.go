package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/ardnew/logtree/log"
)

// Levels lists the log levels or validates a level name.
type Levels struct {
	Name string `arg:"" help:"Level name to validate." optional:""`
}

// Run executes the levels command.
func (l *Levels) Run(ctx context.Context) error {
	out := stdout(ctx)

	if l.Name == "" {
		for _, level := range log.AllLevels() {
			writeLevel(out, level)
		}

		return nil
	}

	level, err := parseLevel(l.Name)
	if err != nil {
		return err
	}

	writeLevel(out, level)

	return nil
}

func writeLevel(w io.Writer, level log.Level) {
	_, _ = fmt.Fprintf(w, "%-5s %3d %s\n", level, int(level), level.Channel())
}
