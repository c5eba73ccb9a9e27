package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/logtree/log"
)

// Render prints JSON-lines records, such as those written by the json
// transport, through the console renderer.
type Render struct {
	Time   string `default:"clock" help:"Timestamp layout."`
	Pretty bool   `default:"true"  help:"Style output."     negatable:""`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	sources := sourceFilesFrom(ctx)
	if sources == nil || sources.IsZero() {
		sources = openSources(os.Stdin, []string{stdinSource})
	}

	defer func() { err = errors.Join(err, sources.Close()) }()

	renderer := log.NewConsoleRenderer(
		log.NewStreamConsole(stdout(ctx), stderr(ctx)),
		log.WithTimeLayout(r.Time),
		log.WithPretty(r.Pretty),
	)

	for src := range sources.All() {
		n, rerr := renderSource(renderer, src)

		log.Debug("rendered", map[string]any{"source": src.Name, "records": n})

		if rerr != nil {
			return rerr
		}
	}

	return nil
}

func renderSource(renderer *log.ConsoleRenderer, src Source) (int, error) {
	dec := json.NewDecoder(src)

	for n := 0; ; n++ {
		var rec log.Record

		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return n, nil
		}

		if err != nil {
			return n, ErrDecodeRecord.Wrap(err).With(
				slog.String("source", src.Name),
				slog.Int("record", n),
			)
		}

		renderer.Render(rec.Clone())
	}
}
