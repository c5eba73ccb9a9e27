package transport

import (
	"bytes"
	"io"
	"log/slog"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/logtree/log"
)

const documentStart = "---\n"

// YAML returns a transport writing each record to w as a YAML document.
// Every document begins with a "---" marker.
func YAML(w io.Writer, opts ...Option) log.Transport {
	cfg := makeConfig(opts...)

	var mu sync.Mutex

	return func(r log.Record) {
		doc, err := yaml.MarshalWithOptions(r, yaml.Indent(2))
		if err != nil {
			cfg.onError(ErrEncode.Wrap(err).With(slog.String("format", "yaml")))

			return
		}

		var buf bytes.Buffer

		buf.WriteString(documentStart)
		buf.Write(doc)

		mu.Lock()
		defer mu.Unlock()

		if _, err := w.Write(buf.Bytes()); err != nil {
			cfg.onError(ErrWrite.Wrap(err).With(slog.String("format", "yaml")))
		}
	}
}
