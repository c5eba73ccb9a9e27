package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/ardnew/logtree/log"
)

// JSON returns a transport writing each record to w as one JSON object per
// line.
func JSON(w io.Writer, opts ...Option) log.Transport {
	cfg := makeConfig(opts...)

	var mu sync.Mutex

	return func(r log.Record) {
		var buf bytes.Buffer

		if err := json.NewEncoder(&buf).Encode(r); err != nil {
			cfg.onError(ErrEncode.Wrap(err).With(slog.String("format", "json")))

			return
		}

		mu.Lock()
		defer mu.Unlock()

		if _, err := w.Write(buf.Bytes()); err != nil {
			cfg.onError(ErrWrite.Wrap(err).With(slog.String("format", "json")))
		}
	}
}
