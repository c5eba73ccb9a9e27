package cmd

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError(t *testing.T) {
	err := ErrWriteConfig.With(slog.String("file", "x")).Wrap(io.EOF)

	if !errors.Is(err, ErrWriteConfig) || !errors.Is(err, io.EOF) {
		t.Errorf("errors.Is failed for %v", err)
	}

	if errors.Is(err, ErrFileExists) {
		t.Errorf("%v matched unrelated sentinel", err)
	}

	if got, want := err.Error(), "write configuration file: EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	v := err.LogValue()
	if v.Kind() != slog.KindGroup || len(v.Group()) != 3 {
		t.Errorf("LogValue() = %v", v)
	}
}
