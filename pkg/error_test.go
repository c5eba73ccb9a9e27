package pkg

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

var (
	errSentinel = NewError("sentinel")
	errOther    = NewError("other")
)

func TestError_Is_KeepsSentinelIdentity(t *testing.T) {
	err := errSentinel.With(slog.String("level", "loud"))

	if !errors.Is(err, errSentinel) {
		t.Error("decorated error lost sentinel identity")
	}

	if errors.Is(err, errOther) {
		t.Error("decorated error matched unrelated sentinel")
	}

	wrapped := errSentinel.Wrap(io.EOF)
	if !errors.Is(wrapped, errSentinel) || !errors.Is(wrapped, io.EOF) {
		t.Errorf("wrapped error = %v, want both sentinel and cause", wrapped)
	}

	if got := wrapped.Error(); got != errSentinel.msg+": EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_LogValue_IncludesAttrs(t *testing.T) {
	err := errSentinel.With(slog.String("level", "loud"))

	var sb strings.Builder

	logger := slog.New(slog.NewTextHandler(&sb, nil))
	logger.Info("parse", slog.Any("err", err))

	out := sb.String()
	for _, want := range []string{"err.error=", "err.level=loud"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWrapError(t *testing.T) {
	if got := WrapError(errSentinel); got != errSentinel {
		t.Errorf("WrapError(*Error) = %p, want the same instance", got)
	}

	wrapped := WrapError(io.EOF)
	if !errors.Is(wrapped, io.EOF) || wrapped.Error() != "EOF" {
		t.Errorf("WrapError(io.EOF) = %v", wrapped)
	}
}
