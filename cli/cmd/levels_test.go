package cmd

import (
	"errors"
	"strings"
	"testing"
)

type levelsCLI struct {
	Levels Levels `cmd:""`
}

func TestLevels_List(t *testing.T) {
	out, _, err := run(t, &levelsCLI{}, nil, "levels")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"trace", "debug", "info", "warn", "error"}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out)
	}

	for i, name := range want {
		if fields := strings.Fields(lines[i]); len(fields) != 3 || fields[0] != name {
			t.Errorf("line %d = %q, want level %q", i, lines[i], name)
		}
	}

	if !strings.HasSuffix(lines[4], "error") || !strings.HasSuffix(lines[3], "warn") ||
		!strings.HasSuffix(lines[0], "log") {
		t.Errorf("channels not listed: %q", out)
	}
}

func TestLevels_Validate(t *testing.T) {
	out, _, err := run(t, &levelsCLI{}, nil, "levels", "debug")
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Fields(out); len(got) != 3 || got[0] != "debug" || got[1] != "-4" {
		t.Errorf("output = %q", out)
	}

	_, _, err = run(t, &levelsCLI{}, nil, "levels", "Debug")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("error = %v, want ErrUnknownLevel", err)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not *Error", err)
	}

	found := false

	for _, a := range e.LogValue().Group() {
		if a.Key == "suggest" && strings.Contains(a.Value.String(), "debug") {
			found = true
		}
	}

	if !found {
		t.Errorf("no suggestion in %v", e.LogValue())
	}
}
