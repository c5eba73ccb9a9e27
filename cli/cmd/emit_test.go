package cmd

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/logtree/log"
)

type emitCLI struct {
	Emit Emit `cmd:""`
}

func TestEmit_Transports(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, &emitCLI{}, nil,
			"emit", "--no-console", "--logger", "a/b", "--level", "error",
			"deep", "{x: 1}", "text")
		if err != nil {
			t.Fatal(err)
		}

		var r log.Record
		if err := json.Unmarshal([]byte(out), &r); err != nil {
			t.Fatalf("unmarshal %q: %v", out, err)
		}

		if r.Msg != "deep" || r.Meta.Name != "b" || r.Meta.LogLevel != log.LevelError {
			t.Errorf("record = %+v", r)
		}

		if !slices.Equal(r.Meta.ParentNames, []string{"root", "a"}) {
			t.Errorf("parentNames = %v", r.Meta.ParentNames)
		}

		want := []any{map[string]any{"x": float64(1)}, "text"}
		if !reflect.DeepEqual(r.Data, want) {
			t.Errorf("data = %#v, want %#v", r.Data, want)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := run(t, &emitCLI{}, nil,
			"emit", "--no-console", "--transport", "yaml", "hello")
		if err != nil {
			t.Fatal(err)
		}

		if !strings.HasPrefix(out, "---\n") || !strings.Contains(out, "msg: hello") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("none", func(t *testing.T) {
		out, _, err := run(t, &emitCLI{}, nil,
			"emit", "--no-console", "--transport", "none", "hello")
		if err != nil || out != "" {
			t.Errorf("output = %q, err = %v", out, err)
		}
	})
}

func TestEmit_Console(t *testing.T) {
	out, errOut, err := run(t, &emitCLI{}, nil,
		"emit", "--transport", "none", "--no-pretty", "--time", "none",
		"--logger", "net", "--level", "warn", "careful", "[1, 2]")
	if err != nil {
		t.Fatal(err)
	}

	if out != "" {
		t.Errorf("stdout = %q", out)
	}

	if errOut != "WARN net careful [[1, 2]]\n" {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestEmit_LevelGating(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"below root", []string{"--root-level", "warn", "--level", "info"}, false},
		{"at root", []string{"--root-level", "warn", "--level", "warn"}, true},
		{"override lowers", []string{"--root-level", "error", "--levels", "db=debug", "--logger", "db", "--level", "debug"}, true},
		{"override raises", []string{"--levels", "db=error", "--logger", "db", "--level", "warn"}, false},
		{"override elsewhere", []string{"--root-level", "error", "--levels", "db=trace", "--logger", "net", "--level", "warn"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"emit", "--no-console"}, tt.args...)
			args = append(args, "msg")

			out, _, err := run(t, &emitCLI{}, nil, args...)
			if err != nil {
				t.Fatal(err)
			}

			if got := out != ""; got != tt.want {
				t.Errorf("emitted = %v, want %v (output %q)", got, tt.want, out)
			}
		})
	}
}

func TestEmit_OverrideOnLoggerPath(t *testing.T) {
	out, _, err := run(t, &emitCLI{}, nil,
		"emit", "--no-console", "--root-level", "warn",
		"--levels", "b=debug", "--logger", "a/b", "--level", "debug", "nested")
	if err != nil {
		t.Fatal(err)
	}

	var r log.Record
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}

	if r.Meta.Name != "b" || !slices.Equal(r.Meta.ParentNames, []string{"root", "a"}) {
		t.Errorf("name = %q, parentNames = %v, want b below [root a]", r.Meta.Name, r.Meta.ParentNames)
	}
}

func TestEmit_Filter(t *testing.T) {
	out, _, err := run(t, &emitCLI{}, nil,
		"emit", "--no-console", "--filter", `atLeast(meta.logLevel, "error")`, "--level", "warn", "msg")
	if err != nil || out != "" {
		t.Errorf("filtered output = %q, err = %v", out, err)
	}

	_, _, err = run(t, &emitCLI{}, nil, "emit", "--filter", "msg +", "msg")
	if err == nil {
		t.Error("invalid filter accepted")
	}
}

func TestEmit_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"level", []string{"--level", "wrn"}, ErrUnknownLevel},
		{"root level", []string{"--root-level", "LOUD"}, ErrUnknownLevel},
		{"override", []string{"--levels", "db=nope"}, ErrUnknownLevel},
		{"logger path", []string{"--logger", "a//b"}, ErrLoggerPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"emit", "--no-console"}, tt.args...)
			args = append(args, "msg")

			_, _, err := run(t, &emitCLI{}, nil, args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseData(t *testing.T) {
	got, err := parseData([]string{"1", "a b", "{k: v}", "", "[x]"})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 5 || got[1] != "a b" || got[3] != "" {
		t.Errorf("parseData = %#v", got)
	}

	if m, ok := got[2].(map[string]any); !ok || m["k"] != "v" {
		t.Errorf("mapping = %#v", got[2])
	}

	if _, err := parseData([]string{"{unclosed"}); !errors.Is(err, ErrParseData) {
		t.Errorf("error = %v, want ErrParseData", err)
	}
}

func TestSuggestLevels(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wrn", "warn"},
		{"warning", "warn"},
		{"INFO", "info"},
		{"dbg", "debug"},
		{"errors", "error"},
	}

	for _, tt := range tests {
		if got := suggestLevels(tt.in); !slices.Contains(got, tt.want) {
			t.Errorf("suggestLevels(%q) = %v, want %q", tt.in, got, tt.want)
		}
	}

	if got := suggestLevels(""); got != nil {
		t.Errorf("suggestLevels(\"\") = %v", got)
	}
}
