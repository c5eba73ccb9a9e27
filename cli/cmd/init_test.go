package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

type initCLI struct {
	Level  string   `default:"info"`
	Pretty bool     `default:"true" negatable:""`
	Tags   []string `default:"a,b"`
	Levels map[string]string
	Source []string
	Empty  string
	Init   Init `cmd:""`
}

func TestInitRun(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{"create new config", false, false, nil},
		{"overwrite with force", true, true, nil},
		{"fail without force", false, true, ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			args := []string{"--level", "debug", "--no-pretty", "--levels", "db=trace", "init"}
			if tt.force {
				args = append(args, "--force")
			}

			_, _, err := run(t, &initCLI{}, kong.Vars{ConfigIdentifier: path}, args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			var doc map[string]map[string]any
			if err := yaml.Unmarshal(b, &doc); err != nil {
				t.Fatalf("unmarshal %q: %v", b, err)
			}

			cfg := doc[ConfigIdentifier]
			if cfg["level"] != "debug" || cfg["pretty"] != false {
				t.Errorf("config = %v", cfg)
			}

			if levels, ok := cfg["levels"].(map[string]any); !ok || levels["db"] != "trace" {
				t.Errorf("levels = %#v", cfg["levels"])
			}

			for _, key := range []string{"help", "source", "empty"} {
				if _, ok := cfg[key]; ok {
					t.Errorf("config contains %q: %s", key, b)
				}
			}

			if !strings.Contains(string(b), "tags:") {
				t.Errorf("config missing tags: %s", b)
			}
		})
	}
}

func TestConfigValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"string", "x", "x"},
		{"bool", false, false},
		{"int", 3, 3},
		{"empty slice", []string{}, nil},
		{"other", struct{ A int }{1}, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configValue(tt.in); got != tt.want {
				t.Errorf("configValue(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
