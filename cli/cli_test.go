package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/logtree/log"
	"github.com/ardnew/logtree/pkg"
)

func runCLI(t *testing.T, args ...string) (string, string, int, error) {
	t.Helper()

	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })

	var out, errOut bytes.Buffer

	code := -1

	err := run(t.Context(), func(c int) { code = c },
		[]kong.Option{kong.Writers(&out, &errOut)}, args...)

	return out.String(), errOut.String(), code, err
}

func writeConfig(t *testing.T, content string) {
	t.Helper()

	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	path := configPath(baseConfig + configExt)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Remove(path) })
}

func TestRun_Levels(t *testing.T) {
	out, _, _, err := runCLI(t, "levels")
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("got %d lines: %q", got, out)
	}
}

func TestRun_EmitReplaysToTransport(t *testing.T) {
	out, _, _, err := runCLI(t, "emit", "--no-console", "--logger", "svc/db", "ready")
	if err != nil {
		t.Fatal(err)
	}

	var r log.Record
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}

	if r.Msg != "ready" || r.Meta.Name != "db" {
		t.Errorf("record = %+v", r)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	writeConfig(t, "config:\n  root_level: warn\n")

	out, _, _, err := runCLI(t, "emit", "--no-console", "hidden")
	if err != nil {
		t.Fatal(err)
	}

	if out != "" {
		t.Errorf("configured root level ignored: %q", out)
	}

	out, _, _, err = runCLI(t, "emit", "--no-console", "--root-level", "info", "shown")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("flag did not override config: %q", out)
	}
}

func TestRun_Init(t *testing.T) {
	path := configPath(baseConfig + configExt)
	t.Cleanup(func() { _ = os.Remove(path) })

	if _, _, _, err := runCLI(t, "--log-level", "debug", "init", "--force"); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(b), "log-level: debug") {
		t.Errorf("config = %s", b)
	}

	if strings.Contains(string(b), "version") || strings.Contains(string(b), "source") {
		t.Errorf("config contains ignored flags: %s", b)
	}
}

func TestRun_Version(t *testing.T) {
	out, _, code, _ := runCLI(t, "--version")

	if code != 0 || !strings.Contains(out, pkg.Version) {
		t.Errorf("code = %d, output = %q", code, out)
	}
}
