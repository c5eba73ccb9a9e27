package profile

import "testing"

func TestConfig_Options(t *testing.T) {
	var cfg Config = func() (string, string, bool) { return "", "", false }

	cfg = WithMode("cpu")(cfg)
	cfg = WithPath("/tmp/p")(cfg)
	cfg = WithQuiet(true)(cfg)

	mode, path, quiet := cfg()
	if mode != "cpu" || path != "/tmp/p" || !quiet {
		t.Errorf("cfg() = %q, %q, %v", mode, path, quiet)
	}
}

func TestConfig_Start_EmptyMode(t *testing.T) {
	var cfg Config = func() (string, string, bool) { return "", "", true }

	if _, ok := cfg.Start().(ignore); !ok {
		t.Error("empty mode started a profiler")
	}
}

func TestConfig_Start_UnknownMode(t *testing.T) {
	var cfg Config = func() (string, string, bool) { return "nope", t.TempDir(), true }

	if _, ok := cfg.Start().(ignore); !ok {
		t.Error("unknown mode started a profiler")
	}
}
