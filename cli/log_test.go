package cli

import (
	"testing"

	"github.com/ardnew/logtree/log"
)

func TestLogConfig_Scan(t *testing.T) {
	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })

	tests := []struct {
		name   string
		args   []string
		level  logLevel
		pretty bool
		caller bool
	}{
		{"separate value", []string{"--log-level", "debug"}, "debug", true, false},
		{"inline value", []string{"emit", "--log-level=warn", "msg"}, "warn", true, false},
		{"negated bool", []string{"--no-log-pretty"}, "info", false, false},
		{"assigned bool", []string{"--log-caller=true", "--log-pretty=false"}, "info", false, true},
		{"negated assigned", []string{"--no-log-caller=false"}, "info", true, true},
		{"ignored", []string{"--level", "error", "--pretty=false"}, "info", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Level: "info", Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.level || f.Pretty != tt.pretty || f.Caller != tt.caller {
				t.Errorf("scan = %+v", f)
			}
		})
	}
}

func TestLogConfig_ScanConfiguresDefault(t *testing.T) {
	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })

	var f logConfig
	f.scan([]string{"--log-level", "trace"})

	if got := log.Default().LogLevel(); got != log.LevelTrace {
		t.Errorf("default level = %v, want trace", got)
	}
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (&logConfig{}).vars()

	if vars["logLevelEnum"] != "trace,debug,info,warn,error" {
		t.Errorf("logLevelEnum = %q", vars["logLevelEnum"])
	}

	if vars["logFormatEnum"] != "text,json" {
		t.Errorf("logFormatEnum = %q", vars["logFormatEnum"])
	}
}
