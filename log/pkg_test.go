package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"WarnContext", func(msg string, attrs ...slog.Attr) {
			WarnContext(t.Context(), msg, attrs...)
		}, "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.name+" message", slog.String("key", "value"))

			result := decodeJSON(t, buf.Bytes())
			if result["msg"] != tt.name+" message" {
				t.Errorf("msg = %v", result["msg"])
			}

			if result["level"] != tt.level {
				t.Errorf("level = %v, want %v", result["level"], tt.level)
			}

			if result["key"] != "value" {
				t.Errorf("key = %v", result["key"])
			}
		})
	}
}

func TestPackage_With_UsesDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithFormat(FormatText), WithPretty(false))

	With(slog.String("component", "repl")).Warn("started")

	if !strings.Contains(buf.String(), "component=repl") {
		t.Errorf("missing attribute: %q", buf.String())
	}
}
