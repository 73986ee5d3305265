package log

import (
	"slices"
	"testing"
	"time"
)

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	for _, level := range []Level{
		LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError,
	} {
		t.Run(level.String(), func(t *testing.T) {
			cfg := makeConfig(nil, WithLevel(level))
			if cfg.level != level {
				t.Errorf("expected level %v, got %v", level, cfg.level)
			}
		})
	}
}

func TestConfig_WithCaller_SetsCaller(t *testing.T) {
	if !makeConfig(nil, WithCaller(true)).caller {
		t.Error("expected caller enabled")
	}

	if makeConfig(nil, WithCaller(true), WithCaller(false)).caller {
		t.Error("expected last option to win")
	}
}

func TestConfig_WithOutput_NilDiscards(t *testing.T) {
	cfg := makeConfig(nil, WithOutput(nil))
	if cfg.output == nil {
		t.Fatal("expected a non-nil writer")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{" info ", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"info+2", Level(2)},
		{"verbose", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevels_Formats(t *testing.T) {
	if got := slices.Collect(Levels()); !slices.Equal(got,
		[]string{"trace", "debug", "info", "warn", "error"}) {
		t.Errorf("Levels() = %v", got)
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}

	if !slices.Contains(slices.Collect(TimeLayouts()), "none") {
		t.Error("TimeLayouts() does not offer \"none\"")
	}
}

func TestConfig_formatTime_FormatsTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2024-03-05T15:04:05Z"},
		{"rfc-3339", "2024-03-05T15:04:05Z"},
		{"Kitchen", "3:04PM"},
		{"DateTime", "2024-03-05 15:04:05"},
		{"2006/01/02", "2024/03/05"},
		{"none", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := makeFormatTimeFunc(tt.layout)(ts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
