package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/officehub-dev/officehub/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestInit_SetsGlobalLevel(t *testing.T) {
	Init(config.LoggingConfig{Level: "error", Format: "json"})
	if got := zerolog.GlobalLevel(); got != zerolog.ErrorLevel {
		t.Errorf("global level = %s, want error", got)
	}

	Init(config.LoggingConfig{Level: "debug", Format: "console"})
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Errorf("global level = %s, want debug", got)
	}
}
