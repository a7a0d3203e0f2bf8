// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{" Warn ", slog.LevelWarn},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := levelFromString(tt.in); got != tt.want {
			t.Errorf("levelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	log := New("debug")
	if log == nil {
		t.Fatal("New returned nil")
	}
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug logger does not accept debug records")
	}

	log = New("error")
	if log.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("error logger accepts info records")
	}
}
