// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level parsing, string representation, and
//              filtering behavior.
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation with level tests

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{LevelAudit, "audit"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelFatal, "FTL"},
		{LevelAudit, "AUD"},
		{Level(999), "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.ShortString(); got != tt.want {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"trace below info", LevelTrace, LevelInfo, false},
		{"debug below info", LevelDebug, LevelInfo, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"warn above info", LevelWarn, LevelInfo, true},
		{"error above info", LevelError, LevelInfo, true},
		{"fatal above error", LevelFatal, LevelError, true},
		{"audit always logs", LevelAudit, LevelFatal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
				t.Errorf("ShouldLog(%v) = %v, want %v", tt.minLevel, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"TRACE", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"information", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"audit", LevelAudit, false},
		{"  info  ", LevelInfo, false},
		{"invalid", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelError(t *testing.T) {
	_, err := ParseLevel("bogus")

	if err == nil {
		t.Fatal("ParseLevel() should return error for invalid input")
	}

	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("ParseLevel() error type = %T, want *ParseError", err)
	}

	if parseErr.Input != "bogus" {
		t.Errorf("ParseError.Input = %q, want \"bogus\"", parseErr.Input)
	}

	if parseErr.Type != "level" {
		t.Errorf("ParseError.Type = %q, want \"level\"", parseErr.Type)
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()

	if len(levels) != 7 {
		t.Errorf("AllLevels() length = %d, want 7", len(levels))
	}

	// Verify each level has a valid string representation
	for _, level := range levels {
		if level.String() == "unknown" {
			t.Errorf("AllLevels() contains level with unknown string: %d", level)
		}
	}
}

func TestDefaultLevels(t *testing.T) {
	if DefaultLevel() != LevelInfo {
		t.Errorf("DefaultLevel() = %v, want %v", DefaultLevel(), LevelInfo)
	}

	if DevelopmentLevel() != LevelDebug {
		t.Errorf("DevelopmentLevel() = %v, want %v", DevelopmentLevel(), LevelDebug)
	}
}
