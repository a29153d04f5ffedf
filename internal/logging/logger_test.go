// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Debug().Str("row", "Drama").Msg("row selected")
	output := buf.String()

	if !strings.Contains(output, `"message":"row selected"`) {
		t.Errorf("expected message field, got: %s", output)
	}
	if !strings.Contains(output, `"row":"Drama"`) {
		t.Errorf("expected row field, got: %s", output)
	}
	if !strings.Contains(output, `"time":`) {
		t.Errorf("expected time field, got: %s", output)
	}
}

func TestInitConsoleAndCaller(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Init(Config{Level: "info", Format: "console", Caller: true, Output: &buf})
	Info().Msg("console line")

	output := buf.String()
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Errorf("console format should not emit JSON: %s", output)
	}
	if !strings.Contains(output, "logger_test.go") {
		t.Errorf("expected caller info, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{" DEBUG ", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"trace", "debug", "INFO", "warn", "error", "off"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "verbose", "fatal"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true, want false", level)
		}
	}
}

func TestWithComponentAndErr(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)
	SetLogger(NewTestLogger(&buf))

	l := WithComponent("jellyfin")
	l.Info().Msg("ping")
	Err(errors.New("upstream 503")).Msg("fetch failed")

	output := buf.String()
	if !strings.Contains(output, `"component":"jellyfin"`) {
		t.Errorf("expected component field, got: %s", output)
	}
	if !strings.Contains(output, `"error":"upstream 503"`) {
		t.Errorf("expected error field, got: %s", output)
	}
}
