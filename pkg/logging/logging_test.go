package logging_test

import (
	"log/slog"
	"testing"

	"github.com/agentdeck/agentdeck/pkg/logging"
)

func TestLevel_Validate(t *testing.T) {
	for _, level := range []logging.Level{"debug", "info", "warn", "error"} {
		if err := level.Validate(); err != nil {
			t.Errorf("Validate(%s) error = %v", level, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Validate(verbose) expected error")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	if got := logging.LevelDebug.ToSlogLevel(); got != slog.LevelDebug {
		t.Errorf("ToSlogLevel(debug) = %v, want %v", got, slog.LevelDebug)
	}
	if got := logging.Level("bogus").ToSlogLevel(); got != slog.LevelInfo {
		t.Errorf("ToSlogLevel(bogus) = %v, want info default", got)
	}
}

func TestFormat_Validate(t *testing.T) {
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error = %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate(xml) expected error")
	}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	var cfg logging.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %s, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %s, want text", cfg.Format)
	}
}

func TestConfig_Finalize_InvalidLevel(t *testing.T) {
	cfg := logging.Config{Level: "trace"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() expected error for invalid level")
	}
}

func TestNew_ReturnsLogger(t *testing.T) {
	cfg := logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}
	if logger := logging.New(&cfg); logger == nil {
		t.Error("New() returned nil logger")
	}
}
