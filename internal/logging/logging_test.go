package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug"}, true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("expected no-op logger to have every level disabled")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reminders.log")
	logger, err := New(config.LogConfig{Level: "info", File: path}, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("reminder added")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "reminder added") {
		t.Errorf("log = %q, want info line", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("log = %q, debug line should be filtered", out)
	}
}

func TestNewDebugOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.log")
	logger, err := New(config.LogConfig{Level: "error", File: path}, true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Debug("visible")
	_ = logger.Sync()

	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "visible") {
		t.Errorf("log = %q, want debug line", string(b))
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.log")
	if _, err := New(config.LogConfig{Level: "loud", File: path}, false); err == nil {
		t.Fatal("New() should reject unknown level")
	}
}
