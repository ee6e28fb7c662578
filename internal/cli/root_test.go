package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reminders.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetupUsesConfigFile(t *testing.T) {
	path := writeConfig(t, "theme: neon\nconfirm: false\n")
	o := &Options{}
	root := newRoot(o)
	if err := root.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	cfg, _, err := setup(root, o)
	if err != nil {
		t.Fatalf("setup() error: %v", err)
	}
	if cfg.Theme != "neon" {
		t.Errorf("theme = %q, want neon", cfg.Theme)
	}
	if cfg.Confirm {
		t.Error("confirm = true, want false")
	}
}

func TestSetupFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "theme: neon\nconfirm: true\n")
	logFile := filepath.Join(t.TempDir(), "reminders.log")
	o := &Options{}
	root := newRoot(o)
	args := []string{"--config", path, "--theme", "mono", "--no-confirm", "--log-file", logFile, "--debug"}
	if err := root.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	cfg, log, err := setup(root, o)
	if err != nil {
		t.Fatalf("setup() error: %v", err)
	}
	_ = log.Sync()
	if cfg.Theme != "mono" {
		t.Errorf("theme = %q, want mono", cfg.Theme)
	}
	if cfg.Confirm {
		t.Error("confirm = true, want false")
	}
	if cfg.Log.File != logFile {
		t.Errorf("log.file = %q, want %q", cfg.Log.File, logFile)
	}
	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "starting") {
		t.Errorf("log = %q, want debug start line", string(b))
	}
}

func TestSetupBadConfig(t *testing.T) {
	path := writeConfig(t, "theme: [oops\n")
	o := &Options{}
	root := newRoot(o)
	if err := root.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if _, _, err := setup(root, o); err == nil || !strings.HasPrefix(err.Error(), "load:") {
		t.Fatalf("setup() error = %v, want load error", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	root := New()
	root.SetArgs([]string{"unexpected"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() should reject positional args")
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	root := New()
	root.SetArgs([]string{"version"})
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out.String(), "dev") {
		t.Errorf("version output = %q, want dev", out.String())
	}
}
