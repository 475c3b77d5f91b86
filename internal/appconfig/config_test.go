package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SSHCommand != "ssh" {
		t.Fatalf("unexpected ssh command: %s", cfg.SSHCommand)
	}
	if cfg.UI.AccentColor != "6" {
		t.Fatalf("unexpected accent color: %s", cfg.UI.AccentColor)
	}
	if _, err := os.Stat(filepath.Join(xdg, "issh", "config.yaml")); err != nil {
		t.Fatalf("expected config.yaml written: %v", err)
	}
}

func TestLoad_NormalizesEmptyValues(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "issh")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := []byte("editor: \"code --wait\"\nssh_command: \"\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor != "code --wait" {
		t.Fatalf("unexpected editor: %s", cfg.Editor)
	}
	if cfg.SSHCommand != "ssh" {
		t.Fatalf("expected ssh fallback, got %s", cfg.SSHCommand)
	}
}
