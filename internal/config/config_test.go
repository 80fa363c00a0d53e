package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if want := filepath.Join(base, "navitone-cli", "config.toml"); cfg.Destination != want {
		t.Fatalf("expected destination %q, got %q", want, cfg.Destination)
	}
	if want := filepath.Join(base, "omarchy"); cfg.OmarchyDir != want {
		t.Fatalf("expected omarchy dir %q, got %q", want, cfg.OmarchyDir)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "themesync")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "destination: /tmp/navitone.toml\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Destination != "/tmp/navitone.toml" {
		t.Fatalf("expected destination from file, got %q", cfg.Destination)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level from file, got %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("THEMESYNC_DESTINATION", "/tmp/override.toml")
	t.Setenv("THEMESYNC_OMARCHY_DIR", "/tmp/omarchy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Destination != "/tmp/override.toml" {
		t.Fatalf("expected env destination, got %q", cfg.Destination)
	}
	if cfg.OmarchyDir != "/tmp/omarchy" {
		t.Fatalf("expected env omarchy dir, got %q", cfg.OmarchyDir)
	}
}
