package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Clock.Format != "24" {
		t.Errorf("expected clock format 24, got %s", cfg.Clock.Format)
	}
	if cfg.Fasting.DefaultHours != "16" {
		t.Errorf("expected default_hours 16, got %s", cfg.Fasting.DefaultHours)
	}
	if cfg.TwelveHour() {
		t.Error("expected 24-hour default")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Clock.Format != "24" {
		t.Errorf("expected default clock format, got %s", cfg.Clock.Format)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[clock]
format = "12"

[fasting]
default_hours = "18h30m"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.TwelveHour() {
		t.Error("expected 12-hour format from file")
	}
	if cfg.Fasting.DefaultHours != "18h30m" {
		t.Errorf("expected default_hours 18h30m, got %s", cfg.Fasting.DefaultHours)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[clock]
format = "24"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("FASTWIN_CLOCK_FORMAT", "12")
	t.Setenv("FASTWIN_DEFAULT_HOURS", "20")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Clock.Format != "12" {
		t.Errorf("expected env override to win, got %s", cfg.Clock.Format)
	}
	if cfg.Fasting.DefaultHours != "20" {
		t.Errorf("expected env override to win, got %s", cfg.Fasting.DefaultHours)
	}
}

func TestLoadFrom_InvalidFormat(t *testing.T) {
	t.Setenv("FASTWIN_CLOCK_FORMAT", "13")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected error for bad clock format")
	}
}

func TestLoadFrom_InvalidHours(t *testing.T) {
	t.Setenv("FASTWIN_DEFAULT_HOURS", "-4")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected error for negative default_hours")
	}
}

func TestLoadFrom_MalformedToml(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[clock\nformat"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected error for malformed toml")
	}
}
