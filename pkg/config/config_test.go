package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdfpub.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Suffix != "-pub" {
		t.Errorf("Unexpected suffix: %q", cfg.Suffix)
	}
	if cfg.Opacity != 0.35 {
		t.Errorf("Unexpected opacity: %v", cfg.Opacity)
	}
	if len(cfg.Color) != 3 || cfg.Color[0] != 1 || cfg.Color[1] != 1 || cfg.Color[2] != 0 {
		t.Errorf("Expected yellow default, got %v", cfg.Color)
	}
	if cfg.Jobs != 1 {
		t.Errorf("Unexpected jobs: %d", cfg.Jobs)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "suffix: -marked\nopacity: 0.5\njobs: 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Suffix != "-marked" {
		t.Errorf("Unexpected suffix: %q", cfg.Suffix)
	}
	if cfg.Opacity != 0.5 {
		t.Errorf("Unexpected opacity: %v", cfg.Opacity)
	}
	if cfg.Jobs != 4 {
		t.Errorf("Unexpected jobs: %d", cfg.Jobs)
	}
	// Untouched keys keep their defaults.
	if len(cfg.Color) != 3 || cfg.Color[2] != 0 {
		t.Errorf("Default color lost: %v", cfg.Color)
	}
}

func TestLoadColor(t *testing.T) {
	path := writeConfig(t, "color: [0, 1, 0]\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	style := cfg.Style()
	if style.Color != [3]float64{0, 1, 0} {
		t.Errorf("Unexpected style color: %v", style.Color)
	}
	if style.Opacity != 0.35 {
		t.Errorf("Unexpected style opacity: %v", style.Opacity)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "color: [1, 1]\n"},
		{"bad opacity", "opacity: 1.5\n"},
		{"bad jobs", "jobs: 0\n"},
		{"bad yaml", "suffix: [unclosed\n"},
	}

	for _, tt := range tests {
		path := writeConfig(t, tt.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
