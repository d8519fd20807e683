package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 200 || cfg.Height != 200 {
		t.Errorf("expected 200x200 default, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Blue.Iterations != 800 {
		t.Errorf("expected blue budget 800, got %d", cfg.Blue.Iterations)
	}
	if cfg.Red.Samples != 200*200*100 {
		t.Errorf("expected 100 samples per pixel, got %d", cfg.Red.Samples)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -10 }},
		{"degenerate viewport", func(c *Config) { c.Viewport.MaxR = c.Viewport.MinR }},
		{"zero iterations", func(c *Config) { c.Green.Iterations = 0 }},
		{"negative samples", func(c *Config) { c.Blue.Samples = -1 }},
		{"bad normalization", func(c *Config) { c.Normalization = "global" }},
		{"empty output", func(c *Config) { c.Output = "" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")

	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Blue.Iterations = 1600
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Width != 64 || loaded.Blue.Iterations != 1600 || loaded.Seed != 99 {
		t.Errorf("round-trip lost values: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	v := GetPreset("full")
	if v == nil {
		t.Fatal("expected full preset")
	}
	if v.MinR != -2.0 || v.MaxI != 2.0 {
		t.Errorf("unexpected full viewport %+v", v)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	// Mutating a returned preset must not affect the table.
	v.MinR = 0
	if GetPreset("full").MinR != -2.0 {
		t.Error("GetPreset should return a copy")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	sort.Strings(names)
	found := false
	for _, n := range names {
		if n == "seahorse" {
			found = true
		}
	}
	if !found {
		t.Error("expected seahorse preset in listing")
	}
}

func TestJobConversion(t *testing.T) {
	cfg := DefaultConfig()
	j := cfg.Job()

	if j.Channels[2].Iterations != cfg.Blue.Iterations {
		t.Error("blue channel should map to the third pass")
	}
	if j.Viewport.Min.R != cfg.Viewport.MinR || j.Viewport.Max.I != cfg.Viewport.MaxI {
		t.Error("viewport mapping lost bounds")
	}
}
