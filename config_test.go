package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("default size = %vx%v", cfg.Width, cfg.Height)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandelzoom.yaml")
	data := `
width: 1920
snapshot:
  scale: 4
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 1920 {
		t.Errorf("width = %v, want 1920", cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("unset height = %v, want default %v", cfg.Height, DefaultHeight)
	}
	if cfg.Snapshot.Scale != 4 {
		t.Errorf("snapshot scale = %v, want 4", cfg.Snapshot.Scale)
	}
	if cfg.Snapshot.Dir != DefaultSnapshotDir {
		t.Errorf("unset snapshot dir = %v, want default", cfg.Snapshot.Dir)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandelzoom.yaml")
	if err := os.WriteFile(path, []byte("width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("negative width accepted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
