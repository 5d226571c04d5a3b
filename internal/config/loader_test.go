package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity_ratio: 3.5\ngod_mode: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.GravityRatio != 3.5 {
		t.Errorf("GravityRatio = %v, expected 3.5", cfg.Physics.GravityRatio)
	}
	if !cfg.GodMode {
		t.Error("GodMode should be true")
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpRatio != 0.6 {
		t.Errorf("JumpRatio = %v, expected default 0.6", cfg.Physics.JumpRatio)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("obstacles:\n  spawn_interval: 0\naudio:\n  volume: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject invalid values")
	}
	for _, want := range []string{"obstacles.spawn_interval", "audio.volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Theme = "dark"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed config:\n%+v\n%+v", got, cfg)
	}
}

func TestResizeDebounce(t *testing.T) {
	v := FlappyViewport{ResizeDebounceMS: 250}
	if v.ResizeDebounce() != 250*time.Millisecond {
		t.Errorf("ResizeDebounce() = %v, expected 250ms", v.ResizeDebounce())
	}
}
