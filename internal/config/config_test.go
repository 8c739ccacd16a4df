package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaults verifies the built-in settings match the fixed scene.
func TestDefaults(t *testing.T) {
	s := Default()

	if s.WindowWidth != 1280 || s.WindowHeight != 960 {
		t.Errorf("default window = %dx%d, want 1280x960", s.WindowWidth, s.WindowHeight)
	}
	if s.Interocular != 0.65 {
		t.Errorf("default interocular = %v, want 0.65", s.Interocular)
	}
	if s.InterocularRate != 0.6 {
		t.Errorf("default interocular rate = %v, want 0.6", s.InterocularRate)
	}
	if s.OrbitRadius != 20 || s.OrbitSpeed != 0.7 {
		t.Errorf("default orbit = radius %v speed %v, want 20 and 0.7", s.OrbitRadius, s.OrbitSpeed)
	}
	if s.NearPlane != 1 || s.FarPlane != 100000 {
		t.Errorf("default planes = %v..%v, want 1..100000", s.NearPlane, s.FarPlane)
	}
}

// TestLoadMissingFile verifies a missing settings file is not an error and
// yields the defaults.
func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file returned error: %v", err)
	}
	if s != Default() {
		t.Errorf("missing file did not return defaults: %+v", s)
	}
}

// TestLoadOverrides verifies present keys override defaults and absent keys
// keep theirs.
func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	body := "window_width = 1920\nwindow_height = 1080\ninterocular = 1.2\nfps_limit = 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.WindowWidth != 1920 || s.WindowHeight != 1080 {
		t.Errorf("window = %dx%d, want 1920x1080", s.WindowWidth, s.WindowHeight)
	}
	if s.Interocular != 1.2 {
		t.Errorf("interocular = %v, want 1.2", s.Interocular)
	}
	if s.FPSLimit != 0 {
		t.Errorf("fps_limit = %v, want 0", s.FPSLimit)
	}
	// Untouched key keeps its default.
	if s.OrbitSpeed != 0.7 {
		t.Errorf("orbit_speed = %v, want default 0.7", s.OrbitSpeed)
	}
}

// TestLoadMalformed verifies a corrupt file is reported as an error.
func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("window_width = {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed settings file did not return an error")
	}
}

// TestApplyAndGet verifies applied settings are visible through the global
// accessors.
func TestApplyAndGet(t *testing.T) {
	defer Apply(Default())

	s := Default()
	s.FPSLimit = 30
	Apply(s)

	if got := GetFPSLimit(); got != 30 {
		t.Errorf("GetFPSLimit() = %v, want 30", got)
	}
}
