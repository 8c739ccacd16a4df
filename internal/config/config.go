package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the runtime configuration for the renderer. Values not
// present in the settings file keep their defaults.
type Settings struct {
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	Title        string `toml:"title"`
	FPSLimit     int    `toml:"fps_limit"`

	FOV       float32 `toml:"fov"`
	NearPlane float32 `toml:"near_plane"`
	FarPlane  float32 `toml:"far_plane"`

	// Interocular is the starting eye separation; it is adjusted at runtime
	// by InterocularRate units per second while the adjust keys are held.
	// No clamp is applied, negative values swap the eyes.
	Interocular     float32 `toml:"interocular"`
	InterocularRate float32 `toml:"interocular_rate"`

	OrbitRadius float32 `toml:"orbit_radius"`
	OrbitSpeed  float32 `toml:"orbit_speed"`

	MaxTextureSize int    `toml:"max_texture_size"`
	AssetsDir      string `toml:"assets_dir"`
}

// Default returns the built-in settings matching the fixed scene.
func Default() Settings {
	return Settings{
		WindowWidth:     1280,
		WindowHeight:    960,
		Title:           "Stereoscopic Anaglyph",
		FPSLimit:        120,
		FOV:             45.0,
		NearPlane:       1.0,
		FarPlane:        100000.0,
		Interocular:     0.65,
		InterocularRate: 0.6,
		OrbitRadius:     20.0,
		OrbitSpeed:      0.7,
		MaxTextureSize:  2048,
		AssetsDir:       "assets",
	}
}

// Load reads settings from a TOML file. A missing file is not an error; the
// defaults are returned unchanged.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("could not read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("could not parse settings file %s: %w", path, err)
	}
	return s, nil
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Apply installs the given settings as the process-wide configuration.
func Apply(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}

// GetFPSLimit returns the configured frame rate cap (0 disables the limiter).
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.FPSLimit
}
