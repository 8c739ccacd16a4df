package main

import (
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/config"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/game"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics/renderer"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/input"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	settings, err := config.Load("settings.toml")
	if err != nil {
		closer.Fatalf("config: %v", err)
	}
	config.Apply(settings)

	if err := glfw.Init(); err != nil {
		closer.Fatalf("glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow(settings)
	if err != nil {
		closer.Fatalf("window: %v", err)
	}

	// The framebuffer can be larger than the logical window on high-DPI
	// displays; the offscreen targets and composite viewport must match it,
	// not the requested window size.
	fbWidth, fbHeight := window.GetFramebufferSize()

	// All startup failures abort before the frame loop through
	// closer.Fatalf, which runs the bound cleanups in reverse order, same
	// as a normal exit or SIGINT.
	r, err := renderer.New(fbWidth, fbHeight, shaderDir(settings))
	if err != nil {
		closer.Fatalf("renderer: %v", err)
	}
	closer.Bind(r.Dispose)
	closer.Bind(graphics.DisposeTextures)

	s, err := buildScene(settings)
	if err != nil {
		closer.Fatalf("scene: %v", err)
	}

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	game.NewApp(window, im, s, r).Run()
}

func setupWindow(settings config.Settings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Presentation surface size is fixed at window-open time
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(settings.WindowWidth, settings.WindowHeight, settings.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; we use our own FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}
