// Package game drives the per-frame loop: it pumps window events, then runs
// the frame phase machine, which updates world state, renders the left and
// right eye passes, composites the anaglyph and presents.
package game

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics/renderer"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/input"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/scene"
)

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	scene        *scene.Scene
	renderer     *renderer.Renderer

	phase      Phase
	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp wires the loop around an already-initialised window, scene and
// renderer.
func NewApp(window *glfw.Window, im *input.InputManager, s *scene.Scene, r *renderer.Renderer) *App {
	return &App{
		window:       window,
		inputManager: im,
		scene:        s,
		renderer:     r,
		phase:        PhaseIdle,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

// Run loops until the window is closed or quit is requested. Rendering
// happens in the idle time between event pumps, one full frame per pass.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		a.tick()
	}
}

// advance moves the phase machine one step and asserts no phase was skipped.
func (a *App) advance(to Phase) {
	if a.phase.Next() != to {
		log.Panicf("frame phase %s cannot follow %s", to, a.phase)
	}
	a.phase = to
}

func (a *App) tick() {
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	a.advance(PhaseUpdating)
	a.scene.Update(float32(dt), a.inputManager)
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	ctx := renderer.RenderContext{Scene: a.scene, DT: dt}

	// The two eye passes share one depth buffer, so they must stay
	// sequenced; either order would do, but both must finish before the
	// compositor samples them.
	a.advance(PhaseRenderingLeft)
	a.renderer.DrawLeft(ctx)

	a.advance(PhaseRenderingRight)
	a.renderer.DrawRight(ctx)

	a.advance(PhaseCompositing)
	a.renderer.Composite()

	a.advance(PhasePresenting)
	a.window.SwapBuffers()

	if d := time.Since(startTick); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v", d)
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait()

	a.advance(PhaseIdle)
}
