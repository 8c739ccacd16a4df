package scene

import (
	"math"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/input"
)

const eps = 1e-4

func testScene() *Scene {
	return &Scene{
		Camera:        graphics.NewCamera(1280, 960, 45, 1, 100000),
		OrbitRadius:   20,
		OrbitSpeed:    0.7,
		EyeAdjustRate: 0.6,
		Frame:         FrameState{Interocular: 0.65},
	}
}

// TestOrbitLightPosition verifies the orbiting light follows
// target + radius*(cos(-speed*t), 0, sin(-speed*t)) after elapsed time t.
func TestOrbitLightPosition(t *testing.T) {
	s := testScene()
	in := input.NewInputManager()

	target := &Renderable{Name: "cube"}
	target.Transform.Position = mgl32.Vec3{0, 15, 0}
	glow := &Renderable{Name: "glow"}
	s.AddOpaque(target)
	s.AddAdditive(glow)
	s.SetOrbit(target, glow)

	// 100 fixed steps of 10ms each
	const dt = 0.01
	for i := 0; i < 100; i++ {
		s.Update(dt, in)
	}

	elapsed := 100 * dt
	angle := -0.7 * elapsed
	want := mgl32.Vec3{
		0 + float32(math.Cos(angle))*20,
		15,
		0 + float32(math.Sin(angle))*20,
	}

	got := s.Lights[0].Position
	if got.Sub(want).Len() > 1e-3 {
		t.Errorf("orbit light after %vs = %v, want %v", elapsed, got, want)
	}

	// The glow model tracks the light exactly.
	if glow.Transform.Position != got {
		t.Errorf("glow model at %v, light at %v; must match", glow.Transform.Position, got)
	}
}

// TestOrbitDirection verifies the orbit angle decreases over time, so the
// light starts moving toward negative Z from its initial +X position.
func TestOrbitDirection(t *testing.T) {
	s := testScene()
	in := input.NewInputManager()

	target := &Renderable{}
	s.SetOrbit(target, nil)

	s.Update(0.1, in)
	if s.Frame.OrbitAngle >= 0 {
		t.Errorf("orbit angle after one step = %v, want negative", s.Frame.OrbitAngle)
	}
	if s.Lights[0].Position.Z() >= 0 {
		t.Errorf("orbit light Z after one step = %v, want negative", s.Lights[0].Position.Z())
	}
}

// TestInterocularAdjustment verifies holding an adjust key changes the
// separation by rate*t and that the value is not clamped at zero.
func TestInterocularAdjustment(t *testing.T) {
	s := testScene()
	in := input.NewInputManager()

	// Hold PageDown for one simulated second: separation grows by the rate.
	in.HandleKeyEvent(glfw.KeyPageDown, glfw.Press)
	for i := 0; i < 100; i++ {
		s.Update(0.01, in)
	}
	in.HandleKeyEvent(glfw.KeyPageDown, glfw.Release)

	want := float32(0.65 + 0.6)
	if mgl32.Abs(s.Frame.Interocular-want) > eps {
		t.Errorf("interocular after 1s apart = %v, want %v", s.Frame.Interocular, want)
	}

	// Hold PageUp for five seconds: the value passes through zero and goes
	// negative, swapping the eyes.
	in.HandleKeyEvent(glfw.KeyPageUp, glfw.Press)
	for i := 0; i < 500; i++ {
		s.Update(0.01, in)
	}

	want -= 5 * 0.6
	if mgl32.Abs(s.Frame.Interocular-want) > 1e-3 {
		t.Errorf("interocular after 5s together = %v, want %v", s.Frame.Interocular, want)
	}
	if s.Frame.Interocular >= 0 {
		t.Errorf("interocular should go negative, got %v", s.Frame.Interocular)
	}
}

// TestPassListOrder verifies the draw order is opaque then additive, with
// the technique assigned by the bucket.
func TestPassListOrder(t *testing.T) {
	s := testScene()

	glow := &Renderable{Name: "glow"}
	cube := &Renderable{Name: "cube"}
	s.AddAdditive(glow)
	s.AddOpaque(cube)

	passes := s.PassList()
	if len(passes) != 2 {
		t.Fatalf("pass list has %d entries, want 2", len(passes))
	}
	if passes[0].Kind != LitTextured || passes[1].Kind != AdditiveTinted {
		t.Errorf("pass order = [%v, %v], want [LitTextured, AdditiveTinted]", passes[0].Kind, passes[1].Kind)
	}
	if cube.Technique != LitTextured {
		t.Errorf("opaque renderable technique = %v, want LitTextured", cube.Technique)
	}
	if glow.Technique != AdditiveTinted {
		t.Errorf("additive renderable technique = %v, want AdditiveTinted", glow.Technique)
	}
}

// TestWorldMatrixComposition verifies translate/rotate/scale ordering by
// transforming a known point: scale applies before rotation, translation
// last.
func TestWorldMatrixComposition(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{10, 0, 0},
		Rotation: mgl32.Vec3{0, mgl32.DegToRad(90), 0},
		Scale:    2,
	}

	// (1,0,0) scaled to (2,0,0), yawed 90 degrees onto -Z, then translated.
	p := tr.WorldMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{10, 0, -2, 1}
	if p.Sub(want).Len() > eps {
		t.Errorf("transformed point = %v, want %v", p, want)
	}
}

// TestWorldMatrixZeroScale verifies an unset scale is treated as identity
// rather than collapsing the model.
func TestWorldMatrixZeroScale(t *testing.T) {
	var tr Transform
	p := tr.WorldMatrix().Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	want := mgl32.Vec4{1, 2, 3, 1}
	if p.Sub(want).Len() > eps {
		t.Errorf("zero-scale transform maps (1,2,3) to %v, want identity", p)
	}
}

// TestUpdateResolvesMatrices verifies Update recomputes the cached world
// matrix of every renderable after control input moved it.
func TestUpdateResolvesMatrices(t *testing.T) {
	s := testScene()
	in := input.NewInputManager()

	cube := &Renderable{Name: "cube"}
	cube.Transform.Scale = 1
	s.AddOpaque(cube)
	s.SetControlled(cube)

	in.HandleKeyEvent(glfw.KeyU, glfw.Press) // model up
	s.Update(0.5, in)

	wantY := float32(40 * 0.5)
	if mgl32.Abs(cube.Transform.Position.Y()-wantY) > eps {
		t.Fatalf("controlled model Y = %v, want %v", cube.Transform.Position.Y(), wantY)
	}

	got := cube.WorldMatrix().Col(3)
	if mgl32.Abs(got.Y()-wantY) > eps {
		t.Errorf("world matrix translation = %v, want Y %v; matrix not resolved", got, wantY)
	}
}
