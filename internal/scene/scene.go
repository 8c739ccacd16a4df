// Package scene holds the fixed scene data model: renderables split into
// ordered draw buckets, the two lights, the camera, and the per-frame state
// that drives motion and the stereo separation.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/input"
)

// Light is a point light: a shading input, never depth-tested itself. The
// visible glow models are ordinary additive renderables tracking Position.
type Light struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
}

// FrameState carries the per-frame counters.
type FrameState struct {
	Elapsed float64

	// Interocular is adjusted at runtime and deliberately unclamped;
	// negative values swap the eyes.
	Interocular float32

	OrbitAngle float32
}

// Pass is one bucket of the ordered render-pass list.
type Pass struct {
	Kind        TechniqueKind
	Renderables []*Renderable
}

// Scene is the full renderable state for one frame.
type Scene struct {
	Camera *graphics.Camera

	// Opaque draws before Additive. The additive glow models must composite
	// over opaque geometry already present in the depth buffer, so the
	// bucket order is a correctness requirement, not a sort heuristic.
	Opaque   []*Renderable
	Additive []*Renderable

	Lights [2]Light

	Background    mgl32.Vec3
	Ambient       mgl32.Vec3
	SpecularPower float32

	Frame FrameState

	// The orbit light circles orbitTarget; orbitModel is the glow model
	// that visualises it.
	orbitTarget *Renderable
	orbitModel  *Renderable
	OrbitRadius float32
	OrbitSpeed  float32

	// interocular adjustment rate, units per second of held key
	EyeAdjustRate float32

	// user-controlled renderable (the cube)
	controlled *Renderable
}

// AddOpaque appends a renderable to the opaque bucket.
func (s *Scene) AddOpaque(r *Renderable) {
	r.Technique = LitTextured
	s.Opaque = append(s.Opaque, r)
}

// AddAdditive appends a renderable to the additive bucket, drawn last.
func (s *Scene) AddAdditive(r *Renderable) {
	r.Technique = AdditiveTinted
	s.Additive = append(s.Additive, r)
}

// SetControlled marks the renderable moved by the model keys.
func (s *Scene) SetControlled(r *Renderable) { s.controlled = r }

// SetOrbit wires the orbiting light's tracked renderable and glow model.
// The orbit light is Lights[0].
func (s *Scene) SetOrbit(target, model *Renderable) {
	s.orbitTarget = target
	s.orbitModel = model
}

// PassList returns the explicit draw order: the opaque bucket, then the
// additive bucket.
func (s *Scene) PassList() []Pass {
	return []Pass{
		{Kind: LitTextured, Renderables: s.Opaque},
		{Kind: AdditiveTinted, Renderables: s.Additive},
	}
}

// Update advances one frame of world state: user control, the orbiting
// light, the interocular adjustment, and every world matrix.
func (s *Scene) Update(dt float32, in *input.InputManager) {
	s.Frame.Elapsed += float64(dt)

	s.Camera.Control(dt, in)

	if s.controlled != nil {
		s.controlled.Transform.Control(dt, in)
	}

	// Orbit angle decreases over time, so after elapsed time t the light
	// sits at target + radius*(cos(-speed*t), 0, sin(-speed*t)).
	s.Frame.OrbitAngle -= s.OrbitSpeed * dt
	if s.orbitTarget != nil {
		s.Lights[0].Position = s.orbitTarget.Transform.Position.Add(mgl32.Vec3{
			math32.Cos(s.Frame.OrbitAngle) * s.OrbitRadius,
			0,
			math32.Sin(s.Frame.OrbitAngle) * s.OrbitRadius,
		})
		if s.orbitModel != nil {
			s.orbitModel.Transform.Position = s.Lights[0].Position
		}
	}

	if in.IsActive(input.ActionEyesApart) {
		s.Frame.Interocular += s.EyeAdjustRate * dt
	}
	if in.IsActive(input.ActionEyesTogether) {
		s.Frame.Interocular -= s.EyeAdjustRate * dt
	}

	for _, r := range s.Opaque {
		r.UpdateMatrix()
	}
	for _, r := range s.Additive {
		r.UpdateMatrix()
	}
}
