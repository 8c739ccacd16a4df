package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/input"
)

// Model movement speeds, world units and radians per second.
const (
	modelMoveSpeed = 40.0
	modelTurnSpeed = 2.0
)

// Transform is a position, Euler rotation and uniform scale. It must be
// resolved to a world matrix (Renderable.UpdateMatrix) before each draw.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // pitch (x), yaw (y), roll (z)
	Scale    float32
}

// WorldMatrix composes translate · yaw · pitch · roll · scale.
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return m.Mul4(mgl32.Scale3D(scale, scale, scale))
}

// Control applies user-driven movement from held keys, scaled by frame time.
func (t *Transform) Control(dt float32, in *input.InputManager) {
	if in.IsActive(input.ActionModelForward) {
		t.Position[2] += modelMoveSpeed * dt
	}
	if in.IsActive(input.ActionModelBackward) {
		t.Position[2] -= modelMoveSpeed * dt
	}
	if in.IsActive(input.ActionModelRight) {
		t.Position[0] += modelMoveSpeed * dt
	}
	if in.IsActive(input.ActionModelLeft) {
		t.Position[0] -= modelMoveSpeed * dt
	}
	if in.IsActive(input.ActionModelUp) {
		t.Position[1] += modelMoveSpeed * dt
	}
	if in.IsActive(input.ActionModelDown) {
		t.Position[1] -= modelMoveSpeed * dt
	}
	if in.IsActive(input.ActionModelYawLeft) {
		t.Rotation[1] -= modelTurnSpeed * dt
	}
	if in.IsActive(input.ActionModelYawRight) {
		t.Rotation[1] += modelTurnSpeed * dt
	}
}
