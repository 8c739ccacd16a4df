package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/input"
)

// Eye selects which viewpoint to derive from the camera's base pose.
type Eye int

const (
	EyeMono Eye = iota
	EyeLeft
	EyeRight
)

// Viewpoint is a derived view for one eye: the matrices to upload and the
// world-space eye position used for specular lighting.
type Viewpoint struct {
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	Position mgl32.Vec3
}

// Camera movement speeds, world units and radians per second.
const (
	cameraMoveSpeed = 50.0
	cameraTurnSpeed = 2.0
)

// Camera holds a single base pose plus projection parameters. Per-eye state
// is never stored; left/right viewpoints are derived on demand.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // pitch (x), yaw (y); roll unused

	FOV         float32 // degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera returns a camera with the given projection parameters. Yaw zero
// faces +Z with +X as the camera's right axis.
func NewCamera(width, height int, fov, near, far float32) *Camera {
	return &Camera{
		FOV:         fov,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   near,
		FarPlane:    far,
	}
}

// orientation returns the camera's rotation matrix (yaw then pitch).
func (c *Camera) orientation() mgl32.Mat3 {
	return mgl32.Rotate3DY(c.Rotation.Y()).Mul3(mgl32.Rotate3DX(c.Rotation.X()))
}

// Forward returns the camera's world-space view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.orientation().Mul3x1(mgl32.Vec3{0, 0, 1})
}

// Right returns the camera's world-space right axis.
func (c *Camera) Right() mgl32.Vec3 {
	return c.orientation().Mul3x1(mgl32.Vec3{1, 0, 0})
}

// Up returns the camera's world-space up axis.
func (c *Camera) Up() mgl32.Vec3 {
	return c.orientation().Mul3x1(mgl32.Vec3{0, 1, 0})
}

// GetProjectionMatrix returns the perspective projection. It is identical
// for both eyes; stereo separation comes from the view matrix only.
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Derive produces the viewpoint for the requested eye. EyeMono returns the
// camera's own matrices and position; interocular is ignored. EyeLeft and
// EyeRight offset the eye position by half the interocular distance along
// the camera's local right axis, so rotating the camera reorients the
// separation axis. Orientation and projection are shared by both eyes
// (parallel-axis stereo, no toe-in).
func (c *Camera) Derive(eye Eye, interocular float32) Viewpoint {
	pos := c.Position
	switch eye {
	case EyeLeft:
		pos = pos.Sub(c.Right().Mul(interocular / 2))
	case EyeRight:
		pos = pos.Add(c.Right().Mul(interocular / 2))
	}

	return Viewpoint{
		View:     mgl32.LookAtV(pos, pos.Add(c.Forward()), c.Up()),
		Proj:     c.GetProjectionMatrix(),
		Position: pos,
	}
}

// Control applies fly-camera movement from held keys, scaled by frame time.
func (c *Camera) Control(dt float32, in *input.InputManager) {
	if in.IsActive(input.ActionCamTurnUp) {
		c.Rotation[0] -= cameraTurnSpeed * dt
	}
	if in.IsActive(input.ActionCamTurnDown) {
		c.Rotation[0] += cameraTurnSpeed * dt
	}
	if in.IsActive(input.ActionCamTurnLeft) {
		c.Rotation[1] -= cameraTurnSpeed * dt
	}
	if in.IsActive(input.ActionCamTurnRight) {
		c.Rotation[1] += cameraTurnSpeed * dt
	}

	if in.IsActive(input.ActionCamForward) {
		c.Position = c.Position.Add(c.Forward().Mul(cameraMoveSpeed * dt))
	}
	if in.IsActive(input.ActionCamBackward) {
		c.Position = c.Position.Sub(c.Forward().Mul(cameraMoveSpeed * dt))
	}
	if in.IsActive(input.ActionCamRight) {
		c.Position = c.Position.Add(c.Right().Mul(cameraMoveSpeed * dt))
	}
	if in.IsActive(input.ActionCamLeft) {
		c.Position = c.Position.Sub(c.Right().Mul(cameraMoveSpeed * dt))
	}
}

// SetViewport updates the aspect ratio for a new drawable size.
func (c *Camera) SetViewport(width, height int) {
	c.AspectRatio = float32(width) / float32(height)
}
