package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
)

// TechniqueKind selects the shading technique a renderable is drawn with.
type TechniqueKind int

const (
	// LitTextured is the opaque technique: two point lights, ambient,
	// specular, diffuse texture.
	LitTextured TechniqueKind = iota
	// AdditiveTinted is the emissive technique used for the light models:
	// textured, tinted, additively blended, no depth writes.
	AdditiveTinted
)

// Renderable is one drawable entity: a transform, mesh and texture handle,
// and the technique to draw it with.
type Renderable struct {
	Name      string
	Mesh      *graphics.Mesh
	Texture   uint32
	Technique TechniqueKind
	Transform Transform

	// Tint is consumed by AdditiveTinted only.
	Tint mgl32.Vec3

	world mgl32.Mat4
}

// UpdateMatrix resolves the transform into the cached world matrix. Must run
// after the transform changes, before the renderable is drawn.
func (r *Renderable) UpdateMatrix() {
	r.world = r.Transform.WorldMatrix()
}

// WorldMatrix returns the world matrix resolved by the last UpdateMatrix.
func (r *Renderable) WorldMatrix() mgl32.Mat4 {
	return r.world
}
