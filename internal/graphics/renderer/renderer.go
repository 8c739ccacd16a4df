// Package renderer implements the stereo dual-render pipeline: the scene is
// drawn twice from eye-offset viewpoints into an offscreen target pair
// sharing one depth buffer, then a full-screen pass combines both targets
// into an anaglyph image on the presentation surface.
package renderer

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
)

// Shader files and the uniforms each technique must expose. Loading fails
// fast if a technique or any named uniform is absent.
var (
	litUniforms = []string{
		"WorldMatrix", "ViewMatrix", "ProjMatrix", "CameraPos",
		"Light1Pos", "Light1Colour", "Light2Pos", "Light2Colour",
		"AmbientColour", "SpecularPower", "DiffuseMap",
	}
	additiveUniforms = []string{
		"WorldMatrix", "ViewMatrix", "ProjMatrix", "TintColour", "DiffuseMap",
	}
	anaglyphUniforms = []string{"LeftView", "RightView"}
)

// Renderer owns the GPU resources of the pipeline: the three techniques,
// the shared depth buffer, the stereo target pair, and the compositor.
type Renderer struct {
	lit      *graphics.Technique
	additive *graphics.Technique
	anaglyph *graphics.Technique

	depth   *graphics.DepthBuffer
	targets *graphics.StereoPair

	scenePass  *ScenePass
	compositor *Compositor

	width, height int
}

// New loads the shader program and allocates the offscreen targets at the
// presentation size. Every failure is fatal to startup; resources acquired
// before the failure are released in reverse order.
func New(width, height int, shaderDir string) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	r.lit, err = graphics.NewTechnique("lit-textured",
		filepath.Join(shaderDir, "lit.vert"), filepath.Join(shaderDir, "lit.frag"),
		litUniforms...)
	if err != nil {
		return nil, err
	}

	r.additive, err = graphics.NewTechnique("additive-tinted",
		filepath.Join(shaderDir, "additive.vert"), filepath.Join(shaderDir, "additive.frag"),
		additiveUniforms...)
	if err != nil {
		r.Dispose()
		return nil, err
	}

	r.anaglyph, err = graphics.NewTechnique("anaglyph-composite",
		filepath.Join(shaderDir, "anaglyph.vert"), filepath.Join(shaderDir, "anaglyph.frag"),
		anaglyphUniforms...)
	if err != nil {
		r.Dispose()
		return nil, err
	}

	r.depth, err = graphics.NewDepthBuffer(width, height)
	if err != nil {
		r.Dispose()
		return nil, err
	}

	r.targets, err = graphics.NewStereoPair(width, height, r.depth)
	if err != nil {
		r.Dispose()
		return nil, err
	}

	r.compositor, err = NewCompositor(r.anaglyph)
	if err != nil {
		r.Dispose()
		return nil, err
	}

	r.scenePass = NewScenePass(r.lit, r.additive)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	return r, nil
}

// DrawLeft renders the left-eye view into the left offscreen target.
func (r *Renderer) DrawLeft(ctx RenderContext) {
	vp := ctx.Scene.Camera.Derive(graphics.EyeLeft, ctx.Scene.Frame.Interocular)
	r.scenePass.Draw(r.targets.Left, vp, ctx)
}

// DrawRight renders the right-eye view into the right offscreen target.
func (r *Renderer) DrawRight(ctx RenderContext) {
	vp := ctx.Scene.Camera.Derive(graphics.EyeRight, ctx.Scene.Frame.Interocular)
	r.scenePass.Draw(r.targets.Right, vp, ctx)
}

// Composite combines both eye targets into the back buffer. Must only run
// once both eye passes for the frame have completed.
func (r *Renderer) Composite() {
	r.compositor.Composite(r.targets.Left, r.targets.Right, int32(r.width), int32(r.height))
}

// Resize recreates the depth buffer and both offscreen targets at the new
// presentation size.
func (r *Renderer) Resize(width, height int) error {
	if err := r.depth.Resize(width, height); err != nil {
		return err
	}
	if err := r.targets.Resize(width, height, r.depth); err != nil {
		return err
	}
	r.width, r.height = width, height
	return nil
}

// Dispose releases all GPU resources in reverse acquisition order.
func (r *Renderer) Dispose() {
	if r.compositor != nil {
		r.compositor.Dispose()
		r.compositor = nil
	}
	if r.targets != nil {
		r.targets.Dispose()
		r.targets = nil
	}
	if r.depth != nil {
		r.depth.Dispose()
		r.depth = nil
	}
	if r.anaglyph != nil {
		r.anaglyph.Dispose()
		r.anaglyph = nil
	}
	if r.additive != nil {
		r.additive.Dispose()
		r.additive = nil
	}
	if r.lit != nil {
		r.lit.Dispose()
		r.lit = nil
	}
}
