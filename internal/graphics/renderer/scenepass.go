package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/scene"
)

// ScenePass draws every renderable in scene order into one bound target,
// walking the scene's explicit pass list: opaque bucket first, additive
// bucket last.
type ScenePass struct {
	lit      *graphics.Technique
	additive *graphics.Technique
}

// NewScenePass wires the pass with its two techniques.
func NewScenePass(lit, additive *graphics.Technique) *ScenePass {
	return &ScenePass{lit: lit, additive: additive}
}

// Draw renders the scene from the given viewpoint into target. The shared
// depth buffer is attached to every target, so depth is cleared here at the
// start of each eye pass.
func (p *ScenePass) Draw(target *graphics.RenderTarget, vp graphics.Viewpoint, ctx RenderContext) {
	s := ctx.Scene

	target.Bind()

	gl.ClearColor(s.Background.X(), s.Background.Y(), s.Background.Z(), 1.0)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	for _, pass := range s.PassList() {
		switch pass.Kind {
		case scene.LitTextured:
			p.drawLit(pass.Renderables, vp, s)
		case scene.AdditiveTinted:
			p.drawAdditive(pass.Renderables, vp)
		}
	}

	// restore default state for the next pass
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (p *ScenePass) drawLit(renderables []*scene.Renderable, vp graphics.Viewpoint, s *scene.Scene) {
	p.lit.Use()

	// Per-viewpoint inputs differ between the eyes
	p.lit.SetMatrix4("ViewMatrix", vp.View)
	p.lit.SetMatrix4("ProjMatrix", vp.Proj)
	p.lit.SetVector3("CameraPos", vp.Position)

	// Lighting inputs are identical for both eyes; uploading per pass is
	// idempotent
	p.lit.SetVector3("Light1Pos", s.Lights[0].Position)
	p.lit.SetVector3("Light1Colour", s.Lights[0].Colour)
	p.lit.SetVector3("Light2Pos", s.Lights[1].Position)
	p.lit.SetVector3("Light2Colour", s.Lights[1].Colour)
	p.lit.SetVector3("AmbientColour", s.Ambient)
	p.lit.SetFloat("SpecularPower", s.SpecularPower)

	p.lit.SetInt("DiffuseMap", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, r := range renderables {
		p.lit.SetMatrix4("WorldMatrix", r.WorldMatrix())
		gl.BindTexture(gl.TEXTURE_2D, r.Texture)
		r.Mesh.Draw()
	}
}

func (p *ScenePass) drawAdditive(renderables []*scene.Renderable, vp graphics.Viewpoint) {
	// Additive geometry reads depth but never writes it, so glows always
	// composite over the opaque bucket already drawn.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DepthMask(false)

	p.additive.Use()
	p.additive.SetMatrix4("ViewMatrix", vp.View)
	p.additive.SetMatrix4("ProjMatrix", vp.Proj)

	p.additive.SetInt("DiffuseMap", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, r := range renderables {
		p.additive.SetMatrix4("WorldMatrix", r.WorldMatrix())
		p.additive.SetVector3("TintColour", r.Tint)
		gl.BindTexture(gl.TEXTURE_2D, r.Texture)
		r.Mesh.Draw()
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}
