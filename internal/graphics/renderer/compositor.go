package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
)

// Compositor combines the two eye textures into the presentation target with
// one full-screen pass. The channel selection (red from the left eye,
// green/blue from the right) lives entirely in the technique, so a different
// stereo encoding only needs a different technique at construction.
type Compositor struct {
	tech *graphics.Technique

	// Core profile requires a bound VAO even for attribute-less draws; the
	// quad vertices are generated in the vertex shader from gl_VertexID.
	vao uint32
}

// NewCompositor creates the full-screen pass around the given technique.
func NewCompositor(tech *graphics.Technique) (*Compositor, error) {
	c := &Compositor{tech: tech}
	gl.GenVertexArrays(1, &c.vao)
	if c.vao == 0 {
		return nil, &graphics.DeviceResourceError{Resource: "compositor vao", Err: fmt.Errorf("vertex array allocation failed")}
	}
	return c, nil
}

// Composite draws the combined anaglyph image into the default framebuffer.
// Both eye targets must be fully written before this is called; the frame
// orchestrator guarantees that ordering.
func (c *Compositor) Composite(left, right *graphics.RenderTarget, width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)

	// Full-screen pass ignores depth entirely
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	c.tech.Use()
	c.tech.SetInt("LeftView", 0)
	c.tech.SetInt("RightView", 1)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, left.Texture())
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, right.Texture())

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Enable(gl.DEPTH_TEST)
}

// Dispose releases the VAO.
func (c *Compositor) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}
