package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DepthBuffer is a depth renderbuffer shared by both eye targets. Sharing is
// safe because the two eye passes are strictly sequenced on one thread and
// each pass clears depth before use; parallel eye rendering would need a
// depth buffer per eye.
type DepthBuffer struct {
	rbo           uint32
	width, height int32
}

// NewDepthBuffer allocates a depth buffer at the viewport size.
func NewDepthBuffer(width, height int) (*DepthBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &DeviceResourceError{Resource: "depth buffer", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}

	d := &DepthBuffer{width: int32(width), height: int32(height)}
	gl.GenRenderbuffers(1, &d.rbo)
	gl.BindRenderbuffer(gl.RENDERBUFFER, d.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, d.width, d.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	if d.rbo == 0 || gl.GetError() != gl.NO_ERROR {
		d.Dispose()
		return nil, &DeviceResourceError{Resource: "depth buffer", Err: fmt.Errorf("renderbuffer allocation failed")}
	}
	return d, nil
}

// Resize reallocates the depth storage at new dimensions.
func (d *DepthBuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return &DeviceResourceError{Resource: "depth buffer", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, d.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	if gl.GetError() != gl.NO_ERROR {
		return &DeviceResourceError{Resource: "depth buffer", Err: fmt.Errorf("renderbuffer reallocation failed")}
	}
	d.width, d.height = int32(width), int32(height)
	return nil
}

// Dispose releases the renderbuffer.
func (d *DepthBuffer) Dispose() {
	if d.rbo != 0 {
		gl.DeleteRenderbuffers(1, &d.rbo)
		d.rbo = 0
	}
}

// RenderTarget is an offscreen colour surface that is both a draw
// destination (framebuffer) and a readable texture.
type RenderTarget struct {
	fbo           uint32
	tex           uint32
	width, height int32
}

func newRenderTarget(name string, width, height int32, depth *DepthBuffer) (*RenderTarget, error) {
	t := &RenderTarget{width: width, height: height}

	gl.GenTextures(1, &t.tex)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// No mip levels; the target is re-rendered every frame
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.tex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth.rbo)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if t.tex == 0 || t.fbo == 0 || status != gl.FRAMEBUFFER_COMPLETE {
		t.Dispose()
		return nil, &DeviceResourceError{
			Resource: name,
			Err:      fmt.Errorf("framebuffer incomplete (status 0x%04x)", status),
		}
	}
	return t, nil
}

// Bind makes the target the current draw destination and sets the viewport.
func (t *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.width, t.height)
}

// Texture returns the colour texture for sampling.
func (t *RenderTarget) Texture() uint32 { return t.tex }

// Size returns the target dimensions in pixels.
func (t *RenderTarget) Size() (int, int) { return int(t.width), int(t.height) }

// Dispose releases the framebuffer and its colour texture.
func (t *RenderTarget) Dispose() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
}

// StereoPair owns the left and right eye targets. Both targets always have
// identical dimensions and attach the same shared depth buffer.
type StereoPair struct {
	Left  *RenderTarget
	Right *RenderTarget
}

// Allocation and release go through these seams so the pair's failure
// handling can be exercised without a GL context.
var (
	allocTarget   = newRenderTarget
	releaseTarget = func(t *RenderTarget) { t.Dispose() }
)

// NewStereoPair allocates both eye targets. Allocation is both-or-neither:
// if the right target fails after the left succeeded, the left is released
// before the error is returned.
func NewStereoPair(width, height int, depth *DepthBuffer) (*StereoPair, error) {
	if width <= 0 || height <= 0 {
		return nil, &DeviceResourceError{Resource: "stereo pair", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}

	left, err := allocTarget("left eye target", int32(width), int32(height), depth)
	if err != nil {
		return nil, err
	}

	right, err := allocTarget("right eye target", int32(width), int32(height), depth)
	if err != nil {
		releaseTarget(left)
		return nil, err
	}

	return &StereoPair{Left: left, Right: right}, nil
}

// Resize destroys both targets and recreates them at the new dimensions.
// On failure the pair holds no live targets, so a stale target can never be
// read after a resize.
func (p *StereoPair) Resize(width, height int, depth *DepthBuffer) error {
	p.Dispose()

	fresh, err := NewStereoPair(width, height, depth)
	if err != nil {
		return err
	}
	p.Left, p.Right = fresh.Left, fresh.Right
	return nil
}

// Dispose releases both targets.
func (p *StereoPair) Dispose() {
	if p.Right != nil {
		releaseTarget(p.Right)
		p.Right = nil
	}
	if p.Left != nil {
		releaseTarget(p.Left)
		p.Left = nil
	}
}
