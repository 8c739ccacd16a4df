package renderer

import (
	"github.com/Phishfood/SterioscopicAnaglyph/internal/scene"
)

// RenderContext provides shared per-frame state to the draw pass and the
// compositor. It is passed explicitly; there is no package-level render
// state.
type RenderContext struct {
	Scene *scene.Scene
	DT    float64
}
