package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/assets"
)

func deleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

// glError converts the thread's GL error flag into a Go error.
func glError() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return fmt.Errorf("allocation failed")
	}
	return fmt.Errorf("gl error 0x%04x", code)
}

// LoadTexture loads a 2D texture from a file. Oversized images are
// downscaled by the asset loader before upload.
func LoadTexture(path string, maxSize int) (uint32, int, int, error) {
	rgba, err := assets.LoadImage(path, maxSize)
	if err != nil {
		return 0, 0, 0, err
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	if texture == 0 {
		return 0, 0, 0, &DeviceResourceError{Resource: "texture " + path, Err: glError()}
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, rgba.Rect.Size().X, rgba.Rect.Size().Y, nil
}
