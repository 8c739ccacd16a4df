// Package assets loads mesh geometry and texture images from disk, keyed by
// file name. It performs no GL work; uploading is left to the graphics
// package so the loaders stay testable.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/udhos/gwob"
	xdraw "golang.org/x/image/draw"
)

// AssetLoadError reports a missing or corrupt mesh or texture file.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// VertexStride is the number of floats per vertex in MeshData.Vertices:
// position (3), normal (3), texture coordinate (2).
const VertexStride = 8

// MeshData is parsed geometry in the interleaved layout the mesh uploader
// expects.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *MeshData) VertexCount() int { return len(m.Vertices) / VertexStride }

// LoadMesh parses a Wavefront OBJ file into interleaved mesh data. Missing
// normals or texture coordinates are zero-filled.
func LoadMesh(path string) (*MeshData, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return MeshFromOBJ(path, buf)
}

// MeshFromOBJ parses OBJ source from a buffer. The name is used only for
// error reporting.
func MeshFromOBJ(name string, buf []byte) (*MeshData, error) {
	opts := &gwob.ObjParserOptions{LogStats: false, Logger: func(string) {}}
	obj, err := gwob.NewObjFromBuf(name, buf, opts)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Err: err}
	}

	strideFloats := obj.StrideSize / 4
	count := len(obj.Coord) / strideFloats
	if count == 0 {
		return nil, &AssetLoadError{Path: name, Err: fmt.Errorf("no vertices")}
	}

	data := &MeshData{
		Vertices: make([]float32, 0, count*VertexStride),
		Indices:  make([]uint32, len(obj.Indices)),
	}

	posOff := obj.StrideOffsetPosition / 4
	texOff := obj.StrideOffsetTexture / 4
	normOff := obj.StrideOffsetNormal / 4

	for i := 0; i < count; i++ {
		base := i * strideFloats
		data.Vertices = append(data.Vertices,
			obj.Coord[base+posOff],
			obj.Coord[base+posOff+1],
			obj.Coord[base+posOff+2])
		if obj.NormCoordFound {
			data.Vertices = append(data.Vertices,
				obj.Coord[base+normOff],
				obj.Coord[base+normOff+1],
				obj.Coord[base+normOff+2])
		} else {
			data.Vertices = append(data.Vertices, 0, 0, 0)
		}
		if obj.TextCoordFound {
			data.Vertices = append(data.Vertices,
				obj.Coord[base+texOff],
				obj.Coord[base+texOff+1])
		} else {
			data.Vertices = append(data.Vertices, 0, 0)
		}
	}

	for i, idx := range obj.Indices {
		data.Indices[i] = uint32(idx)
	}
	return data, nil
}

// LoadImage decodes a texture image into RGBA. Images larger than maxSize on
// either axis are downscaled to fit, preserving aspect ratio.
func LoadImage(path string, maxSize int) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return normalizeRGBA(img, maxSize), nil
}

// normalizeRGBA converts an image to zero-origin RGBA, downscaling it to fit
// maxSize on both axes while preserving aspect ratio. The source may have a
// non-zero origin (a sub-image); the result never does.
func normalizeRGBA(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		scale := float64(maxSize) / float64(max(w, h))
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), xdraw.Src, nil)
		rgba = dst
	}
	return rgba
}
