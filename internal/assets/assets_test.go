package assets

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// A single textured triangle with positions, UVs and normals.
const triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

// TestMeshFromOBJ verifies the interleaved layout: position, normal, UV, at
// eight floats per vertex.
func TestMeshFromOBJ(t *testing.T) {
	mesh, err := MeshFromOBJ("triangle.obj", []byte(triangleOBJ))
	if err != nil {
		t.Fatalf("MeshFromOBJ: %v", err)
	}

	if mesh.VertexCount() != 3 {
		t.Fatalf("vertex count = %d, want 3", mesh.VertexCount())
	}
	if len(mesh.Vertices) != 3*VertexStride {
		t.Fatalf("vertex floats = %d, want %d", len(mesh.Vertices), 3*VertexStride)
	}
	if len(mesh.Indices) != 3 {
		t.Fatalf("index count = %d, want 3", len(mesh.Indices))
	}

	// Second vertex: position (1,0,0), normal (0,0,1), UV (1,0).
	v := mesh.Vertices[VertexStride : 2*VertexStride]
	want := []float32{1, 0, 0, 0, 0, 1, 1, 0}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("vertex 1 float %d = %v, want %v (vertex = %v)", i, v[i], want[i], v)
			break
		}
	}
}

// TestMeshFromOBJNoNormals verifies missing normals and UVs are zero-filled
// so the stride stays fixed.
func TestMeshFromOBJNoNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := MeshFromOBJ("bare.obj", []byte(src))
	if err != nil {
		t.Fatalf("MeshFromOBJ: %v", err)
	}

	if mesh.VertexCount() != 3 {
		t.Fatalf("vertex count = %d, want 3", mesh.VertexCount())
	}
	for i := 0; i < mesh.VertexCount(); i++ {
		base := i * VertexStride
		for j := 3; j < VertexStride; j++ {
			if mesh.Vertices[base+j] != 0 {
				t.Errorf("vertex %d float %d = %v, want zero fill", i, j, mesh.Vertices[base+j])
			}
		}
	}
}

// TestMeshFromOBJQuad verifies quad faces are triangulated by the parser.
func TestMeshFromOBJQuad(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	mesh, err := MeshFromOBJ("quad.obj", []byte(src))
	if err != nil {
		t.Fatalf("MeshFromOBJ: %v", err)
	}
	if len(mesh.Indices) != 6 {
		t.Errorf("quad produced %d indices, want 6 (two triangles)", len(mesh.Indices))
	}
}

// TestLoadMeshMissing verifies a missing file is reported as an
// AssetLoadError carrying the path.
func TestLoadMeshMissing(t *testing.T) {
	_, err := LoadMesh("does-not-exist.obj")
	if err == nil {
		t.Fatal("missing mesh file did not return an error")
	}

	var le *AssetLoadError
	if !errors.As(err, &le) {
		t.Fatalf("error type = %T, want *AssetLoadError", err)
	}
	if le.Path != "does-not-exist.obj" {
		t.Errorf("error path = %q, want the requested file", le.Path)
	}
}

// TestLoadImageMissing verifies texture load failures use the same error
// type as mesh failures.
func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage("does-not-exist.png", 2048)
	var le *AssetLoadError
	if !errors.As(err, &le) {
		t.Fatalf("error type = %T, want *AssetLoadError", err)
	}
}

// TestNormalizeRGBASubImage verifies an image whose bounds do not start at
// the origin keeps its pixel content. A sub-image of an 8x8 canvas with one
// marked pixel must map that pixel to the same relative position.
func TestNormalizeRGBASubImage(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	base.Set(3, 4, color.RGBA{R: 255, A: 255})

	sub := base.SubImage(image.Rect(2, 2, 6, 6))
	if sub.Bounds().Min == (image.Point{}) {
		t.Fatal("sub-image unexpectedly zero-origin; test setup broken")
	}

	got := normalizeRGBA(sub, 0)
	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("normalized bounds = %v, want (0,0)-(4,4)", got.Bounds())
	}
	if c := got.RGBAAt(1, 2); c.R != 255 {
		t.Errorf("marked pixel not at (1,2) after normalization: got %v", c)
	}
	if c := got.RGBAAt(0, 0); c.R != 0 {
		t.Errorf("unexpected content at origin: %v", c)
	}
}

// TestNormalizeRGBADownscale verifies oversized images are scaled to fit
// maxSize with the aspect ratio preserved.
func TestNormalizeRGBADownscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))

	got := normalizeRGBA(src, 4)
	if got.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Errorf("downscaled bounds = %v, want (0,0)-(4,2)", got.Bounds())
	}

	// Already within the limit: untouched dimensions.
	got = normalizeRGBA(src, 8)
	if got.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("in-limit bounds = %v, want (0,0)-(8,4)", got.Bounds())
	}
}
