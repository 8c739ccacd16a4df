package main

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Phishfood/SterioscopicAnaglyph/internal/assets"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/config"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/graphics"
	"github.com/Phishfood/SterioscopicAnaglyph/internal/scene"
)

func shaderDir(settings config.Settings) string {
	return filepath.Join(settings.AssetsDir, "shaders")
}

// loadRenderable loads a mesh and texture pair into a renderable. Any
// missing or corrupt file aborts scene setup.
func loadRenderable(settings config.Settings, name, meshFile, textureFile string) (*scene.Renderable, error) {
	data, err := assets.LoadMesh(filepath.Join(settings.AssetsDir, "models", meshFile))
	if err != nil {
		return nil, err
	}
	mesh, err := graphics.NewMesh(data)
	if err != nil {
		return nil, err
	}
	tex, err := graphics.GetTexture(filepath.Join(settings.AssetsDir, "textures", textureFile), settings.MaxTextureSize)
	if err != nil {
		mesh.Dispose()
		return nil, err
	}
	return &scene.Renderable{Name: name, Mesh: mesh, Texture: tex, Transform: scene.Transform{Scale: 1}}, nil
}

// releaseMeshes disposes every mesh already uploaded for the scene. Textures
// stay in the shared cache and are released at shutdown.
func releaseMeshes(s *scene.Scene) {
	for _, r := range s.Opaque {
		r.Mesh.Dispose()
	}
	for _, r := range s.Additive {
		r.Mesh.Dispose()
	}
}

// buildScene constructs the fixed scene: four lit models, two additively
// blended light models, two point lights (one orbiting the cube), and the
// camera. A failed load releases the meshes of every renderable loaded
// before it.
func buildScene(settings config.Settings) (_ *scene.Scene, err error) {
	camera := graphics.NewCamera(settings.WindowWidth, settings.WindowHeight,
		settings.FOV, settings.NearPlane, settings.FarPlane)
	camera.Position = mgl32.Vec3{-15, 35, -70}
	camera.Rotation = mgl32.Vec3{mgl32.DegToRad(10), mgl32.DegToRad(18), 0}

	s := &scene.Scene{
		Camera:        camera,
		Background:    mgl32.Vec3{0.2, 0.2, 0.3},
		Ambient:       mgl32.Vec3{0.4, 0.4, 0.5},
		SpecularPower: 256,
		OrbitRadius:   settings.OrbitRadius,
		OrbitSpeed:    settings.OrbitSpeed,
		EyeAdjustRate: settings.InterocularRate,
	}
	s.Frame.Interocular = settings.Interocular
	s.Lights[0].Colour = mgl32.Vec3{0.8, 0.8, 1.0}.Mul(8)
	s.Lights[1].Colour = mgl32.Vec3{1.0, 0.8, 0.2}.Mul(30)
	s.Lights[1].Position = mgl32.Vec3{-20, 30, 50}

	defer func() {
		if err != nil {
			releaseMeshes(s)
		}
	}()

	cube, err := loadRenderable(settings, "cube", "cube.obj", "stone.png")
	if err != nil {
		return nil, err
	}
	cube.Transform.Position = mgl32.Vec3{0, 15, 0}
	s.AddOpaque(cube)
	s.SetControlled(cube)

	crate, err := loadRenderable(settings, "crate", "crate.obj", "cargo.png")
	if err != nil {
		return nil, err
	}
	crate.Transform.Position = mgl32.Vec3{-10, 0, 90}
	crate.Transform.Rotation = mgl32.Vec3{0, mgl32.DegToRad(40), 0}
	crate.Transform.Scale = 6
	s.AddOpaque(crate)

	ground, err := loadRenderable(settings, "ground", "hills.obj", "tiles.png")
	if err != nil {
		return nil, err
	}
	s.AddOpaque(ground)

	stars, err := loadRenderable(settings, "stars", "stars.obj", "stars.png")
	if err != nil {
		return nil, err
	}
	stars.Transform.Scale = 10000
	s.AddOpaque(stars)

	// Glow models are additive, so they always draw after the opaque bucket
	glow1, err := loadRenderable(settings, "light1", "light.obj", "flare.png")
	if err != nil {
		return nil, err
	}
	glow1.Transform.Position = mgl32.Vec3{30, 10, 0}
	glow1.Transform.Scale = 4
	glow1.Tint = s.Lights[0].Colour
	s.AddAdditive(glow1)

	glow2, err := loadRenderable(settings, "light2", "light.obj", "flare.png")
	if err != nil {
		return nil, err
	}
	glow2.Transform.Position = s.Lights[1].Position
	glow2.Transform.Scale = 8
	glow2.Tint = s.Lights[1].Colour
	s.AddAdditive(glow2)

	s.SetOrbit(cube, glow1)
	s.Lights[0].Position = glow1.Transform.Position

	return s, nil
}
