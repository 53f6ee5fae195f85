package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/render"
	"github.com/achilleasa/vega/types"
	"github.com/achilleasa/vega/world"
)

// World bundles everything a render run needs. The resource collection must
// outlive the scene, so it travels with it.
type World struct {
	Resources *asset.Resources
	Scene     *world.Scene
	Camera    *render.Camera
	Settings  *render.Settings
}

// Build materializes the validated parameters: meshes are loaded from disk,
// spectra and materials constructed, entities placed and the scene BVH built.
func (p *Parameters) Build() (*World, error) {
	settings := p.BuildSettings()

	resources, err := p.BuildResources(settings)
	if err != nil {
		return nil, err
	}

	scene, err := p.BuildScene(resources, settings)
	if err != nil {
		return nil, err
	}

	return &World{
		Resources: resources,
		Scene:     scene,
		Camera:    p.BuildCamera(),
		Settings:  settings,
	}, nil
}

// BuildSettings converts the settings block into engine settings.
func (p *Parameters) BuildSettings() *render.Settings {
	s := p.Settings
	return &render.Settings{
		SmoothingLength:     s.SmoothingLength,
		MinWeight:           s.MinWeight,
		MaxLoops:            s.MaxLoops,
		MaxRecursions:       s.MaxRecursions,
		MeshBvhMaxChildren:  s.MeshBvhMaxChildren,
		MeshBvhMaxDepth:     s.MeshBvhMaxDepth,
		SceneBvhMaxChildren: s.SceneBvhMaxChildren,
		SceneBvhMaxDepth:    s.SceneBvhMaxDepth,
		ShadowDistance:      s.ShadowDistance,
		DistanceScale:       s.DistanceScale,
	}
}

// BuildResources constructs the named spectra and materials and loads the
// named meshes from disk.
func (p *Parameters) BuildResources(settings *render.Settings) (*asset.Resources, error) {
	resources := asset.NewResources()

	for id, packed := range p.Spectra {
		colours := make([]types.LinRGBA, len(packed))
		for i, value := range packed {
			colours[i] = types.RGBA32(value)
		}
		spectrum, err := asset.NewSpectrum(colours)
		if err != nil {
			return nil, fmt.Errorf("spectrum %q: %v", id, err)
		}
		resources.AddSpectrum(id, spectrum)
	}

	for id, builder := range p.Materials {
		spectrum, err := resources.Spectrum(builder.Spectrum)
		if err != nil {
			return nil, fmt.Errorf("material %q: %v", id, err)
		}

		switch builder.Type {
		case "diffuse":
			resources.AddMaterial(id, asset.NewDiffuse(spectrum))
		case "reflective":
			resources.AddMaterial(id, asset.NewReflective(spectrum, builder.Absorption))
		case "refractive":
			resources.AddMaterial(id, asset.NewRefractive(spectrum, builder.Absorption, builder.RefractiveIndex))
		}
	}

	for id, path := range p.Meshes {
		mesh, err := asset.LoadMesh(path, settings.MeshBvhMaxChildren, settings.MeshBvhMaxDepth)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %v", id, err)
		}
		resources.AddMesh(id, mesh)
	}

	return resources, nil
}

// BuildScene places the entities and lights described by the parameters.
func (p *Parameters) BuildScene(resources *asset.Resources, settings *render.Settings) (*world.Scene, error) {
	entities := make([]*world.Entity, len(p.Entities))
	for index, builder := range p.Entities {
		mesh, err := resources.Mesh(builder.Mesh)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %v", index, err)
		}
		material, err := resources.Material(builder.Material)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %v", index, err)
		}
		entities[index] = world.NewEntity(mesh, material, builder.transformation())
	}

	lights := []world.Light{world.NewLight(
		vec3(p.Sun.Position),
		types.RGBA32(p.Sun.Colour),
		p.Sun.Intensity,
	)}

	return world.NewScene(lights, entities,
		settings.SceneBvhMaxChildren, settings.SceneBvhMaxDepth), nil
}

// BuildCamera constructs the pinhole camera, converting the field of view
// from degrees to radians.
func (p *Parameters) BuildCamera() *render.Camera {
	c := p.Camera
	return render.NewCamera(
		vec3(c.Position),
		vec3(c.LookAt),
		mgl64.DegToRad(c.FieldOfView),
		c.Resolution,
		c.SuperSamplesPerAxis,
	)
}

// Convert the optional placement fields to a similarity transformation.
func (b EntityBuilder) transformation() types.Similarity {
	translation := types.Vec3{}
	if b.Translation != nil {
		translation = vec3(*b.Translation)
	}

	rotation := mgl64.QuatIdent()
	if b.Rotation != nil {
		rotation = mgl64.AnglesToQuat(
			mgl64.DegToRad(b.Rotation[0]),
			mgl64.DegToRad(b.Rotation[1]),
			mgl64.DegToRad(b.Rotation[2]),
			mgl64.XYZ,
		)
	}

	scale := 1.0
	if b.Scale != nil {
		scale = *b.Scale
	}

	return types.NewSimilarity(translation, rotation, scale)
}

func vec3(v [3]float64) types.Vec3 {
	return types.Vec3{v[0], v[1], v[2]}
}
