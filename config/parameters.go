// Package config loads render parameters from YAML files and builds the
// in-memory resources, scene and camera they describe.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters is the top-level document of a render parameters file. Spectra,
// materials and meshes are named so entities can share them by reference.
type Parameters struct {
	Settings  SettingsBuilder            `yaml:"settings"`
	Spectra   map[string][]uint32        `yaml:"spectra"`
	Materials map[string]MaterialBuilder `yaml:"materials"`
	Meshes    map[string]string          `yaml:"meshes"`
	Entities  []EntityBuilder            `yaml:"entities"`
	Sun       LightBuilder               `yaml:"sun"`
	Camera    CameraBuilder              `yaml:"camera"`
}

// SettingsBuilder mirrors render.Settings with yaml tags.
type SettingsBuilder struct {
	SmoothingLength     float64 `yaml:"smoothing_length"`
	MinWeight           float64 `yaml:"min_weight"`
	MaxLoops            int     `yaml:"max_loops"`
	MaxRecursions       int     `yaml:"max_recursions"`
	MeshBvhMaxChildren  int     `yaml:"mesh_bvh_max_children"`
	MeshBvhMaxDepth     int     `yaml:"mesh_bvh_max_depth"`
	SceneBvhMaxChildren int     `yaml:"scene_bvh_max_children"`
	SceneBvhMaxDepth    int     `yaml:"scene_bvh_max_depth"`
	ShadowDistance      float64 `yaml:"shadow_distance"`
	DistanceScale       float64 `yaml:"distance_scale"`
}

// MaterialBuilder describes a surface material. Type selects the variant:
// "diffuse", "reflective" or "refractive". Absorption applies to reflective
// and refractive materials; the refractive index only to refractive ones.
type MaterialBuilder struct {
	Type            string  `yaml:"type"`
	Spectrum        string  `yaml:"spectrum"`
	Absorption      float64 `yaml:"absorption"`
	RefractiveIndex float64 `yaml:"refractive_index"`
}

// EntityBuilder places a named mesh with a named material. Translation is in
// metres, rotation in degrees around the x, y and z axes (applied in that
// order) and scale a uniform factor. Omitted placement fields default to the
// identity.
type EntityBuilder struct {
	Mesh        string      `yaml:"mesh"`
	Material    string      `yaml:"material"`
	Translation *[3]float64 `yaml:"translation"`
	Rotation    *[3]float64 `yaml:"rotation"`
	Scale       *float64    `yaml:"scale"`
}

// LightBuilder describes a point light. Colour is a packed 0xRRGGBBAA value.
type LightBuilder struct {
	Position  [3]float64 `yaml:"position"`
	Colour    uint32     `yaml:"colour"`
	Intensity float64    `yaml:"intensity"`
}

// CameraBuilder describes the pinhole camera. FieldOfView is the horizontal
// angle in degrees and resolution is [height, width] in pixels.
type CameraBuilder struct {
	Position            [3]float64 `yaml:"position"`
	LookAt              [3]float64 `yaml:"look_at"`
	FieldOfView         float64    `yaml:"field_of_view"`
	Resolution          [2]int     `yaml:"resolution"`
	SuperSamplesPerAxis int        `yaml:"super_samples_per_axis"`
}

// Default returns the parameters applied before a document is unmarshalled
// over them, so files only need to state what they change.
func Default() Parameters {
	return Parameters{
		Settings: SettingsBuilder{
			SmoothingLength:     1e-6,
			MinWeight:           0.01,
			MaxLoops:            8,
			MaxRecursions:       4,
			MeshBvhMaxChildren:  4,
			MeshBvhMaxDepth:     32,
			SceneBvhMaxChildren: 2,
			SceneBvhMaxDepth:    16,
			ShadowDistance:      10.0,
			DistanceScale:       10.0,
		},
		Sun: LightBuilder{
			Position:  [3]float64{0.0, 0.0, 10.0},
			Colour:    0xffffffff,
			Intensity: 1.0,
		},
		Camera: CameraBuilder{
			Position:            [3]float64{0.0, -5.0, 0.0},
			LookAt:              [3]float64{0.0, 0.0, 0.0},
			FieldOfView:         90.0,
			Resolution:          [2]int{512, 512},
			SuperSamplesPerAxis: 1,
		},
	}
}

// Load parses a parameters file and validates it.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}

	params := Default()
	if err = yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("config: parse %s: %v", path, err)
	}

	if err = params.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %v", path, err)
	}
	return &params, nil
}

// Validate checks every range constraint the render engines rely on. The
// engines trust validated parameters and do not re-check them.
func (p *Parameters) Validate() error {
	s := p.Settings
	switch {
	case !(s.SmoothingLength > 0.0) || math.IsInf(s.SmoothingLength, 1):
		return fmt.Errorf("settings: smoothing_length must be positive and finite; got %g", s.SmoothingLength)
	case s.MinWeight < 0.0 || s.MinWeight > 1.0:
		return fmt.Errorf("settings: min_weight must be in [0, 1]; got %g", s.MinWeight)
	case s.MaxLoops < 1:
		return fmt.Errorf("settings: max_loops must be at least 1; got %d", s.MaxLoops)
	case s.MaxRecursions < 0:
		return fmt.Errorf("settings: max_recursions must not be negative; got %d", s.MaxRecursions)
	case s.MeshBvhMaxChildren < 2:
		return fmt.Errorf("settings: mesh_bvh_max_children must be at least 2; got %d", s.MeshBvhMaxChildren)
	case s.MeshBvhMaxDepth < 1:
		return fmt.Errorf("settings: mesh_bvh_max_depth must be at least 1; got %d", s.MeshBvhMaxDepth)
	case s.SceneBvhMaxChildren < 2:
		return fmt.Errorf("settings: scene_bvh_max_children must be at least 2; got %d", s.SceneBvhMaxChildren)
	case s.SceneBvhMaxDepth < 1:
		return fmt.Errorf("settings: scene_bvh_max_depth must be at least 1; got %d", s.SceneBvhMaxDepth)
	case !(s.ShadowDistance > 0.0):
		return fmt.Errorf("settings: shadow_distance must be positive; got %g", s.ShadowDistance)
	case !(s.DistanceScale > 0.0):
		return fmt.Errorf("settings: distance_scale must be positive; got %g", s.DistanceScale)
	}

	for id, colours := range p.Spectra {
		if len(colours) == 0 {
			return fmt.Errorf("spectrum %q: at least one colour is required", id)
		}
	}

	for id, material := range p.Materials {
		switch material.Type {
		case "diffuse":
		case "reflective":
			if material.Absorption < 0.0 || material.Absorption > 1.0 {
				return fmt.Errorf("material %q: absorption must be in [0, 1]; got %g", id, material.Absorption)
			}
		case "refractive":
			if material.Absorption < 0.0 || material.Absorption > 1.0 {
				return fmt.Errorf("material %q: absorption must be in [0, 1]; got %g", id, material.Absorption)
			}
			if material.RefractiveIndex < 1.0 {
				return fmt.Errorf("material %q: refractive_index must be at least 1; got %g", id, material.RefractiveIndex)
			}
		default:
			return fmt.Errorf("material %q: unknown type %q", id, material.Type)
		}
		if _, exists := p.Spectra[material.Spectrum]; !exists {
			return fmt.Errorf("material %q: unknown spectrum %q", id, material.Spectrum)
		}
	}

	if len(p.Entities) == 0 {
		return fmt.Errorf("at least one entity is required")
	}
	for index, entity := range p.Entities {
		if _, exists := p.Meshes[entity.Mesh]; !exists {
			return fmt.Errorf("entity %d: unknown mesh %q", index, entity.Mesh)
		}
		if _, exists := p.Materials[entity.Material]; !exists {
			return fmt.Errorf("entity %d: unknown material %q", index, entity.Material)
		}
		if entity.Scale != nil && !(*entity.Scale > 0.0) {
			return fmt.Errorf("entity %d: scale must be positive; got %g", index, *entity.Scale)
		}
	}

	if !(p.Sun.Intensity > 0.0) {
		return fmt.Errorf("sun: intensity must be positive; got %g", p.Sun.Intensity)
	}

	c := p.Camera
	switch {
	case !(c.FieldOfView > 0.0) || c.FieldOfView >= 180.0:
		return fmt.Errorf("camera: field_of_view must be in (0, 180) degrees; got %g", c.FieldOfView)
	case c.Resolution[0] < 1 || c.Resolution[1] < 1:
		return fmt.Errorf("camera: resolution must be at least 1x1; got %dx%d", c.Resolution[1], c.Resolution[0])
	case c.SuperSamplesPerAxis < 1:
		return fmt.Errorf("camera: super_samples_per_axis must be at least 1; got %d", c.SuperSamplesPerAxis)
	case c.Position == c.LookAt:
		return fmt.Errorf("camera: position and look_at must differ")
	}

	return nil
}
