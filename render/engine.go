package render

import (
	"fmt"

	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
	"github.com/achilleasa/vega/world"
)

// Engine selects one of the fixed set of rendering algorithms. The set is
// closed at compile time, so dispatch is a plain switch.
type Engine uint8

const (
	EngineFull Engine = iota
	EngineAmbient
	EngineDiffuse
	EngineDistance
	EngineNormal
	EngineStencil
	EngineXray
	EngineOcclusion
)

var engineNames = map[string]Engine{
	"full":      EngineFull,
	"ambient":   EngineAmbient,
	"diffuse":   EngineDiffuse,
	"distance":  EngineDistance,
	"normal":    EngineNormal,
	"stencil":   EngineStencil,
	"xray":      EngineXray,
	"occlusion": EngineOcclusion,
}

// Look up an engine by its CLI name.
func EngineForName(name string) (Engine, error) {
	engine, exists := engineNames[name]
	if !exists {
		return 0, fmt.Errorf("unknown render engine %q", name)
	}
	return engine, nil
}

func (e Engine) String() string {
	for name, engine := range engineNames {
		if engine == e {
			return name
		}
	}
	return fmt.Sprintf("engine(%d)", uint8(e))
}

// Trace a single ray through the scene with this engine. The sun position is
// taken from the scene's first light; engines that need no sun ignore it.
func (e Engine) Trace(settings *Settings, scene *world.Scene, ray geometry.Ray) types.LinRGBA {
	sun, _ := scene.Sun()
	sunPosition := sun.Position()

	switch e {
	case EngineAmbient:
		return Ambient(settings, scene, ray)
	case EngineDiffuse:
		return Diffuse(settings, scene, ray, sunPosition)
	case EngineDistance:
		return Distance(settings, scene, ray)
	case EngineNormal:
		return Normal(settings, scene, ray)
	case EngineStencil:
		return Stencil(settings, scene, ray)
	case EngineXray:
		return Xray(settings, scene, ray)
	case EngineOcclusion:
		return Occlusion(settings, scene, ray, sunPosition)
	default:
		return Full(settings, scene, ray, 0, 1.0, 1.0, sunPosition)
	}
}
