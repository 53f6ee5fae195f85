package world

import "github.com/achilleasa/vega/types"

// Light is a point light source. The render engines light scenes with a
// single sun; extra lights are carried for completeness but not sampled.
type Light struct {
	position  types.Vec3
	colour    types.LinRGBA
	intensity float64
}

// Create a new light.
func NewLight(position types.Vec3, colour types.LinRGBA, intensity float64) Light {
	return Light{position: position, colour: colour, intensity: intensity}
}

// Get the world-space position.
func (l Light) Position() types.Vec3 {
	return l.position
}

// Get the colour.
func (l Light) Colour() types.LinRGBA {
	return l.colour
}

// Get the intensity.
func (l Light) Intensity() float64 {
	return l.intensity
}
