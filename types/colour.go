package types

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LinRGBA is a linear-space RGBA colour. Engine contributions are premultiplied
// by their transport weight before being accumulated with Add.
type LinRGBA struct {
	R, G, B, A float64
}

// Add another colour contribution.
func (c LinRGBA) Add(c2 LinRGBA) LinRGBA {
	return LinRGBA{c.R + c2.R, c.G + c2.G, c.B + c2.B, c.A + c2.A}
}

// Scale all components by a weight.
func (c LinRGBA) Scale(s float64) LinRGBA {
	return LinRGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp linearly interpolates towards another colour; t must be in [0, 1].
func (c LinRGBA) Lerp(c2 LinRGBA, t float64) LinRGBA {
	return LinRGBA{
		c.R + (c2.R-c.R)*t,
		c.G + (c2.G-c.G)*t,
		c.B + (c2.B-c.B)*t,
		c.A + (c2.A-c.A)*t,
	}
}

// RGBA8 converts the linear colour to an 8-bit sRGB colour suitable for
// writing into an image.RGBA frame.
func (c LinRGBA) RGBA8() color.RGBA {
	srgb := colorful.LinearRgb(clamp01(c.R), clamp01(c.G), clamp01(c.B)).Clamped()
	r, g, b := srgb.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(clamp01(c.A)*255.0 + 0.5)}
}

// RGBA32 unpacks a 0xRRGGBBAA colour into linear space.
func RGBA32(packed uint32) LinRGBA {
	srgb := colorful.Color{
		R: float64(packed>>24&0xff) / 255.0,
		G: float64(packed>>16&0xff) / 255.0,
		B: float64(packed>>8&0xff) / 255.0,
	}
	r, g, b := srgb.LinearRgb()
	return LinRGBA{R: r, G: g, B: b, A: float64(packed&0xff) / 255.0}
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
