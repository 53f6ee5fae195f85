package render

import (
	"math"

	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
	"github.com/achilleasa/vega/world"
)

// Build a spectrum from a fixed colour list. Only for the hardcoded ramps
// below, where a construction failure is a programmer error.
func mustSpectrum(colours ...types.LinRGBA) *asset.Spectrum {
	spectrum, err := asset.NewSpectrum(colours)
	if err != nil {
		panic(err)
	}
	return spectrum
}

var xrayRamp = mustSpectrum(
	types.LinRGBA{B: 1.0, A: 1.0},
	types.LinRGBA{R: 1.0, A: 1.0},
)

// Ambient renders the surface spectrum at its midpoint, ignoring lighting.
func Ambient(_ *Settings, scene *world.Scene, ray geometry.Ray) types.LinRGBA {
	contact, ok := scene.RayIntersectContact(&ray)
	if !ok {
		return types.LinRGBA{}
	}
	return contact.Material.Spectrum().Sample(0.5)
}

// Diffuse renders the surface spectrum lit by the sun, casting a single
// shadow ray faded over the configured shadow distance.
func Diffuse(settings *Settings, scene *world.Scene, ray geometry.Ray, sunPosition types.Vec3) types.LinRGBA {
	contact, ok := scene.RayIntersectContact(&ray)
	if !ok {
		return types.LinRGBA{}
	}

	contactPosition := ray.Origin().Add(ray.Direction().Mul(contact.Distance))
	sunDirection := sunPosition.Sub(contactPosition).Normalize()
	lightness := math.Max(0.0, contact.Side*contact.SmoothNormal.Dot(sunDirection))

	shadowCastPosition := contactPosition.Add(
		contact.Normal.Mul(settings.SmoothingLength * contact.Side))
	shadowRay := geometry.NewRay(shadowCastPosition, sunDirection)

	occlusion := 0.0
	if distance, hit := scene.RayIntersectDistance(&shadowRay); hit {
		occlusion = clamp(1.0-distance/settings.ShadowDistance, 0.0, 1.0)
	}

	return contact.Material.Spectrum().Sample(lightness * (1.0 - occlusion))
}

// Distance renders the greyscale distance travelled by the ray, normalized
// by the configured distance scale.
func Distance(settings *Settings, scene *world.Scene, ray geometry.Ray) types.LinRGBA {
	x := 0.0
	if distance, ok := scene.RayIntersectDistance(&ray); ok {
		x = clamp(distance/settings.DistanceScale, 0.0, 1.0)
	}
	return types.LinRGBA{R: x, G: x, B: x, A: 1.0}
}

// Normal renders the absolute components of the flat surface normal as RGB.
func Normal(_ *Settings, scene *world.Scene, ray geometry.Ray) types.LinRGBA {
	colour := types.LinRGBA{A: 1.0}
	if contact, ok := scene.RayIntersectContact(&ray); ok {
		colour.R = math.Abs(contact.Normal[0])
		colour.G = math.Abs(contact.Normal[1])
		colour.B = math.Abs(contact.Normal[2])
	}
	return colour
}

// Stencil renders white where the ray hits any geometry.
func Stencil(_ *Settings, scene *world.Scene, ray geometry.Ray) types.LinRGBA {
	if scene.RayIntersect(&ray) {
		return types.LinRGBA{R: 1.0, G: 1.0, B: 1.0, A: 1.0}
	}
	return types.LinRGBA{}
}

// Xray colours by the number of surfaces the ray passes through, on a
// blue-to-red ramp.
func Xray(settings *Settings, scene *world.Scene, ray geometry.Ray) types.LinRGBA {
	intersections := 0
	for {
		contact, ok := scene.RayIntersectContact(&ray)
		if !ok {
			break
		}
		ray.Travel(contact.Distance + settings.SmoothingLength)
		intersections++
	}

	if intersections == 0 {
		return types.LinRGBA{}
	}
	return xrayRamp.Sample(clamp(float64(intersections)/10.0, 0.0, 1.0))
}

// Occlusion renders ambient occlusion by sampling shadow transmission over a
// golden-ratio hemisphere around the surface normal, blended with direct sun
// lighting.
func Occlusion(settings *Settings, scene *world.Scene, ray geometry.Ray, sunPosition types.Vec3) types.LinRGBA {
	contact, ok := scene.RayIntersectContact(&ray)
	if !ok {
		return types.LinRGBA{R: 1.0, G: 1.0, B: 1.0}
	}

	contactPosition := ray.Origin().Add(ray.Direction().Mul(contact.Distance))

	ambient := 1.0

	sunDirection := sunPosition.Sub(contactPosition).Normalize()
	diffuse := math.Max(0.0, contact.Side*contact.SmoothNormal.Dot(sunDirection))

	shadowCastPosition := contactPosition.Add(
		contact.Normal.Mul(settings.SmoothingLength * contact.Side))
	shadowRay := geometry.NewRay(shadowCastPosition, sunDirection)
	spectral := shadowTransmission(settings, scene, &shadowRay)

	lightLevel := clamp(ambient*0.1+diffuse*0.2+spectral*0.7, 0.0, 1.0)
	shadowLevel := localOcclusion(settings, scene, shadowCastPosition, contact.Normal.Mul(contact.Side).Normalize())

	illuminated := mustSpectrum(
		types.LinRGBA{A: 1.0},
		contact.Material.Spectrum().Sample(lightLevel),
	)
	return illuminated.Sample(shadowLevel)
}

// Average the shadow transmission of rays cast over a hemisphere around the
// surface normal. Sample directions follow the deterministic golden-ratio
// spiral, so repeated renders stay bit-identical.
func localOcclusion(settings *Settings, scene *world.Scene, position, surfaceNormal types.Vec3) float64 {
	const samples = 101

	occlusion := 0.0
	for n := 0; n < samples; n++ {
		phi, theta := hemispherePoint(n, samples)
		sampleRay := geometry.NewRay(position, surfaceNormal)
		sampleRay.Rotate(phi, theta)
		occlusion += shadowTransmission(settings, scene, &sampleRay)
	}

	return occlusion / float64(samples)
}

const goldenRatio = 1.618033988749

// Sample points on a sphere's surface using the golden ratio.
func spherePoint(n, max int) (float64, float64) {
	d := float64(n) + float64(1-max)*0.5
	phi := math.Asin(2.0*d/float64(max)) + math.Pi/2.0
	theta := (2.0 * math.Pi / goldenRatio) * math.Mod(d, goldenRatio)
	return phi, theta
}

// Sample points on a hemisphere's surface using the golden ratio.
func hemispherePoint(n, max int) (float64, float64) {
	return spherePoint(n, max*2)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
