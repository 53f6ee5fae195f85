package render

import (
	"math"

	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
	"github.com/achilleasa/vega/world"
)

// Full is the complete ray-traced render engine: diffuse shading lit by a
// single sun, multiplicative shadow occlusion, iterative reflection and
// recursive Fresnel-weighted refraction.
//
// Weight is the remaining transportable energy fraction in [0, 1]; every
// surface contribution is premultiplied by it before being accumulated.
// Recursion is bounded by settings.MaxRecursions (refraction spawns at most
// two child calls per hit) and reflection chains by settings.MaxLoops. The
// routine reads only immutable state and is safe to call concurrently.
func Full(
	settings *Settings,
	scene *world.Scene,
	ray geometry.Ray,
	currentDepth int,
	currentRefractiveIndex float64,
	weight float64,
	sunPosition types.Vec3,
) types.LinRGBA {
	colour := types.LinRGBA{}

	if currentDepth > settings.MaxRecursions || weight < settings.MinWeight {
		return colour
	}

	loops := 0
	for {
		contact, ok := scene.RayIntersectContact(&ray)
		if !ok {
			// Transparent black: the ray left the scene.
			break
		}

		contactPosition := ray.Origin().Add(ray.Direction().Mul(contact.Distance))

		// Lightness
		sunDirection := sunPosition.Sub(contactPosition).Normalize()
		lightness := math.Max(0.0, contact.Side*contact.SmoothNormal.Dot(sunDirection))

		// Darkness
		shadowCastPosition := contactPosition.Add(
			contact.Normal.Mul(settings.SmoothingLength * contact.Side))
		shadowRay := geometry.NewRay(shadowCastPosition, sunDirection)
		darkness := shadowTransmission(settings, scene, &shadowRay)

		material := contact.Material
		switch material.Kind() {
		case asset.Diffuse:
			colour = colour.Add(material.Spectrum().Sample(lightness * darkness).Scale(weight))
			return colour

		case asset.Reflective:
			absorption := material.Absorption()
			surfaceColour := material.Spectrum().Sample(lightness * darkness)
			colour = colour.Add(surfaceColour.Scale(weight * absorption))
			weight *= 1.0 - absorption

			ray.Travel(contact.Distance)
			ray.Reflect(contact.SmoothNormal)
			ray.Travel(settings.SmoothingLength)

		case asset.Refractive:
			// Swap the indices when the ray is leaving the surface.
			n1 := currentRefractiveIndex
			n2 := material.RefractiveIndex()
			if contact.Side < 0.0 {
				n1, n2 = n2, n1
			}

			ray.Travel(contact.Distance)

			reflectionProb, transmissionProb := fresnel(ray.Direction(), contact.SmoothNormal, n1, n2)

			absorption := material.Absorption()
			absorbedWeight := weight * absorption
			remainingWeight := weight * (1.0 - absorption)
			reflectedWeight := remainingWeight * reflectionProb
			transmittedWeight := remainingWeight * transmissionProb

			surfaceColour := material.Spectrum().Sample(lightness * darkness)

			reflectedRay := ray
			reflectedRay.Reflect(contact.SmoothNormal)
			reflectedRay.Travel(settings.SmoothingLength)
			reflectedColour := Full(
				settings, scene, reflectedRay,
				currentDepth+1, n1, reflectedWeight, sunPosition)

			refractedRay := ray
			refractedRay.Refract(contact.SmoothNormal.Mul(contact.Side).Normalize(), n1, n2)
			refractedRay.Travel(settings.SmoothingLength)
			refractedColour := Full(
				settings, scene, refractedRay,
				currentDepth+1, n2, transmittedWeight, sunPosition)

			colour = colour.
				Add(surfaceColour.Scale(absorbedWeight)).
				Add(reflectedColour.Scale(reflectedWeight)).
				Add(refractedColour.Scale(transmittedWeight))
			return colour
		}

		loops++
		if weight <= settings.MinWeight || loops >= settings.MaxLoops {
			break
		}
	}

	return colour
}

// Walk a shadow ray towards the sun, attenuating by the absorption of every
// surface it passes through. Returns the surviving light fraction in [0, 1];
// fully occluded paths clamp to zero once they drop below the minimum weight.
func shadowTransmission(settings *Settings, scene *world.Scene, shadowRay *geometry.Ray) float64 {
	light := 1.0
	for {
		contact, ok := scene.RayIntersectContact(shadowRay)
		if !ok {
			break
		}

		light *= 1.0 - contact.Material.Absorption()
		shadowRay.Travel(contact.Distance + settings.SmoothingLength)

		if light < settings.MinWeight {
			return 0.0
		}
	}
	return light
}

// Calculate the Fresnel reflection and transmission probabilities for a ray
// crossing from refractive index n1 into n2. A squared transmitted sine above
// one means total internal reflection.
func fresnel(incoming, normal types.Vec3, n1, n2 float64) (float64, float64) {
	cosI := math.Abs(incoming.Dot(normal))
	sinT2 := n1 * n1 * (1.0 - cosI*cosI) / (n2 * n2)

	if sinT2 > 1.0 {
		return 1.0, 0.0
	}

	cosT := math.Sqrt(1.0 - sinT2)

	rs := (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT)
	rp := (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)

	reflectionProb := (rs*rs + rp*rp) * 0.5
	return reflectionProb, 1.0 - reflectionProb
}
