package types

import "github.com/go-gl/mathgl/mgl64"

// Similarity is a uniform-scale rigid transformation: scaling, then rotation,
// then translation. The uniform scale factor is what lets entity-local ray
// distances be mapped back to world space with a single multiplication.
type Similarity struct {
	scaling     float64
	rotation    mgl64.Quat
	translation Vec3
}

// Create a new similarity transformation.
func NewSimilarity(translation Vec3, rotation mgl64.Quat, scaling float64) Similarity {
	return Similarity{
		scaling:     scaling,
		rotation:    rotation.Normalize(),
		translation: translation,
	}
}

// Create the identity transformation.
func IdentitySimilarity() Similarity {
	return Similarity{
		scaling:  1.0,
		rotation: mgl64.QuatIdent(),
	}
}

// Get the uniform scale factor.
func (t Similarity) Scaling() float64 {
	return t.scaling
}

// Transform a point.
func (t Similarity) ApplyPoint(p Vec3) Vec3 {
	return t.rotation.Rotate(p.Mul(t.scaling)).Add(t.translation)
}

// Transform a vector. Directions transformed this way must be renormalized by
// the caller if unit length is required.
func (t Similarity) ApplyVector(v Vec3) Vec3 {
	return t.rotation.Rotate(v.Mul(t.scaling))
}

// Calculate the inverse transformation.
func (t Similarity) Inverse() Similarity {
	invScaling := 1.0 / t.scaling
	invRotation := t.rotation.Inverse()
	return Similarity{
		scaling:     invScaling,
		rotation:    invRotation,
		translation: invRotation.Rotate(t.translation.Mul(-invScaling)),
	}
}
