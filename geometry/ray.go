package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/achilleasa/vega/types"
)

// Ray is a line with a fixed starting location and unit direction.
type Ray struct {
	origin    types.Vec3
	direction types.Vec3
}

// Create a new ray. The direction is normalized.
func NewRay(origin, direction types.Vec3) Ray {
	return Ray{origin: origin, direction: direction.Normalize()}
}

// Access the origin.
func (r *Ray) Origin() types.Vec3 {
	return r.origin
}

// Access the direction.
func (r *Ray) Direction() types.Vec3 {
	return r.direction
}

// Travel the origin along the ray's direction.
func (r *Ray) Travel(distance float64) {
	r.origin = r.origin.Add(r.direction.Mul(distance))
}

// Reflect the direction about a surface normal.
func (r *Ray) Reflect(normal types.Vec3) {
	r.direction = r.direction.Sub(normal.Mul(2.0 * r.direction.Dot(normal))).Normalize()
}

// Refract the direction through a surface normal, passing from a medium with
// refractive index n1 into one with index n2. Callers must rule out total
// internal reflection first.
func (r *Ray) Refract(normal types.Vec3, n1, n2 float64) {
	eta := n1 / n2
	cosI := -r.direction.Dot(normal)
	cosT := math.Sqrt(1.0 - eta*eta*(1.0-cosI*cosI))
	r.direction = r.direction.Mul(eta).Add(normal.Mul(eta*cosI - cosT)).Normalize()
}

// Rotate the ray with a given pitch and subsequent roll manoeuvre.
func (r *Ray) Rotate(pitch, roll float64) {
	arbitraryAxis := types.Vec3{0.0, 0.0, 1.0}
	if 1.0-math.Abs(r.direction[2]) < 1.0e-1 {
		arbitraryAxis = types.Vec3{0.0, 1.0, 0.0}
	}

	pitchAxis := r.direction.Cross(arbitraryAxis).Normalize()
	pitchRot := mgl64.QuatRotate(pitch, pitchAxis)
	rollRot := mgl64.QuatRotate(roll, r.direction)

	r.direction = rollRot.Rotate(pitchRot.Rotate(r.direction)).Normalize()
}

// Transformed returns a copy of the ray mapped through a similarity
// transformation.
func (r *Ray) Transformed(transformation types.Similarity) Ray {
	return Ray{
		origin:    transformation.ApplyPoint(r.origin),
		direction: transformation.ApplyVector(r.direction).Normalize(),
	}
}
