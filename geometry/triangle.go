package geometry

import (
	"math"

	"github.com/achilleasa/vega/types"
)

// Near-parallel rays whose Moller-Trumbore determinant falls below this value
// are treated as misses.
const intersectEpsilon = 2.220446049250313e-16

// Triangle is a three-dimensional triangle with interpolated surface normals.
type Triangle struct {
	vertexPositions    [3]types.Vec3
	vertexNormals      [3]types.Vec3
	textureCoordinates [3]types.Vec2
}

// Create a new triangle. The vertex normals must be unit length.
func NewTriangle(vertexPositions [3]types.Vec3, vertexNormals [3]types.Vec3, textureCoordinates [3]types.Vec2) Triangle {
	return Triangle{
		vertexPositions:    vertexPositions,
		vertexNormals:      vertexNormals,
		textureCoordinates: textureCoordinates,
	}
}

// Access the vertex positions.
func (t *Triangle) VertexPositions() [3]types.Vec3 {
	return t.vertexPositions
}

// Access the vertex normals.
func (t *Triangle) VertexNormals() [3]types.Vec3 {
	return t.vertexNormals
}

// Calculate the plane normal of the triangle.
func (t *Triangle) PlaneNormal() types.Vec3 {
	edgeU := t.vertexPositions[1].Sub(t.vertexPositions[0])
	edgeV := t.vertexPositions[2].Sub(t.vertexPositions[0])
	return edgeU.Cross(edgeV).Normalize()
}

// Calculate a unit edge vector of the triangle.
func (t *Triangle) EdgeAxis(index int) types.Vec3 {
	return t.vertexPositions[(index+1)%3].Sub(t.vertexPositions[index]).Normalize()
}

// Find the minimum and maximum projections of the triangle onto the given axis.
func (t *Triangle) ProjectOntoAxis(axis types.Vec3) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, vertex := range t.vertexPositions {
		projection := vertex.Dot(axis)
		min = math.Min(min, projection)
		max = math.Max(max, projection)
	}
	return min, max
}

// Check if the triangle volume overlaps an axis-aligned bounding box using
// the separating axis theorem. Only the legacy brute-force partitioner needs
// this; BVH construction works purely from the triangle bounds.
func (t *Triangle) OverlapsAabb(aabb Aabb) bool {
	boxAxes := [3]types.Vec3{{1.0, 0.0, 0.0}, {0.0, 1.0, 0.0}, {0.0, 0.0, 1.0}}

	for _, axis := range boxAxes {
		if !t.overlapsOnAxis(aabb, axis) {
			return false
		}
	}

	if !t.overlapsOnAxis(aabb, t.PlaneNormal()) {
		return false
	}

	for i := 0; i < 3; i++ {
		for _, boxAxis := range boxAxes {
			axis := t.EdgeAxis(i).Cross(boxAxis).Normalize()
			if !t.overlapsOnAxis(aabb, axis) {
				return false
			}
		}
	}

	return true
}

func (t *Triangle) overlapsOnAxis(aabb Aabb, axis types.Vec3) bool {
	minTri, maxTri := t.ProjectOntoAxis(axis)
	minBox, maxBox := aabb.ProjectOntoAxis(axis)
	return !(maxTri < minBox || minTri > maxBox)
}

// Test for an intersection with a ray.
func (t *Triangle) RayIntersect(ray *Ray) bool {
	_, _, _, ok := t.mollerTrumbore(ray)
	return ok
}

// Test for an intersection with a ray, returning the distance to the
// intersection point.
func (t *Triangle) RayIntersectDistance(ray *Ray) (float64, bool) {
	_, _, distance, ok := t.mollerTrumbore(ray)
	return distance, ok
}

// Test for an intersection with a ray, returning the distance, the plane
// normal and the smoothed normal interpolated from the vertex normals at the
// intersection point.
func (t *Triangle) RayIntersectDistanceNormals(ray *Ray) (float64, types.Vec3, types.Vec3, bool) {
	u, v, distance, ok := t.mollerTrumbore(ray)
	if !ok {
		return 0.0, types.Vec3{}, types.Vec3{}, false
	}

	w := 1.0 - u - v
	smoothNormal := t.vertexNormals[0].Mul(w).
		Add(t.vertexNormals[1].Mul(u)).
		Add(t.vertexNormals[2].Mul(v)).
		Normalize()

	return distance, t.PlaneNormal(), smoothNormal, true
}

// Moller-Trumbore intersection. Returns the barycentric coordinates and the
// ray parameter of the hit. Only forward-facing hits beyond the epsilon count.
func (t *Triangle) mollerTrumbore(ray *Ray) (float64, float64, float64, bool) {
	edge1 := t.vertexPositions[1].Sub(t.vertexPositions[0])
	edge2 := t.vertexPositions[2].Sub(t.vertexPositions[0])
	h := ray.direction.Cross(edge2)
	a := edge1.Dot(h)

	if math.Abs(a) < intersectEpsilon {
		return 0.0, 0.0, 0.0, false
	}

	f := 1.0 / a
	s := ray.origin.Sub(t.vertexPositions[0])
	u := f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return 0.0, 0.0, 0.0, false
	}

	q := s.Cross(edge1)
	v := f * ray.direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return 0.0, 0.0, 0.0, false
	}

	rt := f * edge2.Dot(q)
	if rt <= intersectEpsilon {
		return 0.0, 0.0, 0.0, false
	}

	return u, v, rt, true
}

// Get the bounding box encompassing the triangle.
func (t *Triangle) Aabb() Aabb {
	bounds := EmptyAabb()
	for _, vertex := range t.vertexPositions {
		bounds.mins = types.MinVec3(bounds.mins, vertex)
		bounds.maxs = types.MaxVec3(bounds.maxs, vertex)
	}
	return bounds
}
