package geometry

import (
	"math"

	"github.com/achilleasa/vega/types"
)

// Aabb is an axis-aligned bounding box defined by its two extreme corners.
type Aabb struct {
	mins types.Vec3
	maxs types.Vec3
}

// Create a new axis-aligned bounding box. Mins must not exceed maxs on any axis.
func NewAabb(mins, maxs types.Vec3) Aabb {
	return Aabb{mins: mins, maxs: maxs}
}

// Create an inverted box that unions to any other box. Used as the seed value
// when accumulating bounds during BVH construction.
func EmptyAabb() Aabb {
	return Aabb{
		mins: types.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		maxs: types.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// Get the minimum corner.
func (a Aabb) Mins() types.Vec3 {
	return a.mins
}

// Get the maximum corner.
func (a Aabb) Maxs() types.Vec3 {
	return a.maxs
}

// Get the centre point.
func (a Aabb) Centre() types.Vec3 {
	return a.mins.Add(a.maxs).Mul(0.5)
}

// Get the eight corner points.
func (a Aabb) Corners() []types.Vec3 {
	corners := make([]types.Vec3, 0, 8)
	for _, x := range [2]float64{a.mins[0], a.maxs[0]} {
		for _, y := range [2]float64{a.mins[1], a.maxs[1]} {
			for _, z := range [2]float64{a.mins[2], a.maxs[2]} {
				corners = append(corners, types.Vec3{x, y, z})
			}
		}
	}
	return corners
}

// Find the smallest box containing both boxes.
func (a Aabb) Union(other Aabb) Aabb {
	return Aabb{
		mins: types.MinVec3(a.mins, other.mins),
		maxs: types.MaxVec3(a.maxs, other.maxs),
	}
}

// Check if two boxes overlap. Boxes that merely touch count as overlapping.
func (a Aabb) Overlaps(other Aabb) bool {
	for axis := 0; axis < 3; axis++ {
		if a.maxs[axis] < other.mins[axis] || other.maxs[axis] < a.mins[axis] {
			return false
		}
	}
	return true
}

// Find the minimum and maximum projections of the box onto the given axis.
func (a Aabb) ProjectOntoAxis(axis types.Vec3) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, corner := range a.Corners() {
		projection := corner.Dot(axis)
		min = math.Min(min, projection)
		max = math.Max(max, projection)
	}
	return min, max
}

// Test for an intersection with a ray using the slab method.
func (a Aabb) RayIntersect(ray *Ray) bool {
	tMin, tMax := a.raySlabs(ray)
	return tMax >= tMin && tMax >= 0.0
}

// Test for an intersection with a ray, returning the distance along the ray
// to the point where it enters the box. A ray starting inside the box
// intersects at distance zero.
func (a Aabb) RayIntersectDistance(ray *Ray) (float64, bool) {
	tMin, tMax := a.raySlabs(ray)
	if tMax < tMin || tMax < 0.0 {
		return 0.0, false
	}
	return math.Max(tMin, 0.0), true
}

// Intersect the three per-axis entry/exit intervals.
func (a Aabb) raySlabs(ray *Ray) (float64, float64) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		invDirection := 1.0 / ray.direction[axis]
		t1 := (a.mins[axis] - ray.origin[axis]) * invDirection
		t2 := (a.maxs[axis] - ray.origin[axis]) * invDirection
		tMin = math.Max(tMin, math.Min(t1, t2))
		tMax = math.Min(tMax, math.Max(t1, t2))
	}
	return tMin, tMax
}
