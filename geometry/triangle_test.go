package geometry

import (
	"math"
	"testing"

	"github.com/achilleasa/vega/types"
)

func makeTestTriangle(normals [3]types.Vec3) Triangle {
	return NewTriangle(
		[3]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		normals,
		[3]types.Vec2{},
	)
}

func TestTrianglePlaneNormal(t *testing.T) {
	tri := makeTestTriangle([3]types.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})

	normal := tri.PlaneNormal()
	if normal != (types.Vec3{0, 0, 1}) {
		t.Fatalf("expected plane normal to be (0 0 1); got %v", normal)
	}
}

func TestTriangleRayIntersectDistance(t *testing.T) {
	tri := makeTestTriangle([3]types.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})

	ray := NewRay(types.Vec3{0.25, 0.25, 1}, types.Vec3{0, 0, -1})
	distance, ok := tri.RayIntersectDistance(&ray)
	if !ok {
		t.Fatal("expected ray to intersect triangle")
	}
	if math.Abs(distance-1.0) > 1e-12 {
		t.Fatalf("expected intersection distance to be 1.0; got %g", distance)
	}
}

func TestTriangleRayIntersectMiss(t *testing.T) {
	tri := makeTestTriangle([3]types.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})

	specs := []Ray{
		// Outside the triangle bounds.
		NewRay(types.Vec3{2, 2, 1}, types.Vec3{0, 0, -1}),
		// Outside the hypotenuse edge but inside the bounding square.
		NewRay(types.Vec3{0.9, 0.9, 1}, types.Vec3{0, 0, -1}),
		// Pointing away from the triangle plane.
		NewRay(types.Vec3{0.25, 0.25, 1}, types.Vec3{0, 0, 1}),
		// Parallel to the triangle plane.
		NewRay(types.Vec3{0.25, 0.25, 1}, types.Vec3{1, 0, 0}),
	}

	for specIndex, ray := range specs {
		if tri.RayIntersect(&ray) {
			t.Fatalf("[spec %d] expected ray to miss triangle", specIndex)
		}
	}
}

func TestTriangleSmoothNormalInterpolation(t *testing.T) {
	tri := makeTestTriangle([3]types.Vec3{{0, 0, 1}, {0, 0, 1}, {1, 0, 0}})

	// Hit at barycentric u=0.25, v=0.25, w=0.5.
	ray := NewRay(types.Vec3{0.25, 0.25, 1}, types.Vec3{0, 0, -1})
	_, flat, smooth, ok := tri.RayIntersectDistanceNormals(&ray)
	if !ok {
		t.Fatal("expected ray to intersect triangle")
	}

	if flat != (types.Vec3{0, 0, 1}) {
		t.Fatalf("expected flat normal to be (0 0 1); got %v", flat)
	}

	expSmooth := types.Vec3{0.25, 0, 0.75}.Normalize()
	if smooth.Sub(expSmooth).Len() > 1e-12 {
		t.Fatalf("expected smooth normal to be %v; got %v", expSmooth, smooth)
	}
}

func TestTriangleAabb(t *testing.T) {
	tri := NewTriangle(
		[3]types.Vec3{{-1, 0, 2}, {1, 0, 0}, {0, 3, 1}},
		[3]types.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		[3]types.Vec2{},
	)

	bounds := tri.Aabb()
	expMins := types.Vec3{-1, 0, 0}
	expMaxs := types.Vec3{1, 3, 2}
	if bounds.Mins() != expMins || bounds.Maxs() != expMaxs {
		t.Fatalf("expected bounds [%v, %v]; got [%v, %v]", expMins, expMaxs, bounds.Mins(), bounds.Maxs())
	}
}

func TestTriangleOverlapsAabb(t *testing.T) {
	tri := makeTestTriangle([3]types.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})

	overlapping := NewAabb(types.Vec3{-0.5, -0.5, -0.5}, types.Vec3{0.5, 0.5, 0.5})
	if !tri.OverlapsAabb(overlapping) {
		t.Fatal("expected triangle to overlap enclosing box")
	}

	separated := NewAabb(types.Vec3{2, 2, 2}, types.Vec3{3, 3, 3})
	if tri.OverlapsAabb(separated) {
		t.Fatal("expected triangle not to overlap distant box")
	}
}
