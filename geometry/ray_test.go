package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/achilleasa/vega/types"
)

func TestRayTravel(t *testing.T) {
	ray := NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, 2})
	ray.Travel(3.0)

	if ray.Origin() != (types.Vec3{0, 0, 3}) {
		t.Fatalf("expected origin to be (0 0 3); got %v", ray.Origin())
	}
	if ray.Direction() != (types.Vec3{0, 0, 1}) {
		t.Fatalf("expected direction to stay normalized; got %v", ray.Direction())
	}
}

func TestRayReflect(t *testing.T) {
	ray := NewRay(types.Vec3{0, 0, 1}, types.Vec3{1, 0, -1})
	ray.Reflect(types.Vec3{0, 0, 1})

	expected := types.Vec3{1, 0, 1}.Normalize()
	if ray.Direction().Sub(expected).Len() > 1e-12 {
		t.Fatalf("expected reflected direction to be %v; got %v", expected, ray.Direction())
	}
}

func TestRayRefractMatchedIndices(t *testing.T) {
	original := types.Vec3{1, 0, -1}.Normalize()
	ray := NewRay(types.Vec3{0, 0, 1}, original)
	ray.Refract(types.Vec3{0, 0, 1}, 1.0, 1.0)

	if ray.Direction().Sub(original).Len() > 1e-12 {
		t.Fatalf("expected direction to be unchanged for matched indices; got %v", ray.Direction())
	}
}

func TestRayRefractSnell(t *testing.T) {
	ray := NewRay(types.Vec3{0, 0, 1}, types.Vec3{1, 0, -1})
	ray.Refract(types.Vec3{0, 0, 1}, 1.0, 1.5)

	direction := ray.Direction()
	if math.Abs(direction.Len()-1.0) > 1e-12 {
		t.Fatalf("expected refracted direction to be unit length; got length %g", direction.Len())
	}
	if direction[2] >= 0.0 {
		t.Fatalf("expected refracted ray to continue into the surface; got %v", direction)
	}

	// Snell's law: sinT = sinI * n1/n2 with 45 degree incidence.
	expSinT := math.Sqrt(0.5) / 1.5
	sinT := math.Hypot(direction[0], direction[1])
	if math.Abs(sinT-expSinT) > 1e-12 {
		t.Fatalf("expected transmitted sine to be %g; got %g", expSinT, sinT)
	}
}

func TestRayRotatePreservesUnitLength(t *testing.T) {
	ray := NewRay(types.Vec3{0, 0, 0}, types.Vec3{1, 2, 0.5})
	original := ray.Direction()

	ray.Rotate(0.3, 1.2)
	if math.Abs(ray.Direction().Len()-1.0) > 1e-12 {
		t.Fatalf("expected rotated direction to be unit length; got length %g", ray.Direction().Len())
	}

	// The pitch angle equals the deviation from the original direction.
	angle := math.Acos(ray.Direction().Dot(original))
	if math.Abs(angle-0.3) > 1e-9 {
		t.Fatalf("expected deviation angle to be 0.3; got %g", angle)
	}
}

func TestRayTransformed(t *testing.T) {
	transformation := types.NewSimilarity(
		types.Vec3{1, 2, 3},
		mgl64.QuatRotate(math.Pi/2.0, mgl64.Vec3{0, 0, 1}),
		2.0,
	)

	ray := NewRay(types.Vec3{1, 0, 0}, types.Vec3{1, 0, 0})
	transformed := ray.Transformed(transformation)

	// The origin scales to (2 0 0), rotates to (0 2 0) and translates.
	expOrigin := types.Vec3{1, 4, 3}
	if transformed.Origin().Sub(expOrigin).Len() > 1e-12 {
		t.Fatalf("expected transformed origin to be %v; got %v", expOrigin, transformed.Origin())
	}

	expDirection := types.Vec3{0, 1, 0}
	if transformed.Direction().Sub(expDirection).Len() > 1e-12 {
		t.Fatalf("expected transformed direction to be %v; got %v", expDirection, transformed.Direction())
	}
	if math.Abs(transformed.Direction().Len()-1.0) > 1e-12 {
		t.Fatalf("expected transformed direction to stay unit length; got length %g", transformed.Direction().Len())
	}
}
