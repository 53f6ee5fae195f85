package world

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
)

const quadObj = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
f 1//1 3//1 4//1
`

func readQuadMesh(t *testing.T) *asset.Mesh {
	t.Helper()
	mesh, err := asset.ReadMesh(strings.NewReader(quadObj), 4, 16)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func whiteDiffuse(t *testing.T) *asset.Material {
	t.Helper()
	spectrum, err := asset.NewSpectrum([]types.LinRGBA{{R: 1.0, G: 1.0, B: 1.0, A: 1.0}})
	if err != nil {
		t.Fatal(err)
	}
	return asset.NewDiffuse(spectrum)
}

func TestEntityAabb(t *testing.T) {
	transformation := types.NewSimilarity(types.Vec3{10, 0, 0}, mgl64.QuatIdent(), 2.0)
	entity := NewEntity(readQuadMesh(t), whiteDiffuse(t), transformation)

	bounds := entity.Aabb()
	expMins := types.Vec3{10, 0, 0}
	expMaxs := types.Vec3{12, 2, 0}
	if bounds.Mins().Sub(expMins).Len() > 1e-12 || bounds.Maxs().Sub(expMaxs).Len() > 1e-12 {
		t.Fatalf("expected bounds [%v, %v]; got [%v, %v]", expMins, expMaxs, bounds.Mins(), bounds.Maxs())
	}
}

func TestEntityRayIntersectDistanceScaling(t *testing.T) {
	// A quad scaled by 2 spans [0, 2] on both axes.
	transformation := types.NewSimilarity(types.Vec3{}, mgl64.QuatIdent(), 2.0)
	entity := NewEntity(readQuadMesh(t), whiteDiffuse(t), transformation)

	ray := geometry.NewRay(types.Vec3{1.5, 1.5, 4}, types.Vec3{0, 0, -1})
	distance, ok := entity.RayIntersectDistance(&ray)
	if !ok {
		t.Fatal("expected ray to intersect scaled quad")
	}
	if math.Abs(distance-4.0) > 1e-12 {
		t.Fatalf("expected world-space distance to be 4.0; got %g", distance)
	}

	// Outside the scaled quad but inside where an unscaled one would be.
	miss := geometry.NewRay(types.Vec3{2.5, 2.5, 4}, types.Vec3{0, 0, -1})
	if entity.RayIntersect(&miss) {
		t.Fatal("expected ray beyond the scaled quad to miss")
	}
}

func TestEntityRayIntersectContactSide(t *testing.T) {
	entity := NewEntity(readQuadMesh(t), whiteDiffuse(t), types.IdentitySimilarity())

	// Approaching the front face.
	front := geometry.NewRay(types.Vec3{0.5, 0.5, 2}, types.Vec3{0, 0, -1})
	contact, ok := entity.RayIntersectContact(&front)
	if !ok {
		t.Fatal("expected front ray to intersect quad")
	}
	if contact.Side != 1.0 {
		t.Fatalf("expected side to be +1 for a front hit; got %g", contact.Side)
	}
	if contact.Distance != 2.0 {
		t.Fatalf("expected distance 2.0; got %g", contact.Distance)
	}
	if contact.Normal != (types.Vec3{0, 0, 1}) {
		t.Fatalf("expected world normal (0 0 1); got %v", contact.Normal)
	}

	// Exiting through the back face.
	back := geometry.NewRay(types.Vec3{0.5, 0.5, -2}, types.Vec3{0, 0, 1})
	contact, ok = entity.RayIntersectContact(&back)
	if !ok {
		t.Fatal("expected back ray to intersect quad")
	}
	if contact.Side != -1.0 {
		t.Fatalf("expected side to be -1 for a back hit; got %g", contact.Side)
	}
}

func TestEntityRayIntersectContactRotated(t *testing.T) {
	// Rotate the quad 90 degrees about the x axis; its normal turns from +z
	// to -y.
	transformation := types.NewSimilarity(
		types.Vec3{},
		mgl64.QuatRotate(math.Pi/2.0, mgl64.Vec3{1, 0, 0}),
		1.0,
	)
	entity := NewEntity(readQuadMesh(t), whiteDiffuse(t), transformation)

	ray := geometry.NewRay(types.Vec3{0.5, -2, 0.5}, types.Vec3{0, 1, 0})
	contact, ok := entity.RayIntersectContact(&ray)
	if !ok {
		t.Fatal("expected ray to intersect rotated quad")
	}
	if math.Abs(contact.Distance-2.0) > 1e-9 {
		t.Fatalf("expected distance 2.0; got %g", contact.Distance)
	}

	expNormal := types.Vec3{0, -1, 0}
	if contact.Normal.Sub(expNormal).Len() > 1e-9 {
		t.Fatalf("expected world normal %v; got %v", expNormal, contact.Normal)
	}
}
