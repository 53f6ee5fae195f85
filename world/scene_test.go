package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
)

func makeStackedScene(t *testing.T, reversed bool) (*Scene, *Entity, *Entity) {
	t.Helper()

	mesh := readQuadMesh(t)
	material := whiteDiffuse(t)

	upper := NewEntity(mesh, material, types.IdentitySimilarity())
	lower := NewEntity(mesh, material,
		types.NewSimilarity(types.Vec3{0, 0, -1}, mgl64.QuatIdent(), 1.0))

	entities := []*Entity{upper, lower}
	if reversed {
		entities = []*Entity{lower, upper}
	}

	sun := NewLight(types.Vec3{0, 0, 10}, types.LinRGBA{R: 1, G: 1, B: 1, A: 1}, 1.0)
	return NewScene([]Light{sun}, entities, 2, 16), upper, lower
}

func TestSceneSun(t *testing.T) {
	scene, _, _ := makeStackedScene(t, false)

	sun, ok := scene.Sun()
	if !ok {
		t.Fatal("expected scene to have a sun")
	}
	if sun.Position() != (types.Vec3{0, 0, 10}) {
		t.Fatalf("expected sun position (0 0 10); got %v", sun.Position())
	}
}

func TestSceneRayIntersect(t *testing.T) {
	scene, _, _ := makeStackedScene(t, false)

	hit := geometry.NewRay(types.Vec3{0.5, 0.5, 2}, types.Vec3{0, 0, -1})
	if !scene.RayIntersect(&hit) {
		t.Fatal("expected ray to intersect scene")
	}

	miss := geometry.NewRay(types.Vec3{5, 5, 2}, types.Vec3{0, 0, -1})
	if scene.RayIntersect(&miss) {
		t.Fatal("expected offset ray to miss scene")
	}
}

func TestSceneRayIntersectDistanceNearest(t *testing.T) {
	// The nearest hit must win regardless of entity registration order.
	for _, reversed := range []bool{false, true} {
		scene, _, _ := makeStackedScene(t, reversed)

		ray := geometry.NewRay(types.Vec3{0.5, 0.5, 2}, types.Vec3{0, 0, -1})
		distance, ok := scene.RayIntersectDistance(&ray)
		if !ok {
			t.Fatalf("[reversed=%t] expected ray to intersect scene", reversed)
		}
		if distance != 2.0 {
			t.Fatalf("[reversed=%t] expected nearest distance 2.0; got %g", reversed, distance)
		}
	}
}

func TestSceneRayIntersectContactNearest(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		scene, _, _ := makeStackedScene(t, reversed)

		ray := geometry.NewRay(types.Vec3{0.5, 0.5, 2}, types.Vec3{0, 0, -1})
		contact, ok := scene.RayIntersectContact(&ray)
		if !ok {
			t.Fatalf("[reversed=%t] expected ray to intersect scene", reversed)
		}
		if contact.Distance != 2.0 {
			t.Fatalf("[reversed=%t] expected nearest contact at distance 2.0; got %g", reversed, contact.Distance)
		}
		if contact.Side != 1.0 {
			t.Fatalf("[reversed=%t] expected a front hit; got side %g", reversed, contact.Side)
		}
	}
}

func TestSceneRayBetweenEntities(t *testing.T) {
	scene, _, _ := makeStackedScene(t, false)

	// Starting between the quads, only the lower one is ahead.
	ray := geometry.NewRay(types.Vec3{0.5, 0.5, -0.5}, types.Vec3{0, 0, -1})
	distance, ok := scene.RayIntersectDistance(&ray)
	if !ok {
		t.Fatal("expected ray to intersect lower quad")
	}
	if distance != 0.5 {
		t.Fatalf("expected distance 0.5; got %g", distance)
	}
}
