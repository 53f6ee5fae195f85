package render

import (
	"math"
	"testing"

	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
	"github.com/achilleasa/vega/world"
)

func TestEngineForName(t *testing.T) {
	for _, name := range []string{"full", "ambient", "diffuse", "distance", "normal", "stencil", "xray", "occlusion"} {
		engine, err := EngineForName(name)
		if err != nil {
			t.Fatalf("expected %q to resolve; got error %v", name, err)
		}
		if engine.String() != name {
			t.Fatalf("expected engine name to roundtrip; got %q for %q", engine.String(), name)
		}
	}

	if _, err := EngineForName("bogus"); err == nil {
		t.Fatal("expected an error for an unknown engine name")
	}
}

func TestStencilEngine(t *testing.T) {
	settings := testSettings()
	scene, _ := singleQuadScene(t, asset.NewDiffuse(whiteSpectrum(t)))

	hit := Stencil(settings, scene, centreRay())
	if hit != (types.LinRGBA{R: 1, G: 1, B: 1, A: 1}) {
		t.Fatalf("expected white for a hit; got %+v", hit)
	}

	miss := Stencil(settings, scene, geometry.NewRay(types.Vec3{5, 5, 2}, types.Vec3{0, 0, -1}))
	if miss != (types.LinRGBA{}) {
		t.Fatalf("expected transparent black for a miss; got %+v", miss)
	}
}

func TestDistanceEngine(t *testing.T) {
	settings := testSettings()
	scene, _ := singleQuadScene(t, asset.NewDiffuse(whiteSpectrum(t)))

	// Hit at distance 2 with scale 10 renders 0.2 grey.
	colour := Distance(settings, scene, centreRay())
	if math.Abs(colour.R-0.2) > 1e-12 || colour.R != colour.G || colour.G != colour.B {
		t.Fatalf("expected 0.2 grey; got %+v", colour)
	}

	miss := Distance(settings, scene, geometry.NewRay(types.Vec3{5, 5, 2}, types.Vec3{0, 0, -1}))
	if miss.R != 0.0 {
		t.Fatalf("expected black for a miss; got %+v", miss)
	}
}

func TestNormalEngine(t *testing.T) {
	settings := testSettings()
	scene, _ := singleQuadScene(t, asset.NewDiffuse(whiteSpectrum(t)))

	colour := Normal(settings, scene, centreRay())
	if colour.R != 0.0 || colour.G != 0.0 || colour.B != 1.0 {
		t.Fatalf("expected the +z normal to render as pure blue; got %+v", colour)
	}
}

func TestAmbientEngine(t *testing.T) {
	settings := testSettings()
	gradient := spectrumOf(t,
		types.LinRGBA{A: 1},
		types.LinRGBA{R: 1, G: 1, B: 1, A: 1},
	)
	scene, _ := singleQuadScene(t, asset.NewDiffuse(gradient))

	colour := Ambient(settings, scene, centreRay())
	if math.Abs(colour.R-0.5) > 1e-12 {
		t.Fatalf("expected the gradient midpoint 0.5; got %+v", colour)
	}
}

func TestDiffuseEngine(t *testing.T) {
	settings := testSettings()
	gradient := spectrumOf(t,
		types.LinRGBA{A: 1},
		types.LinRGBA{R: 1, G: 1, B: 1, A: 1},
	)
	scene, sunPosition := singleQuadScene(t, asset.NewDiffuse(gradient))

	// Unshadowed hit directly below the sun samples the gradient at 1.
	colour := Diffuse(settings, scene, centreRay(), sunPosition)
	if math.Abs(colour.R-1.0) > 1e-12 {
		t.Fatalf("expected a fully lit surface; got %+v", colour)
	}
}

func TestXrayEngine(t *testing.T) {
	settings := testSettings()

	sun := world.NewLight(types.Vec3{0.5, 0.5, 10}, types.LinRGBA{R: 1, G: 1, B: 1, A: 1}, 1.0)
	scene := world.NewScene([]world.Light{sun}, []*world.Entity{
		translatedQuad(t, asset.NewDiffuse(whiteSpectrum(t)), 0),
		translatedQuad(t, asset.NewDiffuse(whiteSpectrum(t)), -1),
	}, 2, 16)

	// Two surfaces sample the blue-to-red ramp at 0.2.
	colour := Xray(settings, scene, centreRay())
	if math.Abs(colour.R-0.2) > 1e-9 || math.Abs(colour.B-0.8) > 1e-9 {
		t.Fatalf("expected ramp sample (0.2, 0, 0.8); got %+v", colour)
	}

	miss := Xray(settings, scene, geometry.NewRay(types.Vec3{5, 5, 2}, types.Vec3{0, 0, -1}))
	if miss != (types.LinRGBA{}) {
		t.Fatalf("expected transparent black for a miss; got %+v", miss)
	}
}

func TestOcclusionEngineMissIsWhite(t *testing.T) {
	settings := testSettings()
	scene, _ := singleQuadScene(t, asset.NewDiffuse(whiteSpectrum(t)))

	colour := Occlusion(settings, scene, geometry.NewRay(types.Vec3{5, 5, 2}, types.Vec3{0, 0, -1}), types.Vec3{0.5, 0.5, 10})
	if colour.R != 1.0 || colour.G != 1.0 || colour.B != 1.0 {
		t.Fatalf("expected white for a miss; got %+v", colour)
	}
}

func TestSpherePointDeterminism(t *testing.T) {
	p1, t1 := spherePoint(3, 101)
	p2, t2 := spherePoint(3, 101)
	if p1 != p2 || t1 != t2 {
		t.Fatal("expected golden-ratio sampling to be deterministic")
	}

	// Successive samples must differ.
	p3, t3 := spherePoint(4, 101)
	if p1 == p3 && t1 == t3 {
		t.Fatal("expected distinct sample points for distinct indices")
	}
}
