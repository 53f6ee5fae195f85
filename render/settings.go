package render

// Settings carries the tuning parameters shared by the render engines. All
// values are validated by the config builder layer before they reach the
// engines; the engines trust them.
type Settings struct {
	// Offset applied along surface normals when respawning rays, to avoid
	// self-intersection artifacts.
	SmoothingLength float64

	// Minimum transportable energy fraction; paths below it terminate.
	MinWeight float64

	// Maximum reflection iterations within a single engine invocation.
	MaxLoops int

	// Maximum refractive recursion depth.
	MaxRecursions int

	// Soft BVH limits for meshes.
	MeshBvhMaxChildren int
	MeshBvhMaxDepth    int

	// Soft BVH limits for scenes.
	SceneBvhMaxChildren int
	SceneBvhMaxDepth    int

	// Distance over which the diffuse engine fades its single shadow ray.
	ShadowDistance float64

	// Normalising distance for the greyscale distance engine.
	DistanceScale float64
}
