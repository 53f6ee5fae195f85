package world

import (
	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
)

// Entity places a shared mesh into the world with a similarity transform and
// a surface material. The mesh and material are borrowed from a resource
// collection; the entity itself is immutable once built.
type Entity struct {
	mesh                  *asset.Mesh
	material              *asset.Material
	transformation        types.Similarity
	inverseTransformation types.Similarity
	aabb                  geometry.Aabb
}

// Create a new entity.
func NewEntity(mesh *asset.Mesh, material *asset.Material, transformation types.Similarity) *Entity {
	return &Entity{
		mesh:                  mesh,
		material:              material,
		transformation:        transformation,
		inverseTransformation: transformation.Inverse(),
		aabb:                  worldAabb(mesh, transformation),
	}
}

// Compute the world-space bounds by transforming every face vertex.
func worldAabb(mesh *asset.Mesh, transformation types.Similarity) geometry.Aabb {
	bounds := geometry.EmptyAabb()
	mesh.EachFaceVertex(func(position types.Vec3) {
		transformed := transformation.ApplyPoint(position)
		bounds = bounds.Union(geometry.NewAabb(transformed, transformed))
	})
	return bounds
}

// Get the cached world-space bounding box.
func (e *Entity) Aabb() geometry.Aabb {
	return e.aabb
}

// Get the surface material.
func (e *Entity) Material() *asset.Material {
	return e.material
}

// Get the placed mesh.
func (e *Entity) Mesh() *asset.Mesh {
	return e.mesh
}

// Test for an intersection with a world-space ray.
func (e *Entity) RayIntersect(ray *geometry.Ray) bool {
	localRay := ray.Transformed(e.inverseTransformation)
	return e.mesh.RayIntersect(&localRay)
}

// Test for an intersection with a world-space ray, returning the world-space
// distance to the nearest intersection point.
func (e *Entity) RayIntersectDistance(ray *geometry.Ray) (float64, bool) {
	localRay := ray.Transformed(e.inverseTransformation)
	distance, ok := e.mesh.RayIntersectDistance(&localRay)
	if !ok {
		return 0.0, false
	}
	return distance * e.transformation.Scaling(), true
}

// Test for an intersection with a world-space ray, returning the full
// contact properties of the nearest intersection point. The ray queries the
// mesh in local space; distances scale by the uniform scale factor and
// normals rotate back into world space.
func (e *Entity) RayIntersectContact(ray *geometry.Ray) (Contact, bool) {
	localRay := ray.Transformed(e.inverseTransformation)
	distance, normal, smoothNormal, ok := e.mesh.RayIntersectDistanceNormals(&localRay)
	if !ok {
		return Contact{}, false
	}

	// A ray leaving through the back of the face started inside the surface.
	isInside := localRay.Direction().Dot(normal) > 0.0

	return NewContact(
		isInside,
		distance*e.transformation.Scaling(),
		e.transformation.ApplyVector(normal).Normalize(),
		e.transformation.ApplyVector(smoothNormal).Normalize(),
		e.material,
	), true
}
