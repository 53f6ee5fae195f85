package world

import (
	"github.com/achilleasa/vega/geometry"
)

// Scene is the renderable world: a fixed set of placed entities, the lights
// that illuminate them and a bounding volume hierarchy over the entity
// bounds. Scenes are immutable after construction and safe for concurrent
// queries.
type Scene struct {
	lights   []Light
	entities []*Entity
	bvh      *geometry.Bvh
}

// Adapter exposing entity bounds to the BVH.
type entitySet []*Entity

func (s entitySet) Len() int { return len(s) }

func (s entitySet) IndexedAabb(index int) geometry.Aabb { return s[index].Aabb() }

// Create a new scene. The entity list must not be empty.
func NewScene(lights []Light, entities []*Entity, bvhMaxChildren, bvhMaxDepth int) *Scene {
	return &Scene{
		lights:   lights,
		entities: entities,
		bvh:      geometry.NewBvhBuilder().Build(entitySet(entities), bvhMaxChildren, bvhMaxDepth),
	}
}

// Get the scene entities.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// Get the scene lights.
func (s *Scene) Lights() []Light {
	return s.lights
}

// Get the sun: the first light in the scene.
func (s *Scene) Sun() (Light, bool) {
	if len(s.lights) == 0 {
		return Light{}, false
	}
	return s.lights[0], true
}

// Test for an intersection with a ray.
func (s *Scene) RayIntersect(ray *geometry.Ray) bool {
	for _, candidate := range s.bvh.RayIntersections(ray, entitySet(s.entities)) {
		if s.entities[candidate.Index].RayIntersect(ray) {
			return true
		}
	}
	return false
}

// Test for an intersection with a ray, returning the distance to the nearest
// intersection point across all entities.
func (s *Scene) RayIntersectDistance(ray *geometry.Ray) (float64, bool) {
	nearest := 0.0
	found := false
	for _, candidate := range s.bvh.RayIntersections(ray, entitySet(s.entities)) {
		distance, ok := s.entities[candidate.Index].RayIntersectDistance(ray)
		if ok && (!found || distance < nearest) {
			nearest = distance
			found = true
		}
	}
	return nearest, found
}

// Test for an intersection with a ray, returning the contact properties of
// the globally nearest intersection point. Every candidate gets the exact
// entity-level test: candidate order is only a bound, not a guarantee.
func (s *Scene) RayIntersectContact(ray *geometry.Ray) (Contact, bool) {
	var nearest Contact
	found := false
	for _, candidate := range s.bvh.RayIntersections(ray, entitySet(s.entities)) {
		contact, ok := s.entities[candidate.Index].RayIntersectContact(ray)
		if ok && (!found || contact.Distance < nearest.Distance) {
			nearest = contact
			found = true
		}
	}
	return nearest, found
}
