package world

import (
	"github.com/achilleasa/vega/asset"
	"github.com/achilleasa/vega/types"
)

// Contact captures the surface properties at the point where a ray meets
// scene geometry. Contacts are transient query results.
type Contact struct {
	// One when the contact lies on the outside of the surface, negative
	// one when the ray struck it from the inside.
	Side float64
	// World-space distance from the ray origin to the contact point.
	Distance float64
	// Flat triangle-plane normal at the contact point.
	Normal types.Vec3
	// Interpolated vertex normal at the contact point.
	SmoothNormal types.Vec3
	// Material of the struck surface.
	Material *asset.Material
}

// Create a new contact.
func NewContact(isInside bool, distance float64, normal, smoothNormal types.Vec3, material *asset.Material) Contact {
	side := 1.0
	if isInside {
		side = -1.0
	}
	return Contact{
		Side:         side,
		Distance:     distance,
		Normal:       normal,
		SmoothNormal: smoothNormal,
		Material:     material,
	}
}
