package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
)

// Camera generates sampling rays for the pixels of a frame. The projection
// is a pinhole model: rays fan out from the position towards the look-at
// target, spread over the horizontal field of view.
type Camera struct {
	position            types.Vec3
	lookAt              types.Vec3
	fieldOfView         float64
	resolution          [2]int
	superSamplesPerAxis int
}

// Create a new camera. FieldOfView is the horizontal angle in radians;
// resolution is [height, width] in pixels. SuperSamplesPerAxis supersamples
// each pixel on a grid, so the sample count per pixel is its square.
func NewCamera(position, lookAt types.Vec3, fieldOfView float64, resolution [2]int, superSamplesPerAxis int) *Camera {
	return &Camera{
		position:            position,
		lookAt:              lookAt,
		fieldOfView:         fieldOfView,
		resolution:          resolution,
		superSamplesPerAxis: superSamplesPerAxis,
	}
}

// Get the frame resolution [height, width].
func (c *Camera) Resolution() [2]int {
	return c.resolution
}

// Get the number of supersamples along each pixel axis.
func (c *Camera) SuperSamplesPerAxis() int {
	return c.superSamplesPerAxis
}

// Generate the ray for a sub-pixel sample. Pixel and subPixel are
// [row, column] indices.
func (c *Camera) GenerateRay(pixel, subPixel [2]int) geometry.Ray {
	samples := float64(c.superSamplesPerAxis)
	sampleRow := float64(pixel[0]) + (float64(subPixel[0])+0.5)/samples
	sampleCol := float64(pixel[1]) + (float64(subPixel[1])+0.5)/samples

	dRow := sampleRow/float64(c.resolution[0]) - 0.5
	dCol := sampleCol/float64(c.resolution[1]) - 0.5

	aspectRatio := float64(c.resolution[0]) / float64(c.resolution[1])
	dTheta := -dCol * c.fieldOfView * 0.5
	dPhi := -dRow * c.fieldOfView * aspectRatio * 0.5

	forward := c.lookAt.Sub(c.position).Normalize()
	right := forward.Cross(types.Vec3{0.0, 0.0, 1.0}).Normalize()
	up := right.Cross(forward).Normalize()

	verticalRotation := mgl64.QuatRotate(dPhi, right)
	lateralRotation := mgl64.QuatRotate(dTheta, up)

	direction := lateralRotation.Rotate(verticalRotation.Rotate(forward))

	return geometry.NewRay(c.position, direction)
}
