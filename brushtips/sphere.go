package brushtips

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/svosculpt/svo"
)

// Sphere is a round brush tip.
type Sphere struct{}

// Filler returns a predicate true iff the cube intersects the sphere of
// the given radius centered at brushCenter: it clamps the squared
// distance from brushCenter to the cube's AABB and checks it against
// radius^2, with boundary cubes counted as filled.
func (Sphere) Filler(radius float32, brushCenter ms3.Vec) svo.Filler {
	return func(size float32, center ms3.Vec) bool {
		low, high := lowHigh(size, center)
		distSq := radius * radius
		distSq -= axisExcessSq(brushCenter.X, low.X, high.X)
		distSq -= axisExcessSq(brushCenter.Y, low.Y, high.Y)
		distSq -= axisExcessSq(brushCenter.Z, low.Z, high.Z)
		return distSq >= 0
	}
}

// Container returns a predicate true iff the cube lies entirely inside
// the sphere of the given radius centered at brushCenter: it subtracts
// the squared distance to the cube's far corner on each axis (the corner
// farthest from brushCenter) from radius^2 and requires a strictly
// positive result.
func (Sphere) Container(radius float32, brushCenter ms3.Vec) svo.Container {
	return func(size float32, center ms3.Vec) bool {
		low, high := lowHigh(size, center)
		distSq := radius * radius
		distSq -= farCornerAxisSq(brushCenter.X, low.X, high.X)
		distSq -= farCornerAxisSq(brushCenter.Y, low.Y, high.Y)
		distSq -= farCornerAxisSq(brushCenter.Z, low.Z, high.Z)
		return distSq > 0
	}
}

// Add applies an additive sphere-brush edit at 2D input (x, y), fixed at
// z = 0.5.
func (s Sphere) Add(sculpt *svo.Sculpt, material svo.Material, x, y, radius float32) {
	brushCenter := ms3.Vec{X: x, Y: y, Z: 0.5}
	sculpt.Subdivide(material, s.Filler(radius, brushCenter), s.Container(radius, brushCenter))
}

// Remove applies a subtractive sphere-brush edit at 2D input (x, y),
// fixed at z = 0.5.
func (s Sphere) Remove(sculpt *svo.Sculpt, x, y, radius float32) {
	brushCenter := ms3.Vec{X: x, Y: y, Z: 0.5}
	sculpt.Unsubdivide(s.Filler(radius, brushCenter), s.Container(radius, brushCenter))
}

// axisExcessSq returns how far brushPos lies outside [low, high] on one
// axis, squared; 0 if brushPos is within the interval.
func axisExcessSq(brushPos, low, high float32) float32 {
	d := math32.Max(low-brushPos, math32.Max(brushPos-high, 0))
	return d * d
}

// farCornerAxisSq returns the squared distance from brushPos to whichever
// of low/high is farther away on this axis.
func farCornerAxisSq(brushPos, low, high float32) float32 {
	d := math32.Max(math32.Abs(brushPos-low), math32.Abs(brushPos-high))
	return d * d
}
