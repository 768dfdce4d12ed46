// Package brushtips provides the built-in predicate factories (sphere and
// cube) used to drive svo.Sculpt edits, plus thin 2D-input convenience
// wrappers. It is a satellite package atop svo's public predicate
// protocol.
package brushtips

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/svosculpt/svo"
)

// lowHigh returns the low and high corners of the axis-aligned cube of
// the given size centered at center.
func lowHigh(size float32, center ms3.Vec) (low, high ms3.Vec) {
	half := size / 2
	return ms3.AddScalar(-half, center), ms3.AddScalar(half, center)
}
