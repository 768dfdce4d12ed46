// Package svo implements a sparse voxel octree sculpting core: an
// incrementally-edited octree over the unit cube, driven by filler/
// container shape predicates, with an associated material palette and a
// GPU-consumable buffer serializer.
package svo

import "github.com/soypat/glgl/math/ms3"

// Filler reports whether the axis-aligned cube of the given size centered
// at center intersects the brush volume. It is used to decide whether to
// descend into or create an octree child.
type Filler func(size float32, center ms3.Vec) bool

// Container reports whether the axis-aligned cube of the given size
// centered at center lies entirely inside the brush volume. It is used to
// decide whether a cube can terminate as a solid leaf (on an additive
// edit) or be erased outright (on a subtractive edit).
//
// Container must imply Filler for the same cube; an implementation that
// violates this may cause an edit to refine all the way to the resolution
// limit without terminating early, but will not fail to terminate, since
// subdivide always stops once size reaches the minimum leaf size.
type Container func(size float32, center ms3.Vec) bool
