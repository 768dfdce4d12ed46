package brushtips

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/svosculpt/svo"
)

// Cube is a square (axis-aligned box) brush tip.
type Cube struct{}

// Filler returns a predicate true iff the cube's AABB overlaps the
// axis-aligned box of the given size centered at brushCenter on every
// axis.
func (Cube) Filler(size float32, brushCenter ms3.Vec) svo.Filler {
	brushBox := ms3.NewCenteredBox(brushCenter, ms3.Vec{X: size, Y: size, Z: size})
	return func(cubeSize float32, center ms3.Vec) bool {
		box := ms3.NewCenteredBox(center, ms3.Vec{X: cubeSize, Y: cubeSize, Z: cubeSize})
		return overlaps(box, brushBox)
	}
}

// Container returns a predicate true iff the cube's AABB is entirely
// inside the axis-aligned box of the given size centered at brushCenter
// on every axis.
func (Cube) Container(size float32, brushCenter ms3.Vec) svo.Container {
	brushBox := ms3.NewCenteredBox(brushCenter, ms3.Vec{X: size, Y: size, Z: size})
	return func(cubeSize float32, center ms3.Vec) bool {
		box := ms3.NewCenteredBox(center, ms3.Vec{X: cubeSize, Y: cubeSize, Z: cubeSize})
		return contains(box, brushBox)
	}
}

// Add applies an additive cube-brush edit at 2D input (x, y), fixed at
// z = 0.5.
func (c Cube) Add(sculpt *svo.Sculpt, material svo.Material, x, y, size float32) {
	brushCenter := ms3.Vec{X: x, Y: y, Z: 0.5}
	sculpt.Subdivide(material, c.Filler(size, brushCenter), c.Container(size, brushCenter))
}

// Remove applies a subtractive cube-brush edit at 2D input (x, y), fixed
// at z = 0.5.
func (c Cube) Remove(sculpt *svo.Sculpt, x, y, size float32) {
	brushCenter := ms3.Vec{X: x, Y: y, Z: 0.5}
	sculpt.Unsubdivide(c.Filler(size, brushCenter), c.Container(size, brushCenter))
}

// overlaps reports whether a and b intersect on every axis.
func overlaps(a, b ms3.Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// contains reports whether a lies entirely within b.
func contains(a, b ms3.Box) bool {
	return a.Min.X >= b.Min.X && a.Max.X <= b.Max.X &&
		a.Min.Y >= b.Min.Y && a.Max.Y <= b.Max.Y &&
		a.Min.Z >= b.Min.Z && a.Max.Z <= b.Max.Z
}
