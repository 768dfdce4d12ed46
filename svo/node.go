package svo

import "github.com/soypat/glgl/math/ms3"

// Kind classifies a Node.
type Kind uint8

const (
	// KindNone denotes empty space: a slot that should be pruned by its
	// parent.
	KindNone Kind = iota
	// KindLeaf denotes a uniformly filled region described by Material.
	KindLeaf
	// KindInterior denotes a node with at least one non-None child.
	KindInterior
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindLeaf:
		return "Leaf"
	case KindInterior:
		return "Interior"
	default:
		return "Kind(?)"
	}
}

// Node is a node in the sparse voxel octree: either empty space, a
// uniformly-filled leaf, or an interior node with 1-8 present children.
//
// Child slot i is the octant selected by the bit pattern (z_high, y_high,
// x_high): bit 0 is the x sign, bit 1 the y sign, bit 2 the z sign. This
// ordering is part of the buffer wire format and must not change.
type Node struct {
	children [8]*Node
	center   ms3.Vec
	size     float32
	material uint32
	// childCount caches the serialized-word weight of this node's
	// descendants; see refreshChildCount.
	childCount uint32
	kind       Kind
}

// newNode allocates a child node of kind None with the given geometry and
// fill material.
func newNode(center ms3.Vec, size float32, material uint32) *Node {
	return &Node{center: center, size: size, material: material, kind: KindNone}
}

// NewRoot creates the root node of a sculpt: a None node covering the
// entire unit cube.
func NewRoot() *Node {
	return newNode(ms3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, 1.0, 0)
}

// Kind returns the node's classification.
func (n *Node) Kind() Kind { return n.kind }

// Center returns the node's geometric center.
func (n *Node) Center() ms3.Vec { return n.center }

// Size returns the node's side length.
func (n *Node) Size() float32 { return n.size }

// Material returns the palette index a Leaf node paints its region with.
// The value is meaningless for Interior and None nodes.
func (n *Node) Material() uint32 { return n.material }

// Child returns child slot i (0-7), or nil if that octant is empty space.
func (n *Node) Child(i int) *Node { return n.children[i] }

// octantOffset returns the center offset of child slot i (0-7) relative
// to a parent of the given half-size quarter = size/4.
func octantOffset(i int, quarter float32) ms3.Vec {
	x, y, z := -quarter, -quarter, -quarter
	if i&1 != 0 {
		x = quarter
	}
	if i&2 != 0 {
		y = quarter
	}
	if i&4 != 0 {
		z = quarter
	}
	return ms3.Vec{X: x, Y: y, Z: z}
}

// Subdivide recursively mutates n in place to fill space matched by the
// filler/container predicate pair with material.
//
// minLeafSize is the sculpt's resolution limit (1/R). invert is false for
// additive edits; unsubdivide passes true internally to re-populate the
// unaffected remainder of a solid leaf being partially eroded.
func (n *Node) Subdivide(material uint32, filler Filler, container Container, minLeafSize float32, invert bool) {
	if !invert && n.kind == KindLeaf {
		return // Fully filled leaves are not re-traversed on additive edits.
	}

	if n.size <= minLeafSize || container(n.size, n.center) == !invert {
		n.children = [8]*Node{}
		n.kind = KindLeaf
		n.material = material
		return
	}

	half := n.size / 2
	quarter := n.size / 4
	for i := 0; i < 8; i++ {
		if n.children[i] != nil {
			continue
		}
		childCenter := ms3.Add(n.center, octantOffset(i, quarter))
		if filler(half, childCenter) == !invert {
			n.children[i] = newNode(childCenter, half, material)
		}
	}

	var (
		allLeaves     = true
		anyPresent    = false
		sawMaterial   bool
		mergeMaterial uint32
	)
	for _, c := range n.children {
		if c == nil {
			allLeaves = false
			continue
		}
		anyPresent = true
		c.Subdivide(material, filler, container, minLeafSize, invert)
		if c.kind != KindLeaf {
			allLeaves = false
			continue
		}
		if !sawMaterial {
			mergeMaterial, sawMaterial = c.material, true
		} else if c.material != mergeMaterial {
			allLeaves = false
		}
	}

	switch {
	case allLeaves:
		n.children = [8]*Node{}
		n.kind = KindLeaf
		n.material = mergeMaterial
	case anyPresent:
		n.kind = KindInterior
	default:
		n.kind = KindNone
	}
}

// Unsubdivide recursively erases space matched by the filler/container
// predicate pair.
func (n *Node) Unsubdivide(filler Filler, container Container, minLeafSize float32) {
	if !filler(n.size, n.center) {
		return // The brush does not touch this cube.
	}

	anyPresent := false
	for _, c := range n.children {
		if c != nil {
			anyPresent = true
			break
		}
	}
	removedAll := anyPresent

	for i, c := range n.children {
		if c == nil {
			continue
		}
		c.Unsubdivide(filler, container, minLeafSize)
		shouldRemove := c.kind == KindNone || container(c.size, c.center)
		removedAll = removedAll && shouldRemove
		if shouldRemove {
			n.children[i] = nil
		}
	}

	if removedAll {
		n.kind = KindNone
		return
	}

	if n.hasAnyChild() {
		n.kind = KindInterior
		return
	}

	// A former Leaf needs partial erosion: rebuild it as an Interior whose
	// children are the unaffected sub-cubes, by populating octants the
	// brush does not fill.
	n.Subdivide(n.material, filler, container, minLeafSize, true)

	if n.hasAnyChild() {
		n.kind = KindInterior
	} else {
		n.kind = KindNone
	}
}

func (n *Node) hasAnyChild() bool {
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

// refreshChildCount recomputes childCount bottom-up for n and every
// descendant, per the weight rule: each present child contributes 2
// words if Interior, else 1, plus that child's own childCount.
func (n *Node) refreshChildCount() uint32 {
	var total uint32
	for _, c := range n.children {
		if c == nil {
			continue
		}
		c.refreshChildCount()
		if c.kind == KindInterior {
			total += 2
		} else {
			total += 1
		}
		total += c.childCount
	}
	n.childCount = total
	return total
}
