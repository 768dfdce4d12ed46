package svo

import (
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// Flags is a bitmask of optional behaviors for a Sculpt: an opt-in
// debug/policy switch that does not need to grow the constructor
// signature.
type Flags uint8

const (
	// FlagAssertPredicateConsistency wraps every edit's container
	// predicate so that container(size, center) == true but
	// filler(size, center) == false panics immediately, instead of
	// silently over-refining toward the resolution limit. Off by
	// default since it roughly doubles predicate calls.
	FlagAssertPredicateConsistency Flags = 1 << iota
)

// Sculpt is the top-level sparse voxel octree sculpting object: it owns
// the octree root and the material palette exclusively.
type Sculpt struct {
	root       *Node
	palette    *Palette
	resolution uint32
	flags      Flags
}

// New creates a sculpt of the given resolution: a positive integer
// bounding octree depth to log2(resolution). The root starts as a single
// None node covering the unit cube.
func New(resolution uint32) (*Sculpt, error) {
	return NewWithFlags(resolution, 0)
}

// NewWithFlags is New with explicit Flags.
func NewWithFlags(resolution uint32, flags Flags) (*Sculpt, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("svo: resolution must be >= 1, got %d", resolution)
	}
	return &Sculpt{
		root:       NewRoot(),
		palette:    NewPalette(),
		resolution: resolution,
		flags:      flags,
	}, nil
}

// Resolution returns the sculpt's resolution R.
func (s *Sculpt) Resolution() uint32 { return s.resolution }

// Flags returns the sculpt's active flags.
func (s *Sculpt) Flags() Flags { return s.flags }

func (s *Sculpt) minLeafSize() float32 {
	return 1.0 / float32(s.resolution)
}

func (s *Sculpt) guardedContainer(filler Filler, container Container) Container {
	if s.flags&FlagAssertPredicateConsistency == 0 {
		return container
	}
	return func(size float32, center ms3.Vec) bool {
		isContained := container(size, center)
		if isContained && !filler(size, center) {
			panic(fmt.Sprintf("svo: predicate violation: container(%v, %v) true but filler false", size, center))
		}
		return isContained
	}
}

// Subdivide performs an additive edit: it interns material into the
// palette, then fills every cube the predicates match down to the
// resolution limit, and refreshes descendant counts.
func (s *Sculpt) Subdivide(material Material, filler Filler, container Container) {
	idx := s.palette.Intern(material)
	container = s.guardedContainer(filler, container)
	s.root.Subdivide(idx, filler, container, s.minLeafSize(), false)
	s.root.refreshChildCount()
}

// Unsubdivide performs a subtractive edit: it erases every cube the
// predicates match, eroding solid leaves into interiors as needed, and
// refreshes descendant counts.
func (s *Sculpt) Unsubdivide(filler Filler, container Container) {
	container = s.guardedContainer(filler, container)
	s.root.Unsubdivide(filler, container, s.minLeafSize())
	s.root.refreshChildCount()
}

// Root returns the sculpt's root node. The returned node aliases internal
// state and must not be mutated by callers; it is exposed read-only for
// inspection and testing.
func (s *Sculpt) Root() *Node { return s.root }

// VoxelBuffer returns a fresh snapshot of the serialized octree buffer.
func (s *Sculpt) VoxelBuffer() []uint32 {
	return s.root.Buffer()
}

// MaterialBuffer returns a fresh snapshot of the palette's flat float
// encoding.
func (s *Sculpt) MaterialBuffer() []float32 {
	return s.palette.Buffer()
}

// PrunePalette removes materials no longer referenced by any live leaf,
// preserving index 0, and remaps every leaf's material index to match.
func (s *Sculpt) PrunePalette() {
	used := map[uint32]bool{}
	collectUsedMaterials(s.root, used)
	remap := s.palette.prune(used)
	remapLeafMaterials(s.root, remap)
}

func collectUsedMaterials(n *Node, used map[uint32]bool) {
	if n == nil {
		return
	}
	if n.kind == KindLeaf {
		used[n.material] = true
		return
	}
	for _, c := range n.children {
		collectUsedMaterials(c, used)
	}
}

func remapLeafMaterials(n *Node, remap map[uint32]uint32) {
	if n == nil {
		return
	}
	if n.kind == KindLeaf {
		if newIdx, ok := remap[n.material]; ok {
			n.material = newIdx
		}
		return
	}
	for _, c := range n.children {
		remapLeafMaterials(c, remap)
	}
}
