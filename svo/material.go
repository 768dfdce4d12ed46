package svo

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Material is an interned surface descriptor: a color plus two PBR-ish
// scalars. Two materials with identical fields are the same material,
// regardless of where either lives in a Palette.
type Material struct {
	// Color holds linear r, g, b, a components in [0, 1].
	Color     [4]float32
	Roughness float32
	Metallic  float32
}

// DefaultMaterial is the material that always occupies palette index 0: a
// mid-grey, non-metallic, medium-roughness surface.
var DefaultMaterial = Material{
	Color:     [4]float32{0.8, 0.8, 0.8, 1.0},
	Roughness: 0.5,
	Metallic:  0,
}

// RGBA implements color.Color so a Material can be handed directly to
// anything that consumes image colors.
func (m Material) RGBA() (r, g, b, a uint32) {
	conv := func(v float32) uint32 {
		clamped := math32.Max(0, math32.Min(1, v))
		return uint32(clamped * 0xffff)
	}
	return conv(m.Color[0]), conv(m.Color[1]), conv(m.Color[2]), conv(m.Color[3])
}

var _ color.Color = Material{}

// toBuffer returns the material's 6-float GPU encoding: r, g, b, a,
// roughness, metallic.
func (m Material) toBuffer() [6]float32 {
	return [6]float32{m.Color[0], m.Color[1], m.Color[2], m.Color[3], m.Roughness, m.Metallic}
}

// Palette is an ordered, deduplicated sequence of materials. Index 0 is
// always DefaultMaterial. A Palette is owned by exactly one Sculpt.
type Palette struct {
	materials []Material
	index     map[Material]uint32
}

// NewPalette creates a palette containing only the default material at
// index 0.
func NewPalette() *Palette {
	p := &Palette{
		materials: []Material{DefaultMaterial},
		index:     map[Material]uint32{DefaultMaterial: 0},
	}
	return p
}

// Intern returns m's index in the palette, appending m at the next index
// if it has not been seen before. Materials are compared by value, so
// repeated edits with the same attributes never grow the palette.
func (p *Palette) Intern(m Material) uint32 {
	if idx, ok := p.index[m]; ok {
		return idx
	}
	idx := uint32(len(p.materials))
	p.materials = append(p.materials, m)
	p.index[m] = idx
	return idx
}

// Len returns the number of materials currently in the palette.
func (p *Palette) Len() int {
	return len(p.materials)
}

// Material returns the material stored at idx. It panics if idx is out of
// range: an out-of-range material index in a leaf is a caller error that
// must never occur.
func (p *Palette) Material(idx uint32) Material {
	return p.materials[idx]
}

// Buffer returns the palette's flat float32 encoding: 6 floats per
// material, in palette order, suitable for upload as a GPU material
// buffer.
func (p *Palette) Buffer() []float32 {
	buf := make([]float32, 0, len(p.materials)*6)
	for _, m := range p.materials {
		enc := m.toBuffer()
		buf = append(buf, enc[:]...)
	}
	return buf
}

// prune drops every material not referenced by keep (a set of indices
// still used by live leaves), except index 0, which is always preserved.
// It returns a map from old index to new index; callers must remap every
// leaf's material index using this map before the old indices are
// invalid.
func (p *Palette) prune(keep map[uint32]bool) map[uint32]uint32 {
	remap := make(map[uint32]uint32, len(p.materials))
	kept := make([]Material, 0, len(p.materials))
	kept = append(kept, p.materials[0])
	remap[0] = 0
	for i := 1; i < len(p.materials); i++ {
		if !keep[uint32(i)] {
			continue
		}
		remap[uint32(i)] = uint32(len(kept))
		kept = append(kept, p.materials[i])
	}
	p.materials = kept
	p.index = make(map[Material]uint32, len(kept))
	for i, m := range kept {
		p.index[m] = uint32(i)
	}
	return remap
}
