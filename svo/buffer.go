package svo

import "fmt"

// Buffer serializes n as though it were the sculpt root: the returned
// slice always starts with a two-word header at indices 0 and 1, even if
// n is a Leaf or None node, followed by every descendant word.
//
// A solid Leaf root has no children to report structure through, so it is
// encoded as a full Interior header (every child bit set, every leaf bit
// set) pointing at eight words all holding n's own material. This is the
// same shape an Interior with eight uniform Leaf children collapses into
// under merge-up, and it decodes back losslessly, whereas a bare
// childMask/leafMask of 0 is indistinguishable from a None root.
func (n *Node) Buffer() []uint32 {
	if n.kind == KindLeaf {
		buf := make([]uint32, 0, 10)
		buf = append(buf, 0xFFFF, 2)
		for i := 0; i < 8; i++ {
			buf = append(buf, n.material)
		}
		return buf
	}
	buf := make([]uint32, 0, 2+n.childCount)
	a, b := n.header(2)
	buf = append(buf, a, b)
	n.emitChildren(&buf, 2)
	return buf
}

// header returns the two words an Interior-shaped encoding of n
// contributes: childMask/leafMask packed into the high/low bytes of the
// first word, and pointer as the second.
func (n *Node) header(pointer uint32) (uint32, uint32) {
	var childMask, leafMask uint32
	for i, c := range n.children {
		if c == nil {
			continue
		}
		bit := uint32(1) << uint(i)
		childMask |= bit
		if c.kind != KindInterior {
			leafMask |= bit
		}
	}
	return (childMask << 8) | leafMask, pointer
}

// emitChildren appends n's children to buf following the two-pass
// algorithm: first every sibling's header word(s), in order, then every
// sibling's own descendants, in order. p is the word index immediately
// after n's own header and all of n's siblings' headers have been placed
// (i.e. where n's children's header words begin).
func (n *Node) emitChildren(buf *[]uint32, p uint32) {
	var headerWords uint32
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if c.kind == KindInterior {
			headerWords += 2
		} else {
			headerWords += 1
		}
	}

	ptr := p + headerWords
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if c.kind == KindInterior {
			a, b := c.header(ptr)
			*buf = append(*buf, a, b)
			ptr += c.childCount
		} else {
			*buf = append(*buf, c.material)
		}
	}

	ptr = p + headerWords
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if c.kind == KindInterior {
			c.emitChildren(buf, ptr)
		}
		ptr += c.childCount
	}
}

// DecodedNode is the structural result of decoding a voxel buffer: it
// carries kind, child presence and leaf materials, but not geometry,
// since the wire format does not encode centers or sizes.
type DecodedNode struct {
	Kind     Kind
	Material uint32
	Children [8]*DecodedNode
}

// DecodeBuffer rebuilds the tree structure encoded by buf (as produced by
// Node.Buffer), starting at the forced root header.
func DecodeBuffer(buf []uint32) (*DecodedNode, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("svo: buffer too short: %d words", len(buf))
	}
	return decodeAt(buf, 0)
}

func decodeAt(buf []uint32, idx uint32) (*DecodedNode, error) {
	if int(idx)+1 >= len(buf) {
		return nil, fmt.Errorf("svo: header index %d out of range (len %d)", idx, len(buf))
	}
	a, b := buf[idx], buf[idx+1]
	childMask := uint8(a >> 8)
	leafMask := uint8(a)

	if childMask == 0 {
		return &DecodedNode{Kind: KindNone}, nil
	}

	n := &DecodedNode{Kind: KindInterior}
	ptr := b
	for i := 0; i < 8; i++ {
		bit := uint8(1) << uint(i)
		if childMask&bit == 0 {
			continue
		}
		if leafMask&bit != 0 {
			if int(ptr) >= len(buf) {
				return nil, fmt.Errorf("svo: leaf pointer %d out of range (len %d)", ptr, len(buf))
			}
			n.Children[i] = &DecodedNode{Kind: KindLeaf, Material: buf[ptr]}
			ptr++
			continue
		}
		child, err := decodeAt(buf, ptr)
		if err != nil {
			return nil, err
		}
		n.Children[i] = child
		ptr += 2
	}
	return n, nil
}
