package svo

import (
	"reflect"
	"testing"

	"github.com/soypat/glgl/math/ms3"
)

func leafNode(material uint32) *Node {
	return &Node{kind: KindLeaf, material: material, size: 0.25, center: ms3.Vec{}}
}

// TestBufferEightLeafChildren covers a root whose 8 children are
// all present Leaves, with materials 2..9.
func TestBufferEightLeafChildren(t *testing.T) {
	root := NewRoot()
	root.kind = KindInterior
	for i := 0; i < 8; i++ {
		root.children[i] = leafNode(uint32(i + 2))
	}
	root.refreshChildCount()

	got := root.Buffer()
	want := []uint32{0xFFFF, 2, 2, 3, 4, 5, 6, 7, 8, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Buffer() = %v, want %v", got, want)
	}
}

// TestBufferSparseChildMask covers a root with present children only in
// slots {0, 2, 4, 7}, all Leaves material=1.
func TestBufferSparseChildMask(t *testing.T) {
	root := NewRoot()
	root.kind = KindInterior
	for _, slot := range []int{0, 2, 4, 7} {
		root.children[slot] = leafNode(1)
	}
	root.refreshChildCount()

	got := root.Buffer()
	want := []uint32{0x9595, 2, 1, 1, 1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Buffer() = %v, want %v", got, want)
	}
}

// TestBufferDegenerateEmptyRoot covers an empty sculpt's root: it still
// emits a forced two-word header, with a zero child mask.
func TestBufferDegenerateEmptyRoot(t *testing.T) {
	root := NewRoot()
	got := root.Buffer()
	want := []uint32{0x0000, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Buffer() = %v, want %v", got, want)
	}
}

// TestBufferNestedInterior builds a root with one Interior grandchild-bearing
// slot (0) and 7 uniform Leaf siblings, and checks the Word B pointer
// arithmetic and total word count by hand: 2 (root header) + 2 (inner
// header) + 8 (grandchildren) + 7 (siblings) = 19 words.
func TestBufferNestedInterior(t *testing.T) {
	root := NewRoot()
	root.kind = KindInterior
	inner := &Node{kind: KindInterior, size: 0.5, center: ms3.Vec{}}
	for i := 0; i < 8; i++ {
		inner.children[i] = leafNode(1)
	}
	inner.refreshChildCount()
	root.children[0] = inner
	for i := 1; i < 8; i++ {
		root.children[i] = leafNode(1)
	}
	root.refreshChildCount()

	buf := root.Buffer()
	if buf[0] != 0xFFFE {
		t.Errorf("root header word A = %#x, want 0xFFFE", buf[0])
	}
	if buf[1] != 2 {
		t.Errorf("root header word B = %d, want 2", buf[1])
	}
	innerPtr := buf[3]
	if int(innerPtr) >= len(buf) {
		t.Fatalf("inner pointer %d out of range (len %d)", innerPtr, len(buf))
	}
	if buf[innerPtr] != 1 {
		t.Errorf("word at inner pointer %d = %d, want the first grandchild's material (1)", innerPtr, buf[innerPtr])
	}
	// 2 (root header) + 2 (inner header) + 8 (grandchildren) + 7 (siblings) = 19 words.
	if len(buf) != 19 {
		t.Errorf("len(buf) = %d, want 19", len(buf))
	}
}

func TestDecodeBufferRoundTrip(t *testing.T) {
	root := NewRoot()
	root.Subdivide(6, xAtLeastHalf, xMoreThanHalf, 1.0/32, false)
	buf := root.Buffer()

	decoded, err := DecodeBuffer(buf)
	if err != nil {
		t.Fatalf("DecodeBuffer: %v", err)
	}
	if decoded.Kind != KindInterior {
		t.Fatalf("decoded kind = %v, want Interior", decoded.Kind)
	}
	for i := 0; i < 8; i++ {
		want := root.Child(i)
		got := decoded.Children[i]
		if (want == nil) != (got == nil) {
			t.Fatalf("slot %d presence mismatch: original present=%v decoded present=%v", i, want != nil, got != nil)
		}
		if want == nil {
			continue
		}
		if got.Kind != want.Kind() {
			t.Errorf("slot %d kind = %v, want %v", i, got.Kind, want.Kind())
		}
		if got.Material != want.Material() {
			t.Errorf("slot %d material = %d, want %d", i, got.Material, want.Material())
		}
	}
}

func TestDecodeBufferRoundTripDeterministic(t *testing.T) {
	root := NewRoot()
	root.Subdivide(6, xAtLeastHalf, xMoreThanHalf, 1.0/32, false)
	buf1 := root.Buffer()
	buf2 := root.Buffer()
	if !reflect.DeepEqual(buf1, buf2) {
		t.Error("Buffer() is not deterministic across repeated calls")
	}
}
