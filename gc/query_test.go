package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddrOf_InteriorPointer is scenario 8 from spec.md §8.
func TestAddrOf_InteriorPointer(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(100, 0)
	require.NotNil(t, p)

	mid := unsafe.Pointer(uintptr(p) + 50)
	assert.Equal(t, p, c.AddrOf(mid))

	past := unsafe.Pointer(uintptr(p) + 100)
	assert.Nil(t, c.AddrOf(past))
}

func TestAddrOf_UnknownPointerReturnsNil(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	var x int
	assert.Nil(t, c.AddrOf(unsafe.Pointer(&x)))
}

// TestSizeOf_MatchesCapacityForPayloadBase covers spec.md §8
// invariant 6.
func TestSizeOf_MatchesCapacityForPayloadBase(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(40, 0)
	require.NotNil(t, p)
	assert.Equal(t, uintptr(40), c.SizeOf(p))

	var x int
	assert.Zero(t, c.SizeOf(unsafe.Pointer(&x)))
}

func TestQuery_UnknownPointerReturnsZeroValue(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	var x int
	assert.Equal(t, BlkInfo{}, c.Query(unsafe.Pointer(&x)))
}

func TestQuery_KnownPointerReturnsBaseCapacityAttr(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(24, NoScan)
	require.NotNil(t, p)

	info := c.Query(p)
	assert.Equal(t, p, info.Base)
	assert.Equal(t, uintptr(24), info.Size)
	assert.Equal(t, NoScan, info.Attr)
}

// TestSetAttrClearAttr_RoundTrip covers spec.md §8's round-trip law:
// set_attr(p, a); clear_attr(p, a) returns the bitmap to its pre-call
// value.
func TestSetAttrClearAttr_RoundTrip(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(8, 0)
	require.NotNil(t, p)
	before := c.GetAttr(p)

	c.SetAttr(p, Finalize)
	c.ClearAttr(p, Finalize)

	assert.Equal(t, before, c.GetAttr(p))
}

// TestSetAttr_ReturnsNewValue documents the implemented (not documented)
// reference behavior, per spec.md §9.
func TestSetAttr_ReturnsNewValue(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(8, 0)
	require.NotNil(t, p)

	got := c.SetAttr(p, Finalize)
	assert.Equal(t, Finalize, got)
	assert.Equal(t, Finalize, c.GetAttr(p))
}

func TestGetAttrSetAttrClearAttr_UnknownPointerReturnsZero(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	var x int
	ptr := unsafe.Pointer(&x)
	assert.Zero(t, c.GetAttr(ptr))
	assert.Zero(t, c.SetAttr(ptr, Finalize))
	assert.Zero(t, c.ClearAttr(ptr, Finalize))
}
