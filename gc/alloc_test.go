package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMalloc_ZeroSizeReturnsNilWithoutTouchingLists covers spec.md §8
// invariant 8.
func TestMalloc_ZeroSizeReturnsNilWithoutTouchingLists(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(0, 0)
	assert.Nil(t, p)
	assert.True(t, c.live.Empty())
	assert.True(t, c.free.Empty())
}

func TestCalloc_ZeroSizeReturnsNil(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	assert.Nil(t, c.Calloc(0, 0))
}

func TestCalloc_ZeroesPayload(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Calloc(32, 0)
	require.NotNil(t, p)

	b := unsafe.Slice((*byte)(p), 32)
	for i, x := range b {
		require.Zerof(t, x, "byte %d not zero", i)
	}
}

// TestMalloc_FreshCellHasCapacityEqualToSize covers spec.md §8
// invariant 1's size <= capacity half, on the fresh-allocation path.
func TestMalloc_FreshCellHasCapacityEqualToSize(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(48, 0)
	require.NotNil(t, p)
	assert.Equal(t, uintptr(48), c.SizeOf(p))
}

// TestMalloc_ReuseFromFreeListRetainsOriginalCapacity covers spec.md
// §4.6.2's "reused cells retain their existing capacity".
func TestMalloc_ReuseFromFreeListRetainsOriginalCapacity(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(100, 0)
	require.NotNil(t, p)
	c.Free(p)

	q := c.Malloc(10, 0)
	require.NotNil(t, q)
	assert.Equal(t, p, q)
	assert.Equal(t, uintptr(100), c.SizeOf(q))
}

// TestRealloc_NilPointerBehavesAsMalloc and the tests below cover
// spec.md §4.6.2's Realloc branches.
func TestRealloc_NilPointerBehavesAsMalloc(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Realloc(nil, 16, 0)
	require.NotNil(t, p)
	assert.Equal(t, uintptr(16), c.SizeOf(p))
}

func TestRealloc_ZeroSizeFreesAndReturnsNil(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(16, 0)
	require.NotNil(t, p)

	got := c.Realloc(p, 0, 0)
	assert.Nil(t, got)
	assert.Zero(t, c.SizeOf(p))
}

// TestRealloc_SelfSizeIsANoOp covers spec.md §8 invariant 7:
// realloc(p, size_of(p), attr) returns p unchanged.
func TestRealloc_SelfSizeIsANoOp(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(16, 0)
	require.NotNil(t, p)

	got := c.Realloc(p, c.SizeOf(p), 0)
	assert.Equal(t, p, got)
}

// TestRealloc_GrowsOutOfPlacePreservingPrefix is scenario 7 from
// spec.md §8.
func TestRealloc_GrowsOutOfPlacePreservingPrefix(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(16, 0)
	require.NotNil(t, p)
	src := unsafe.Slice((*byte)(p), 16)
	for i := range src {
		src[i] = byte(i + 1)
	}

	q := c.Realloc(p, 1024, 0)
	require.NotNil(t, q)

	dst := unsafe.Slice((*byte)(q), 16)
	assert.Equal(t, src, dst)

	found := c.free.FindByPayload(uintptr(p))
	assert.NotNil(t, found, "old cell should have moved to the free list")
}

func TestExtend_AlwaysReturnsZero(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(8, 0)
	require.NotNil(t, p)
	assert.Zero(t, c.Extend(p, 0, 100))
}

func TestReserve_LinksIntoFreeList(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	n := c.Reserve(64)
	assert.Equal(t, uintptr(64), n)
	assert.False(t, c.free.Empty())

	p := c.Malloc(64, 0)
	require.NotNil(t, p)
}

func TestReserve_NonPositiveSizeAsserts(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	assert.Panics(t, func() { c.Reserve(0) })
}

func TestFree_NilIsNoOp(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	assert.NotPanics(t, func() { c.Free(nil) })
}

func TestFree_NonLivePointerAsserts(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(8, 0)
	require.NotNil(t, p)
	c.Free(p)

	assert.Panics(t, func() { c.Free(p) })
}

// TestMinimize_ReturnsFreeListCellsToTheOS empties the free list, per
// spec.md §4.6.2.
func TestMinimize_ReturnsFreeListCellsToTheOS(t *testing.T) {
	c, _ := newTestCollector()
	defer c.Term()

	p := c.Malloc(8, 0)
	require.NotNil(t, p)
	c.Free(p)
	require.False(t, c.free.Empty())

	c.Minimize()
	assert.True(t, c.free.Empty())
}
