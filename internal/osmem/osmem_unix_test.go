//go:build unix

package osmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func unsafeBytesForTest(ptr unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), size)
}

func TestRawAllocZeroFilled(t *testing.T) {
	const size = 4096
	ptr := RawAlloc(size)
	require.NotNil(t, ptr)
	defer RawFree(ptr, size)

	data := unsafeBytesForTest(ptr, size)
	for i, b := range data {
		require.Zerof(t, b, "byte %d not zero-filled", i)
	}
}

func TestRawAllocRawFreeRoundTrip(t *testing.T) {
	const size = 8192
	ptr := RawAlloc(size)
	require.NotNil(t, ptr)

	data := unsafeBytesForTest(ptr, size)
	data[0] = 0xAB
	data[size-1] = 0xCD

	require.NoError(t, RawFree(ptr, size))
}

func TestRawAllocZeroSizeReturnsNil(t *testing.T) {
	require.Nil(t, RawAlloc(0))
}
