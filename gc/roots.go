package gc

import (
	"unsafe"

	"github.com/rjeczalik/tracegc/internal/vec"
)

// AddRoot registers ptr as a single-word root, scanned on every
// collection until removed. Duplicates are permitted.
func (c *Collector) AddRoot(ptr unsafe.Pointer) {
	c.roots.Append(uintptr(ptr))
}

// RemoveRoot removes one occurrence of ptr from the registered roots,
// reporting whether a match was found.
func (c *Collector) RemoveRoot(ptr unsafe.Pointer) bool {
	return vec.RemoveFirstEqual(c.roots, uintptr(ptr))
}

// AddRange registers [ptr, ptr+size) as a scanned address range.
// Zero-sized and overlapping ranges are accepted without validation —
// spec.md §9 leaves this open and directs implementations to preserve
// the reference's permissive behavior.
func (c *Collector) AddRange(ptr unsafe.Pointer, size uintptr) {
	from := uintptr(ptr)
	c.ranges.Append(addrRange{from: from, to: from + size})
}

// RemoveRange removes the first registered range whose from equals ptr,
// reporting whether a match was found.
func (c *Collector) RemoveRange(ptr unsafe.Pointer) bool {
	from := uintptr(ptr)
	return c.ranges.RemoveFirst(func(r addrRange) bool { return r.from == from })
}
