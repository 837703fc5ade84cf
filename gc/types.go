package gc

import (
	"unsafe"

	"github.com/rjeczalik/tracegc/internal/cell"
)

// Attr is the per-cell attribute bitmap, re-exported from internal/cell
// so callers of this package never need to import it directly.
type Attr = cell.Attr

// Recognized attribute bits, mirroring internal/cell's constants.
const (
	Finalize = cell.Finalize
	NoScan   = cell.NoScan
	NoMove   = cell.NoMove
)

// BlkInfo is the query result spec.md §6 calls the "BlkInfo wire
// shape": base address, capacity, and attribute bitmap. Zero-valued
// for unknown pointers.
type BlkInfo struct {
	Base unsafe.Pointer
	Size uintptr
	Attr Attr
}

// addrRange is a registered [from, to) scan range, spec.md §3's fifth
// root source.
type addrRange struct {
	from, to uintptr
}
