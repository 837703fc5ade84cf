//go:build !unix && !windows

package osmem

import (
	"runtime"
	"unsafe"
)

// pinners keeps each fallback allocation alive and unmoved until RawFree
// releases it, one runtime.Pinner per block keyed by the block's original
// base. There is no real anonymous-mapping primitive on this build
// target, so we ask Go's allocator for memory instead and pin it, trading
// "genuinely OS-owned" for "the Go GC will never move or collect it out
// from under us" — the property the collector actually depends on.
var pinners = map[unsafe.Pointer]*runtime.Pinner{}

// RawAlloc implements spec.md §4.2's generic-heap trampoline: when the
// only available primitive is unaligned, over-allocate by one page,
// align the returned pointer up, and stash the original base in the
// word immediately after the requested size so RawFree can recover it.
func RawAlloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	raw := make([]byte, size+pageSize)
	base := unsafe.Pointer(&raw[0])
	baseAddr := uintptr(base)
	aligned := (baseAddr + pageSize - 1) &^ (pageSize - 1)

	pinner := new(runtime.Pinner)
	pinner.Pin(base)
	pinners[base] = pinner

	alignedPtr := unsafe.Pointer(aligned)
	basePtr := (*unsafe.Pointer)(unsafe.Pointer(aligned + size))
	*basePtr = base
	return alignedPtr
}

// RawFree unpins the block whose original base was recorded by RawAlloc.
func RawFree(ptr unsafe.Pointer, size uintptr) error {
	if ptr == nil {
		return nil
	}
	base := *(*unsafe.Pointer)(unsafe.Pointer(uintptr(ptr) + size))
	if pinner := pinners[base]; pinner != nil {
		pinner.Unpin()
		delete(pinners, base)
	}
	return nil
}
