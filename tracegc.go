package tracegc

import (
	"sync"
	"unsafe"

	"github.com/rjeczalik/tracegc/gc"
)

// Host is the six-primitive callback contract a host runtime
// implements, re-exported from gc so callers of this package only ever
// import tracegc.
type Host = gc.Host

// MarkRangeFunc is the callback Host methods invoke once per candidate
// root range.
type MarkRangeFunc = gc.MarkRangeFunc

// Attr is the per-cell attribute bitmap.
type Attr = gc.Attr

// Recognized attribute bits.
const (
	Finalize = gc.Finalize
	NoScan   = gc.NoScan
	NoMove   = gc.NoMove
)

// BlkInfo is the result of Query: a live cell's base address, capacity,
// and attribute bitmap. Zero-valued for unknown pointers.
type BlkInfo = gc.BlkInfo

// mu is the single global collector lock spec.md §5 describes: an
// independent, lightweight in-process lock, distinct from any mutex the
// host runtime uses for its own thread management. Every entry point
// below acquires it for its entire duration.
var mu sync.Mutex

var collector = gc.New()

// Init initializes the global collector with host. It must be called
// before any other entry point in this package.
func Init(host Host) error {
	mu.Lock()
	defer mu.Unlock()
	return collector.Init(host)
}

// Term runs finalizers for every still-live finalizable cell. It must
// be the last entry point called.
func Term() error {
	mu.Lock()
	defer mu.Unlock()
	return collector.Term()
}

// Enable decrements the enable counter, permitting collection on
// allocation pressure once it reaches zero.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	collector.Enable()
}

// Disable increments the enable counter, suppressing collection on
// allocation pressure until a matching Enable call.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	collector.Disable()
}

// Collect runs a full unmark/mark/sweep cycle regardless of the enable
// counter.
func Collect() {
	mu.Lock()
	defer mu.Unlock()
	collector.Collect()
}

// Minimize returns every free-list cell's raw block to the OS.
func Minimize() {
	mu.Lock()
	defer mu.Unlock()
	collector.Minimize()
}

// Malloc allocates size bytes tagged with attr, or returns nil for
// size == 0 or on out-of-memory.
func Malloc(size uintptr, attr Attr) unsafe.Pointer {
	mu.Lock()
	defer mu.Unlock()
	return collector.Malloc(size, attr)
}

// Calloc is Malloc followed by zeroing the payload.
func Calloc(size uintptr, attr Attr) unsafe.Pointer {
	mu.Lock()
	defer mu.Unlock()
	return collector.Calloc(size, attr)
}

// Realloc resizes the live cell at ptr, per gc.Collector.Realloc's
// branch structure.
func Realloc(ptr unsafe.Pointer, size uintptr, attr Attr) unsafe.Pointer {
	mu.Lock()
	defer mu.Unlock()
	return collector.Realloc(ptr, size, attr)
}

// Extend always returns 0: this engine cannot grow blocks in place.
func Extend(ptr unsafe.Pointer, min, max uintptr) uintptr {
	mu.Lock()
	defer mu.Unlock()
	return collector.Extend(ptr, min, max)
}

// Reserve obtains one raw block of size bytes and links it into the
// free list.
func Reserve(size uintptr) uintptr {
	mu.Lock()
	defer mu.Unlock()
	return collector.Reserve(size)
}

// Free moves ptr's cell from live to free without finalization.
func Free(ptr unsafe.Pointer) {
	mu.Lock()
	defer mu.Unlock()
	collector.Free(ptr)
}

// AddrOf resolves ptr, interior pointers included, to its cell's
// payload base.
func AddrOf(ptr unsafe.Pointer) unsafe.Pointer {
	mu.Lock()
	defer mu.Unlock()
	return collector.AddrOf(ptr)
}

// SizeOf returns ptr's cell capacity, or 0 if ptr is not a live cell's
// payload base.
func SizeOf(ptr unsafe.Pointer) uintptr {
	mu.Lock()
	defer mu.Unlock()
	return collector.SizeOf(ptr)
}

// Query returns ptr's base, capacity and attributes.
func Query(ptr unsafe.Pointer) BlkInfo {
	mu.Lock()
	defer mu.Unlock()
	return collector.Query(ptr)
}

// GetAttr returns ptr's attribute bitmap.
func GetAttr(ptr unsafe.Pointer) Attr {
	mu.Lock()
	defer mu.Unlock()
	return collector.GetAttr(ptr)
}

// SetAttr ORs bits into ptr's attribute bitmap and returns the
// resulting value.
func SetAttr(ptr unsafe.Pointer, bits Attr) Attr {
	mu.Lock()
	defer mu.Unlock()
	return collector.SetAttr(ptr, bits)
}

// ClearAttr AND-NOTs bits out of ptr's attribute bitmap and returns the
// resulting value.
func ClearAttr(ptr unsafe.Pointer, bits Attr) Attr {
	mu.Lock()
	defer mu.Unlock()
	return collector.ClearAttr(ptr, bits)
}

// AddRoot registers ptr as a single-word root.
func AddRoot(ptr unsafe.Pointer) {
	mu.Lock()
	defer mu.Unlock()
	collector.AddRoot(ptr)
}

// RemoveRoot removes one occurrence of ptr from the registered roots.
func RemoveRoot(ptr unsafe.Pointer) bool {
	mu.Lock()
	defer mu.Unlock()
	return collector.RemoveRoot(ptr)
}

// AddRange registers [ptr, ptr+size) as a scanned address range.
func AddRange(ptr unsafe.Pointer, size uintptr) {
	mu.Lock()
	defer mu.Unlock()
	collector.AddRange(ptr, size)
}

// RemoveRange removes the first registered range whose base is ptr.
func RemoveRange(ptr unsafe.Pointer) bool {
	mu.Lock()
	defer mu.Unlock()
	return collector.RemoveRange(ptr)
}
