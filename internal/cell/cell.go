// Package cell implements the heap block header spec.md §3 and §4.4
// describe: construction and destruction over internal/osmem, payload
// address translation, attribute predicates, and conservative word-by-
// word iteration over a cell's payload.
//
// Grounded on teacher's internal/format/cell.go (header/payload
// separation, size-vs-capacity bookkeeping) and on the pack's tinygo
// gc_blocks.go for the unsafe.Pointer/uintptr arithmetic idiom used to
// walk a payload conservatively.
package cell

import (
	"unsafe"

	"github.com/rjeczalik/tracegc/internal/osmem"
)

// WordSize is the conservative scan granularity: every aligned word in a
// range is treated as a potential pointer.
const WordSize = unsafe.Sizeof(uintptr(0))

// Header is prepended to every allocation. Fields mirror spec.md §3
// exactly: size is the currently valid payload length and the scan
// horizon for marking; capacity is the true usable length, fixed at
// allocation; next links the cell into whichever intrusive list
// currently owns it; blockStart is the OS-visible base of the raw block,
// needed because the payload is word-aligned and may start past it.
type Header struct {
	size       uintptr
	capacity   uintptr
	marked     bool
	attr       Attr
	next       *Header
	blockStart unsafe.Pointer
}

// headerSize is a compile-time constant. Header's widest field is a
// pointer, so Go pads the struct to a pointer-sized multiple; the
// payload immediately following the header is therefore already
// word-aligned without any extra arithmetic.
const headerSize = unsafe.Sizeof(Header{})

// New raw-allocates headerSize+payloadSize bytes from internal/osmem and
// writes a fresh header. It returns nil if the underlying allocation
// fails (spec.md §4.2's OOM path: the caller is expected to invoke the
// host's on_out_of_memory callback). marked starts false; next starts
// nil (not yet linked into any list).
func New(payloadSize uintptr, attr Attr) *Header {
	raw := osmem.RawAlloc(headerSize + payloadSize)
	if raw == nil {
		return nil
	}
	h := (*Header)(raw)
	*h = Header{
		size:       payloadSize,
		capacity:   payloadSize,
		attr:       attr,
		blockStart: raw,
	}
	return h
}

// Destroy releases the header's raw block back to internal/osmem. Called
// only from Minimize, on cells that already sit on the free list —
// spec.md §3 ("destroyed by minimize which returns free-list cells to
// the OS").
func (h *Header) Destroy() {
	osmem.RawFree(h.blockStart, headerSize+h.capacity)
}

// Payload returns the address of the cell's user-visible memory.
func (h *Header) Payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + headerSize)
}

// HeaderFromPayload recovers the header address from a payload base
// pointer previously returned by Payload.
func HeaderFromPayload(p unsafe.Pointer) *Header {
	return (*Header)(unsafe.Pointer(uintptr(p) - headerSize))
}

// Size returns the cell's currently valid payload length.
func (h *Header) Size() uintptr { return h.size }

// SetSize updates the cell's valid payload length. Callers must ensure
// size <= Capacity(); the collector enforces that at the Realloc layer.
func (h *Header) SetSize(size uintptr) { h.size = size }

// Capacity returns the cell's true usable payload length, fixed at
// allocation.
func (h *Header) Capacity() uintptr { return h.capacity }

// Marked reports the cell's reachability flag.
func (h *Header) Marked() bool { return h.marked }

// SetMarked sets the reachability flag. Per spec.md §4.6.5, during a
// mark phase this only ever transitions false -> true.
func (h *Header) SetMarked(marked bool) { h.marked = marked }

// Attr returns the cell's attribute bitmap.
func (h *Header) Attr() Attr { return h.attr }

// SetAttr replaces the cell's attribute bitmap outright. Higher layers
// (gc.SetAttr/ClearAttr) read-modify-write through this.
func (h *Header) SetAttr(attr Attr) { h.attr = attr }

// Next returns the cell's intrusive-list successor.
func (h *Header) Next() *Header { return h.next }

// SetNext updates the cell's intrusive-list successor. Exported for use
// by List; other callers should not need it.
func (h *Header) SetNext(next *Header) { h.next = next }

// HasFinalizer reports whether the Finalize attribute bit is set.
func (h *Header) HasFinalizer() bool { return h.attr.Has(Finalize) }

// HasPointers reports whether the payload may contain traceable
// pointers, i.e. the NoScan bit is clear.
func (h *Header) HasPointers() bool { return !h.attr.Has(NoScan) }

// ContainsPayloadAddr reports whether addr falls within this cell's
// payload range [payload, payload+size), the sole interior-pointer
// resolution spec.md §4.6.3/§9 permits.
func (h *Header) ContainsPayloadAddr(addr uintptr) bool {
	base := uintptr(h.Payload())
	return addr >= base && addr < base+h.size
}

// Words iterates every aligned word in [payload, payload+size), calling
// fn with the word's address for each one. Iteration stops at the last
// complete word; any sub-word tail is ignored, and it is size — never
// capacity — that bounds the scan, per spec.md §4.4 and §9.
func (h *Header) Words(fn func(addr uintptr)) {
	ScanRange(uintptr(h.Payload()), uintptr(h.Payload())+h.size, fn)
}
