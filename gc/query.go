package gc

import (
	"unsafe"

	"github.com/rjeczalik/tracegc/internal/cell"
)

// AddrOf returns the payload base of the live cell whose payload range
// [payload, payload+size) contains ptr, or nil if none. This is the
// sole supported interior-pointer resolution, per spec.md §4.6.3/§9.
func (c *Collector) AddrOf(ptr unsafe.Pointer) unsafe.Pointer {
	addr := uintptr(ptr)
	h := c.live.Find(func(h *cell.Header) bool {
		return h.ContainsPayloadAddr(addr)
	})
	if h == nil {
		return nil
	}
	return h.Payload()
}

// SizeOf returns ptr's cell capacity if ptr is a live cell's payload
// base, else 0.
func (c *Collector) SizeOf(ptr unsafe.Pointer) uintptr {
	h := c.live.FindByPayload(uintptr(ptr))
	if h == nil {
		return 0
	}
	return h.Capacity()
}

// Query returns ptr's base, capacity and attributes if ptr is a live
// cell's payload base, else a zeroed BlkInfo.
func (c *Collector) Query(ptr unsafe.Pointer) BlkInfo {
	h := c.live.FindByPayload(uintptr(ptr))
	if h == nil {
		return BlkInfo{}
	}
	return BlkInfo{Base: h.Payload(), Size: h.Capacity(), Attr: h.Attr()}
}

// GetAttr returns ptr's attribute bitmap, or 0 if ptr is not a live
// cell's payload base.
func (c *Collector) GetAttr(ptr unsafe.Pointer) Attr {
	h := c.live.FindByPayload(uintptr(ptr))
	if h == nil {
		return 0
	}
	return h.Attr()
}

// SetAttr ORs bits into ptr's attribute bitmap and returns the
// resulting value, or 0 if ptr is not a live cell's payload base.
//
// The reference source this is modeled on documents SetAttr as
// returning the pre-modification value but its own implementation
// returns the post-modification value in one of its two historical
// trees. This is a latent discrepancy in the reference; this collector
// matches its implemented, not its documented, behavior and returns the
// new value.
func (c *Collector) SetAttr(ptr unsafe.Pointer, bits Attr) Attr {
	h := c.live.FindByPayload(uintptr(ptr))
	if h == nil {
		return 0
	}
	h.SetAttr(h.Attr().With(bits))
	return h.Attr()
}

// ClearAttr AND-NOTs bits out of ptr's attribute bitmap and returns the
// resulting value, or 0 if ptr is not a live cell's payload base.
func (c *Collector) ClearAttr(ptr unsafe.Pointer, bits Attr) Attr {
	h := c.live.FindByPayload(uintptr(ptr))
	if h == nil {
		return 0
	}
	h.SetAttr(h.Attr().Without(bits))
	return h.Attr()
}
