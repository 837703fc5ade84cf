package gc

import (
	"unsafe"

	"github.com/rjeczalik/tracegc/internal/assert"
	"github.com/rjeczalik/tracegc/internal/cell"
)

// Malloc implements spec.md §4.6.2: try the free list first, trigger a
// collection on miss when collection is currently allowed and retry,
// then fall back to a fresh OS allocation.
func (c *Collector) Malloc(size uintptr, attr Attr) unsafe.Pointer {
	if size == 0 {
		return nil
	}

	if h := c.free.PopWithCapacity(size); h != nil {
		return c.installLive(h, size, attr)
	}

	if c.collectionAllowed() {
		c.Collect()
		if h := c.free.PopWithCapacity(size); h != nil {
			return c.installLive(h, size, attr)
		}
	}

	h := cell.New(size, attr)
	if h == nil {
		c.host.OnOutOfMemory()
		return nil
	}
	c.live.Link(h)
	logAlloc("gc: malloc fresh cell", "size", size)
	return h.Payload()
}

// installLive prepares a free-list cell reused by Malloc for its new
// request and moves it to the live list. Capacity is left untouched —
// reused cells retain the capacity of their original allocation, per
// spec.md §4.6.2.
func (c *Collector) installLive(h *cell.Header, size uintptr, attr Attr) unsafe.Pointer {
	h.SetSize(size)
	h.SetAttr(attr)
	h.SetMarked(false)
	c.live.Link(h)
	logAlloc("gc: malloc reused cell", "size", size)
	return h.Payload()
}

// Calloc is Malloc followed by zeroing the payload.
func (c *Collector) Calloc(size uintptr, attr Attr) unsafe.Pointer {
	p := c.Malloc(size, attr)
	if p == nil {
		return nil
	}
	zeroBytes(p, size)
	return p
}

// Realloc implements spec.md §4.6.2's branch structure: Malloc for a
// nil pointer, Free for a zero size, an in-place size update when
// capacity already suffices, and a copying grow-out-of-place allocation
// otherwise.
func (c *Collector) Realloc(ptr unsafe.Pointer, size uintptr, attr Attr) unsafe.Pointer {
	if ptr == nil {
		return c.Malloc(size, attr)
	}
	if size == 0 {
		c.Free(ptr)
		return nil
	}

	h := c.live.FindByPayload(uintptr(ptr))
	assert.Debugf(h != nil, "gc: Realloc on pointer that is not a live cell payload base")
	if h == nil {
		return nil
	}

	if h.Capacity() >= size {
		h.SetSize(size)
		return h.Payload()
	}

	newPtr := c.Malloc(size, attr)
	if newPtr == nil {
		return nil
	}
	n := h.Size()
	if size < n {
		n = size
	}
	copyBytes(newPtr, h.Payload(), n)
	c.live.Unlink(h)
	c.free.Link(h)
	return newPtr
}

// Extend always returns 0: this engine cannot grow blocks in place. The
// min <= max contract is still enforced.
func (c *Collector) Extend(ptr unsafe.Pointer, minSize, maxSize uintptr) uintptr {
	assert.Debugf(minSize <= maxSize, "gc: Extend called with min > max")
	return 0
}

// Reserve obtains one raw block of size bytes and links it into the
// free list, returning the bytes reserved or 0 on OS failure.
func (c *Collector) Reserve(size uintptr) uintptr {
	assert.Debugf(size > 0, "gc: Reserve called with non-positive size")
	if size == 0 {
		return 0
	}
	h := cell.New(size, 0)
	if h == nil {
		c.host.OnOutOfMemory()
		return 0
	}
	c.free.Link(h)
	return size
}

// Free moves ptr's cell from live to free without finalization. A nil
// ptr is a no-op. Freeing a pointer that is not currently live is a
// programming error, asserted in debug builds.
func (c *Collector) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	h := c.live.PopByPayload(uintptr(ptr))
	assert.Debugf(h != nil, "gc: Free on pointer that is not a live cell payload base")
	if h == nil {
		return
	}
	c.free.Link(h)
}

// Minimize returns every free-list cell's raw block to the OS.
func (c *Collector) Minimize() {
	c.free.Each(func(h *cell.Header) {
		c.free.Unlink(h)
		h.Destroy()
	})
}

func zeroBytes(p unsafe.Pointer, size uintptr) {
	b := unsafe.Slice((*byte)(p), size)
	for i := range b {
		b[i] = 0
	}
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}
