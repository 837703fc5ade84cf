package cell

// List is an intrusive singly linked list of cells, threaded through
// Header.next. It never allocates: linking and unlinking only rewrite
// pointers already living inside the headers themselves. Both the live
// list and the free list from spec.md §3 are a List.
//
// Grounded on teacher's hive/alloc free-list bookkeeping (best-fit walk
// over an intrusive chain) adapted from byte offsets to *Header links.
type List struct {
	head *Header
}

// Link pushes h onto the front of the list, O(1).
func (l *List) Link(h *Header) {
	h.SetNext(l.head)
	l.head = h
}

// Unlink removes h from the list, O(n). Reports whether h was found.
func (l *List) Unlink(h *Header) bool {
	if l.head == h {
		l.head = h.Next()
		h.SetNext(nil)
		return true
	}
	for cur := l.head; cur != nil; cur = cur.Next() {
		if cur.Next() == h {
			cur.SetNext(h.Next())
			h.SetNext(nil)
			return true
		}
	}
	return false
}

// Find returns the first cell for which pred returns true, or nil.
func (l *List) Find(pred func(*Header) bool) *Header {
	for cur := l.head; cur != nil; cur = cur.Next() {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// FindByPayload returns the cell whose payload address equals addr, or
// nil. Used by SizeOf/Query/GetAttr/SetAttr/ClearAttr and Realloc to
// resolve a raw pointer back to its header without trusting the caller.
func (l *List) FindByPayload(addr uintptr) *Header {
	return l.Find(func(h *Header) bool {
		return uintptr(h.Payload()) == addr
	})
}

// Pop removes and returns the first cell for which pred returns true, or
// nil if none matches.
func (l *List) Pop(pred func(*Header) bool) *Header {
	h := l.Find(pred)
	if h == nil {
		return nil
	}
	l.Unlink(h)
	return h
}

// PopByPayload removes and returns the cell whose payload address equals
// addr, or nil.
func (l *List) PopByPayload(addr uintptr) *Header {
	return l.Pop(func(h *Header) bool {
		return uintptr(h.Payload()) == addr
	})
}

// PopWithCapacity removes and returns the first free cell whose capacity
// is at least minCapacity, the free-list best-effort reuse search
// spec.md §4.6.2's Malloc performs before falling back to a fresh
// allocation. It is a first-fit search, not best-fit: spec.md leaves the
// search strategy unspecified and the teacher's own allocator favors the
// simpler, cheaper scan.
func (l *List) PopWithCapacity(minCapacity uintptr) *Header {
	return l.Pop(func(h *Header) bool {
		return h.Capacity() >= minCapacity
	})
}

// Each visits every cell in the list. It captures each cell's successor
// before invoking fn, so fn may safely unlink the cell it was just
// passed (as the sweep phase does).
func (l *List) Each(fn func(*Header)) {
	cur := l.head
	for cur != nil {
		next := cur.Next()
		fn(cur)
		cur = next
	}
}

// Empty reports whether the list has no cells.
func (l *List) Empty() bool { return l.head == nil }
