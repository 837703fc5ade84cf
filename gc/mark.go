package gc

import (
	"github.com/rjeczalik/tracegc/internal/archshim"
	"github.com/rjeczalik/tracegc/internal/cell"
)

// Collect runs the full unmark/mark/sweep cycle described in spec.md
// §4.6.5. It always runs to completion regardless of the enable
// counter; only Malloc's collection-on-miss path respects that counter.
func (c *Collector) Collect() {
	c.unmark()
	c.mark()
	c.sweep()
}

func (c *Collector) unmark() {
	c.live.Each(func(h *cell.Header) {
		h.SetMarked(false)
	})
}

// mark spills the current thread's registers, suspends every other
// thread for the duration of the scan, then traces every root source in
// the order spec.md §3 lists them: statics, stacks, single-word roots,
// ranges. Threads are resumed and registers released via defer, so both
// happen even if a host callback panics mid-scan.
func (c *Collector) mark() {
	stackTop, release := archshim.SpillRegisters()
	defer release()

	c.host.ThreadSuspendAll()
	defer c.host.ThreadResumeAll()

	c.host.ScanStaticData(c.markRange)
	c.host.ThreadScanAll(c.markRange, stackTop)

	for i := 0; i < c.roots.Len(); i++ {
		c.markPtr(c.roots.At(i))
	}
	for i := 0; i < c.ranges.Len(); i++ {
		r := c.ranges.At(i)
		c.markRange(r.from, r.to)
	}
}

// markPtr resolves addr against the live list exactly as AddrOf does,
// then traces it recursively. It duplicates AddrOf's lookup rather than
// calling it, to avoid an unsafe.Pointer round-trip on this recursive
// hot path.
//
// The algorithm is intentionally recursive; depth is bounded only by
// the heap's reachability graph, not converted to an explicit mark
// stack (see DESIGN.md for the considered-and-rejected alternative).
func (c *Collector) markPtr(addr uintptr) {
	h := c.live.Find(func(h *cell.Header) bool {
		return h.ContainsPayloadAddr(addr)
	})
	if h == nil || h.Marked() {
		return
	}
	h.SetMarked(true)
	if h.HasPointers() {
		h.Words(func(wordAddr uintptr) {
			c.markPtr(cell.ReadWord(wordAddr))
		})
	}
}

// markRange is the MarkRangeFunc passed to Host callbacks and used for
// registered ranges: every aligned word in [from, to) is treated as a
// candidate pointer and traced.
func (c *Collector) markRange(from, to uintptr) {
	cell.ScanRange(from, to, func(addr uintptr) {
		c.markPtr(cell.ReadWord(addr))
	})
}
