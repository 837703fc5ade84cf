package gc

import "github.com/rjeczalik/tracegc/internal/cell"

// sweep iterates the live list, moving every unmarked cell to the free
// list and invoking its finalizer first if Finalize is set. Finalizers
// always run with deterministic=false, per spec.md §4.6.5/§6.
func (c *Collector) sweep() {
	var swept, finalized int
	c.live.Each(func(h *cell.Header) {
		if h.Marked() {
			return
		}
		c.live.Unlink(h)
		if h.HasFinalizer() {
			c.host.Finalize(h.Payload(), false)
			finalized++
		}
		c.free.Link(h)
		swept++
	})
	logAlloc("gc: sweep complete", "swept", swept, "finalized", finalized)
}
