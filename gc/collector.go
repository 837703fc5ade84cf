package gc

import (
	"github.com/rjeczalik/tracegc/internal/assert"
	"github.com/rjeczalik/tracegc/internal/cell"
	"github.com/rjeczalik/tracegc/internal/vec"
)

// Collector is one instance of the tracing collector: two intrusive
// cell lists, two root stores, and an enable counter. The zero value is
// not usable; construct with New and initialize with Init.
//
// Grounded on teacher's hive/alloc.FastAllocator: a plain struct with no
// internal locking of its own, expecting a caller (here, the tracegc
// façade) to serialize access.
type Collector struct {
	host Host

	live cell.List
	free cell.List

	roots  *vec.Vector[uintptr]
	ranges *vec.Vector[addrRange]

	enableCounter int
	initialized   bool
}

// New returns an uninitialized Collector.
func New() *Collector {
	return &Collector{}
}

// Init zero-initializes both lists and both root stores, sets the
// enable counter to zero, and calls host.ThreadInit. Per spec.md
// §4.6.1, Init performs no heap allocation of its own.
func (c *Collector) Init(host Host) error {
	if c.initialized {
		return ErrAlreadyInitialized
	}
	if host == nil {
		return ErrHostRequired
	}

	c.host = host
	c.live = cell.List{}
	c.free = cell.List{}
	c.roots = vec.New[uintptr]()
	c.ranges = vec.New[addrRange]()
	c.enableCounter = 0
	c.initialized = true

	// internal/vec cannot depend on the collector it backs, so its
	// out-of-memory hook is a package-level var this wires to the
	// registered Host on Init.
	vec.OnOutOfMemory = c.onOutOfMemory

	host.ThreadInit()
	logAlloc("gc: collector initialized")
	return nil
}

// Term invokes the finalizer for every live cell whose Finalize
// attribute is set. It does not reclaim memory — the OS reclaims on
// process exit, per spec.md §4.6.1.
func (c *Collector) Term() error {
	if !c.initialized {
		return ErrNotInitialized
	}
	c.live.Each(func(h *cell.Header) {
		if h.HasFinalizer() {
			c.host.Finalize(h.Payload(), false)
		}
	})
	c.initialized = false
	return nil
}

// Enable decrements the enable counter, permitting implicit collection
// once it reaches zero. Decrementing past zero is a programming error,
// asserted in debug builds.
func (c *Collector) Enable() {
	assert.Debugf(c.enableCounter > 0, "gc: Enable called with counter already at zero")
	c.enableCounter--
}

// Disable increments the enable counter, suppressing collection on
// allocation pressure until a matching Enable call. Explicit Collect
// calls always run regardless of the counter.
func (c *Collector) Disable() {
	c.enableCounter++
}

func (c *Collector) collectionAllowed() bool {
	return c.enableCounter == 0
}

func (c *Collector) onOutOfMemory() {
	c.host.OnOutOfMemory()
}
