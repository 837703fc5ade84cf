package gc

import "unsafe"

// fakeHost is a minimal Host used throughout this package's tests. It
// has no real threads to suspend or scan, so ScanStaticData and
// ThreadScanAll only replay ranges/pointers the test registers
// explicitly through fakeHost.statics/stacks — matching how a real host
// runtime would drive the same callbacks from its own bookkeeping.
type fakeHost struct {
	statics []addrRange
	stacks  []addrRange

	oomCalls        int
	finalizedPtrs   []unsafe.Pointer
	finalizedDeterm []bool

	threadInitCalls int
	suspendCalls    int
	resumeCalls     int
}

func newFakeHost() *fakeHost {
	return &fakeHost{}
}

func (h *fakeHost) OnOutOfMemory() {
	h.oomCalls++
}

func (h *fakeHost) Finalize(payload unsafe.Pointer, deterministic bool) {
	h.finalizedPtrs = append(h.finalizedPtrs, payload)
	h.finalizedDeterm = append(h.finalizedDeterm, deterministic)
}

func (h *fakeHost) ScanStaticData(mark MarkRangeFunc) {
	for _, r := range h.statics {
		mark(r.from, r.to)
	}
}

func (h *fakeHost) ThreadInit() {
	h.threadInitCalls++
}

func (h *fakeHost) ThreadSuspendAll() {
	h.suspendCalls++
}

func (h *fakeHost) ThreadResumeAll() {
	h.resumeCalls++
}

func (h *fakeHost) ThreadScanAll(mark MarkRangeFunc, stackTop uintptr) {
	for _, r := range h.stacks {
		mark(r.from, r.to)
	}
}

func newTestCollector() (*Collector, *fakeHost) {
	c := New()
	host := newFakeHost()
	if err := c.Init(host); err != nil {
		panic(err)
	}
	return c, host
}
