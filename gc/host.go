package gc

import "unsafe"

// MarkRangeFunc is the callback a Host invokes once per address range
// that may contain roots. The collector treats every aligned word in
// [from, to) as a candidate pointer.
type MarkRangeFunc func(from, to uintptr)

// Host is the six-primitive callback contract the collector's mutator
// runtime implements, spec.md §6. Every method is an external black
// box; the collector never inspects a Host's internals, only calls
// through this interface.
type Host interface {
	// OnOutOfMemory is invoked when a raw allocation backing Malloc,
	// Reserve, or a root-vector append fails. It is not expected to
	// return; callers that do return get a nil pointer or zero result
	// from the entry point that triggered it, and a root or range whose
	// append failed is not registered.
	OnOutOfMemory()

	// Finalize runs the destructor for the object at payload. The
	// collector always passes deterministic=false; it never finalizes
	// synchronously from Free.
	Finalize(payload unsafe.Pointer, deterministic bool)

	// ScanStaticData invokes mark once per static-data range the host
	// runtime knows about.
	ScanStaticData(mark MarkRangeFunc)

	// ThreadInit installs the host's thread library. Called once, from
	// Collector.Init.
	ThreadInit()

	// ThreadSuspendAll pauses every mutator thread except the caller.
	// Only the mark phase of Collect brackets a call to this.
	ThreadSuspendAll()

	// ThreadResumeAll resumes every thread paused by the matching
	// ThreadSuspendAll call.
	ThreadResumeAll()

	// ThreadScanAll invokes mark for each thread's stack range. The
	// caller's own thread is scanned down to stackTop, the address
	// internal/archshim.SpillRegisters produced.
	ThreadScanAll(mark MarkRangeFunc, stackTop uintptr)
}
