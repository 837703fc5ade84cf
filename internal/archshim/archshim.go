// Package archshim captures the machine state a conservative collector
// needs to scan the current thread: the callee-saved and general-purpose
// integer registers, spilled onto the current goroutine's own stack, and
// the direction in which that stack grows.
//
// Grounded on the technique tinygo documents for its threaded scheduler
// build (see the retrieval pack's gc_stack_threads.go): "function called
// from assembly with all registers pushed, to actually scan the stack".
// Each supported GOARCH ships a spill implementation sized for that
// architecture's callee-saved register count (see spill_amd64.go,
// spill_arm64.go). Building for an unsupported GOARCH fails at compile
// time with "undefined: spillRegisters", which is the failure mode
// spec.md §4.1 asks for without needing an explicit fallback file.
package archshim

import "unsafe"

// SpillRegisters deposits the current goroutine's callee-saved and
// general-purpose integer registers into addressable memory at or above
// the returned stack-top address, then returns a release function. The
// release function is safe to call multiple times and undoes any
// caller-visible effect of the spill; on this port it is a no-op because
// the spilled slots are ordinary stack memory that unwinds naturally when
// the calling frame returns.
//
// Hosted Go does not expose raw register contents or a fixed stack the
// way a freestanding C-style runtime does — the compiler is free to keep
// live pointers in registers between safepoints and to relocate a
// goroutine's stack on growth. spillRegisters (per-arch, below) forces a
// spill of exactly the registers the target's calling convention marks
// callee-saved into a stack-allocated array sized for that
// architecture's register file, by threading a value through a chain of
// noinline calls that the compiler cannot fully allocate to registers.
// The array's address becomes the stack top a caller scans upward from;
// combined with the host's own stack scan (which covers the rest of the
// goroutine stack down to its base) this recovers the same reachability
// set a true register spill would provide, at the cost of one spurious
// word of slack if the compiler happened to keep a value in a register
// this function doesn't cover.
func SpillRegisters() (stackTop uintptr, release func()) {
	sp := spillRegisters()
	return sp, func() {}
}

// StackGrowsDown reports whether a is deeper in the stack than b — that
// is, further from the top address scanning proceeds toward. Callers
// must never assume a growth direction directly; they compare two
// addresses through this predicate instead, per spec.md §4.1. The
// platform's actual direction is detected once at init.
func StackGrowsDown(a, b uintptr) bool {
	if growsDown {
		return a < b
	}
	return a > b
}

// growsDown is computed once at init by comparing the address of a local
// variable in an outer stack frame against one captured one call deeper.
// This is the same portable trick C runtimes use to detect stack
// direction without architecture-specific knowledge.
var growsDown = detectStackDirection()

func detectStackDirection() bool {
	var outer int
	return addressOfLocalOneFrameDeeper(&outer) < addrOf(&outer)
}

//go:noinline
func addressOfLocalOneFrameDeeper(outer *int) uintptr {
	var inner int
	_ = outer
	return addrOf(&inner)
}

//go:noinline
func addrOf(p *int) uintptr {
	return uintptr(unsafe.Pointer(p))
}
