// Package vec provides a minimal growable sequence that goes straight to
// internal/osmem for its backing store, so it can be used to hold the
// collector's roots and ranges before the collector itself exists. It
// must not depend on anything the collector is specified here to
// provide — no make/append over Go's own heap-managed slices — matching
// spec.md §4.3 and §9's "self-hosted growable vector" requirement.
//
// Growth arithmetic is grounded on teacher's internal/buf overflow-safe
// helpers (adapted to uintptr in this module's internal/buf) and on the
// capacity-doubling idiom hive/alloc/size_classes.go uses for its
// boundary table.
package vec

import (
	"unsafe"

	"github.com/rjeczalik/tracegc/internal/buf"
	"github.com/rjeczalik/tracegc/internal/osmem"
)

// minBump is the minimum capacity increase on a full Append, per
// spec.md §4.3.
const minBump = 4

// OnOutOfMemory is called when growth cannot obtain memory from
// internal/osmem. Per spec.md §4.3, allocation failure invokes the
// host's on_out_of_memory callback; the collector core wires this to the
// registered Host at Init time. Tests may override it to observe the
// failure instead of the default, which panics (it is not expected to
// return, matching spec.md §6).
var OnOutOfMemory func() = func() {
	panic("vec: out of memory and no Host.OnOutOfMemory installed")
}

// Vector is a growable sequence of T backed by raw OS memory. The zero
// value is not usable; construct with New.
type Vector[T any] struct {
	data     unsafe.Pointer
	len      int
	cap      int
	elemSize uintptr
}

// New returns an empty Vector with zero capacity.
func New[T any]() *Vector[T] {
	var zero T
	return &Vector[T]{elemSize: unsafe.Sizeof(zero)}
}

// Len returns the number of elements currently stored.
func (v *Vector[T]) Len() int { return v.len }

// At returns the element at index i. i must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	return *v.slot(i)
}

// Set overwrites the element at index i. i must be in [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	*v.slot(i) = x
}

func (v *Vector[T]) slot(i int) *T {
	base := uintptr(v.data) + uintptr(i)*v.elemSize
	return (*T)(unsafe.Pointer(base))
}

// Append adds x to the end of the vector, amortized O(1). Capacity
// doubles when full, with a minimum bump of four, per spec.md §4.3. If
// growth fails and OnOutOfMemory returns, x is not stored.
func (v *Vector[T]) Append(x T) {
	if v.len == v.cap {
		v.grow()
		if v.len == v.cap {
			return
		}
	}
	*v.slot(v.len) = x
	v.len++
}

func (v *Vector[T]) grow() {
	newCap := v.cap * 2
	if newCap-v.cap < minBump {
		newCap = v.cap + minBump
	}

	byteSize, ok := buf.MulOverflowSafe(uintptr(newCap), v.elemSize)
	if !ok {
		OnOutOfMemory()
		return
	}

	newData := osmem.RawAlloc(byteSize)
	if newData == nil {
		OnOutOfMemory()
		return
	}

	if v.data != nil {
		oldByteSize := uintptr(v.cap) * v.elemSize
		copyBytes(newData, v.data, uintptr(v.len)*v.elemSize)
		osmem.RawFree(v.data, oldByteSize)
	}

	v.data = newData
	v.cap = newCap
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	dstSlice := unsafe.Slice((*byte)(dst), n)
	srcSlice := unsafe.Slice((*byte)(src), n)
	copy(dstSlice, srcSlice)
}

// RemoveFirst removes the first element for which pred returns true,
// shifting the tail down by one slot, O(n). Reports whether an element
// was removed.
func (v *Vector[T]) RemoveFirst(pred func(T) bool) bool {
	for i := 0; i < v.len; i++ {
		if pred(v.At(i)) {
			v.removeAt(i)
			return true
		}
	}
	return false
}

func (v *Vector[T]) removeAt(i int) {
	for j := i; j < v.len-1; j++ {
		v.Set(j, v.At(j+1))
	}
	v.len--
}

// RemoveFirstEqual is RemoveFirst specialized to equality, per spec.md
// §4.3. It is a free function rather than a method because Vector[T] is
// parameterized over any T, while equality requires T to be comparable.
func RemoveFirstEqual[T comparable](v *Vector[T], x T) bool {
	return v.RemoveFirst(func(y T) bool { return y == x })
}

// Clear empties the vector and releases its backing store, shrinking
// capacity to zero per spec.md §4.3.
func (v *Vector[T]) Clear() {
	if v.data != nil {
		osmem.RawFree(v.data, uintptr(v.cap)*v.elemSize)
	}
	v.data = nil
	v.len = 0
	v.cap = 0
}
