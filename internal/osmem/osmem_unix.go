//go:build unix

package osmem

import (
	"errors"
	"syscall"
	"unsafe"
)

// RawAlloc maps size bytes of anonymous, zero-filled memory. The mapping
// is private to this process and not backed by any file, so freed pages
// are simply unmapped rather than flushed anywhere. Grounded on the same
// syscall.Mmap call teacher's internal/mmfile and hive/loader_unix.go use
// for file-backed mappings, here given -1/MAP_ANON instead of a real fd.
func RawAlloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	data, err := syscall.Mmap(-1, 0, int(size), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_ANON|syscall.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// RawFree unmaps a block previously returned by RawAlloc.
func RawFree(ptr unsafe.Pointer, size uintptr) error {
	if ptr == nil || size == 0 {
		return nil
	}
	data := unsafe.Slice((*byte)(ptr), size)
	err := syscall.Munmap(data)
	if errors.Is(err, syscall.EINVAL) {
		// Teacher's mmfile cleanup treats a double-unmap as a no-op;
		// we extend the same tolerance to a stale size/address pair.
		return nil
	}
	return err
}
