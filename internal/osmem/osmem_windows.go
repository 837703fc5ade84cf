//go:build windows

package osmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// RawAlloc reserves and commits size bytes of zero-filled, page-aligned
// memory with VirtualAlloc. Mirrors teacher's mmfile_windows.go choice of
// golang.org/x/sys/windows over raw syscall for Windows-specific APIs.
func RawAlloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(addr)
}

// RawFree releases a block previously returned by RawAlloc.
func RawFree(ptr unsafe.Pointer, size uintptr) error {
	if ptr == nil {
		return nil
	}
	return windows.VirtualFree(uintptr(ptr), 0, windows.MEM_RELEASE)
}
