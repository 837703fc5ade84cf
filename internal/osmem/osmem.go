// Package osmem requests and releases page-aligned raw memory directly
// from the operating system, bypassing Go's own garbage-collected heap
// entirely. Everything the collector manages — cell headers, payloads,
// and the dynamic vector's backing store — lives in memory obtained
// here. On unix and windows that memory comes from the OS mapping
// primitives, never from make/new, so the Go runtime's own collector
// never scans or relocates it; the fallback build for other targets
// uses pinned memory from make instead. This mirrors the split teacher
// uses in internal/mmfile for platform-specific memory mapping, adapted
// from mapping an existing file to mapping anonymous pages.
package osmem

// pageSize is the allocation granularity assumed by the fallback
// trampoline (spec.md §4.2's "over-allocate by one page" recipe). The
// unix and windows implementations do not use it: their mapping
// primitives return page-aligned memory themselves.
const pageSize = 4096

// RawAlloc requests size bytes of zeroed, page-backed memory from the
// OS. It returns nil on failure; it must never panic — spec.md §4.2
// requires OOM to surface through the collector's own on_out_of_memory
// callback, not through a language-level fault.
//
// (Implemented per-platform in osmem_unix.go, osmem_windows.go, and
// osmem_fallback.go.)

// RawFree releases a block previously returned by RawAlloc. size must
// match the size originally requested. Failures are returned as an
// error, but, per spec.md §7, the collector treats minimize() as
// best-effort: cell.Header.Destroy discards that error.
