// Package gc implements the collector core: free/live lists, root
// registration, the mark/sweep algorithm, the allocator that drives
// collection, and the enable/disable counter that gates implicit
// collection on allocation pressure.
//
// Every exported method on Collector is a stable entry point a host
// runtime calls directly; none of them lock anything themselves — the
// root github.com/rjeczalik/tracegc package supplies the single global
// mutex that serializes access, matching the layering teacher's
// pkg/hive puts over hive/alloc.
package gc
