// Package tracegc is the runtime façade over gc.Collector: a package
// level singleton guarded by a global mutex, exposing the collector's
// entry points as free functions so a host runtime never needs to
// import the internal gc package directly.
//
// Grounded on teacher's pkg/hive factory pattern: a thin exported
// wrapper package over an internal engine, re-exporting the types
// callers need (Host, Attr, BlkInfo, the attribute constants) so one
// import suffices.
//
// Usage:
//
//	tracegc.Init(myHost)
//	defer tracegc.Term()
//
//	p := tracegc.Malloc(64, 0)
//	tracegc.AddRoot(p)
//	tracegc.Collect()
package tracegc
