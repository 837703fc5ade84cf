// Package assert enforces the preconditions the collector's specification
// marks as "violated precondition; behavior undefined". In a normal build
// they panic with a descriptive message; a program built with the
// tracegc_release build tag compiles them out entirely, matching the
// spec's "debug-only assertion; optimized builds have undefined behavior".
package assert

// Debugf panics with a formatted message when cond is false. Call sites
// name the invariant being checked, not the caller, so a panic reads as
// "gc: enable() called with counter already zero" rather than a bare
// index-out-of-range.
func Debugf(cond bool, format string, args ...any) {
	debugf(cond, format, args...)
}
