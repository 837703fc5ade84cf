package gc

import "errors"

// Lifecycle errors. The reference collector's init/term are void C
// functions; a hosted Go port still needs to reject the misuse cases a
// C caller would get undefined behavior for, so Init and Term return
// errors where the rest of the entry points (matching spec.md §6's
// void/pointer-returning C signatures exactly) do not.
var (
	// ErrHostRequired is returned by Init when host is nil.
	ErrHostRequired = errors.New("gc: Init requires a non-nil Host")
	// ErrAlreadyInitialized is returned by Init called twice without an
	// intervening Term.
	ErrAlreadyInitialized = errors.New("gc: collector already initialized")
	// ErrNotInitialized is returned by Term called before Init, or after
	// a prior Term.
	ErrNotInitialized = errors.New("gc: collector not initialized")
)
