package gc

import (
	"log/slog"
	"os"
)

// debugAlloc mirrors teacher's hive/alloc debug toggle: an opt-in,
// env-controlled verbose logger for allocation and collection cycle
// diagnostics only. It never changes collection semantics — spec.md §6
// forbids environment variables from being a *collector* interface, but
// says nothing about developer diagnostics.
var debugAlloc = os.Getenv("TRACEGC_DEBUG_ALLOC") != ""

var logger = slog.New(slog.DiscardHandler)

// SetLogger replaces the package's diagnostic logger. Passing nil
// resets it to a discarding handler.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.DiscardHandler)
		return
	}
	logger = l
}

func logAlloc(msg string, args ...any) {
	if debugAlloc {
		logger.Debug(msg, args...)
	}
}
