//go:build tracegc_release

package assert

func debugf(cond bool, format string, args ...any) {}
