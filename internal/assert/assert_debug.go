//go:build !tracegc_release

package assert

import "fmt"

func debugf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
