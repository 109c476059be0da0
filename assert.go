package pixel

import "fmt"

// assertf panics with a formatted message when cond is false and the package
// is built with the pixeldebug tag. Release builds ignore it.
func assertf(cond bool, format string, args ...any) {
	if debugAsserts && !cond {
		panic(fmt.Sprintf("pixel: "+format, args...))
	}
}
