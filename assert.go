//go:build debug

package enumit

import "fmt"

// assertStep panics if a step landed outside [first-1, pastLast].
// Only enabled with -tags debug.
func assertStep[E Enum[E]](method string, v E) {
	var z E
	first, pastLast := z.Bounds()
	if (first <= v && v <= pastLast) || v == first-1 {
		return
	}
	panic(fmt.Sprintf("%s: %T value %d out of range", method, v, v))
}
