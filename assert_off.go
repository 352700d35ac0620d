//go:build !debug

package enumit

// assertStep is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertStep[E Enum[E]](string, E) {}
