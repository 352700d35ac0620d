package enumit

// cursor holds the state shared by both iterator variants: one wrapped
// enumeration value. The variants differ only in which direction Next moves.
type cursor[E Enum[E]] struct {
	cur E
}

// Value returns the wrapped enumeration value.
func (c cursor[E]) Value() E {
	return c.cur
}

// Iter is a forward iterator over the values of an enumeration.
// It is a plain value; moving it returns a new Iter and leaves the
// original untouched. Two Iters are equal iff their wrapped values are,
// so == and != work directly:
//
//	for it := r.Begin(); it != r.End(); it = it.Next() {
//		v := it.Value()
//		// process v
//	}
//
// Stepping past End (or before Begin) is not checked and yields a value
// outside the enumeration; a loop terminated by sentinel equality never
// observes one. Build with -tags debug to panic on such steps instead.
type Iter[E Enum[E]] struct {
	cursor[E]
}

// IterAt returns a forward iterator wrapping v.
// No validation is performed; v is trusted to lie within the enumeration
// or one step past either boundary.
func IterAt[E Enum[E]](v E) Iter[E] {
	return Iter[E]{cursor[E]{v}}
}

// Next returns the iterator moved one value up.
func (it Iter[E]) Next() Iter[E] {
	it.cur++
	assertStep("Iter.Next", it.cur)
	return it
}

// Prev returns the iterator moved one value down.
func (it Iter[E]) Prev() Iter[E] {
	it.cur--
	assertStep("Iter.Prev", it.cur)
	return it
}

// Equal reports whether both iterators wrap the same value.
func (it Iter[E]) Equal(other Iter[E]) bool {
	return it.cur == other.cur
}

// ReverseIter is a backward iterator over the values of an enumeration.
//
// Next always means "toward this iterator's end sentinel": for the reverse
// variant that is one value down, and Prev is one value up. Apart from the
// flipped direction it behaves exactly like Iter, including the unchecked
// stepping and value semantics.
type ReverseIter[E Enum[E]] struct {
	cursor[E]
}

// ReverseIterAt returns a backward iterator wrapping v.
// Like IterAt, it performs no validation.
func ReverseIterAt[E Enum[E]](v E) ReverseIter[E] {
	return ReverseIter[E]{cursor[E]{v}}
}

// Next returns the iterator moved one value down.
func (it ReverseIter[E]) Next() ReverseIter[E] {
	it.cur--
	assertStep("ReverseIter.Next", it.cur)
	return it
}

// Prev returns the iterator moved one value up.
func (it ReverseIter[E]) Prev() ReverseIter[E] {
	it.cur++
	assertStep("ReverseIter.Prev", it.cur)
	return it
}

// Equal reports whether both iterators wrap the same value.
func (it ReverseIter[E]) Equal(other ReverseIter[E]) bool {
	return it.cur == other.cur
}
