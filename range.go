package enumit

import (
	"fmt"
	"iter"
)

// Range iterates all values of an enumeration, from its first value up to
// but not including its past-the-end value.
//
// A Range is stateless: the zero value works, and copies are free. New and
// Must additionally validate the enumeration's Bounds; prefer them over a
// bare literal so a malformed enumeration is caught at construction.
type Range[E Enum[E]] struct{}

// New returns a Range over E.
// Returns ErrBadBounds if E's first value lies after its past-the-end value.
func New[E Enum[E]]() (Range[E], error) {
	var z E
	if first, pastLast := z.Bounds(); first > pastLast {
		return Range[E]{}, fmt.Errorf("enumit: %T: %w", z, ErrBadBounds)
	}
	return Range[E]{}, nil
}

// Must is like New but panics if E's bounds are malformed.
// Intended for package-level variables of known-good enumerations.
func Must[E Enum[E]]() Range[E] {
	r, err := New[E]()
	if err != nil {
		panic(err)
	}
	return r
}

func (Range[E]) bounds() (first, pastLast E) {
	var z E
	return z.Bounds()
}

// Begin returns a forward iterator at the first value.
func (r Range[E]) Begin() Iter[E] {
	first, _ := r.bounds()
	return IterAt(first)
}

// End returns a forward iterator at the past-the-end value.
func (r Range[E]) End() Iter[E] {
	_, pastLast := r.bounds()
	return IterAt(pastLast)
}

// ReverseBegin returns a backward iterator at the last value.
func (r Range[E]) ReverseBegin() ReverseIter[E] {
	_, pastLast := r.bounds()
	// One step pushes the iterator from past-the-end onto the last value.
	return ReverseIterAt(pastLast).Next()
}

// ReverseEnd returns a backward iterator one before the first value.
func (r Range[E]) ReverseEnd() ReverseIter[E] {
	first, _ := r.bounds()
	// One step pushes the iterator from the first value past the beginning.
	return ReverseIterAt(first).Next()
}

// Len returns the number of values in the range.
func (r Range[E]) Len() int {
	first, pastLast := r.bounds()
	return int(pastLast) - int(first)
}

// Contains reports whether v lies within the range.
// It does not check that v has a named constant.
func (r Range[E]) Contains(v E) bool {
	first, pastLast := r.bounds()
	return first <= v && v < pastLast
}

// All returns the values of the range in ascending order,
// for use with a range statement.
func (r Range[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := r.Begin(); it != r.End(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns the values of the range in descending order,
// for use with a range statement.
func (r Range[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := r.ReverseBegin(); it != r.ReverseEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
