// Package enumit treats a closed, contiguous enumeration as an iterable range.
//
// An enumeration opts in by satisfying the Enum protocol: an integer-based
// type with a Bounds method naming its first value and the value one past its
// last. A Range over such a type yields every value in between, forward or
// backward, without a hand-written iterator per enumeration:
//
//	type Fruit int
//
//	const (
//		Apple Fruit = iota
//		Orange
//		Pear
//		fruitEnd
//	)
//
//	func (Fruit) Bounds() (first, pastLast Fruit) { return Apple, fruitEnd }
//
//	for f := range enumit.Must[Fruit]().All() {
//		// Apple, Orange, Pear
//	}
//
// Ranges and iterators are plain values: no heap state, no synchronization,
// freely copyable across goroutines.
package enumit

import "golang.org/x/exp/constraints"

// Integer is the set of integer types an enumeration may be based on.
type Integer = constraints.Integer

// Enum is the protocol an enumeration type must satisfy to be iterable.
//
// Bounds returns the first value of the enumeration and the value one past
// the last; the two may be equal, in which case the range is empty. Bounds
// must not depend on its receiver, since it is read off the zero value.
//
// Every integer between first and pastLast is produced during iteration,
// whether or not it has a named constant. Keeping the values contiguous is
// the enumeration author's responsibility.
type Enum[E any] interface {
	Integer
	Bounds() (first, pastLast E)
}
