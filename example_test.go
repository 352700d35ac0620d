package enumit

import "fmt"

func fruitName(f fruit) string {
	switch f {
	case apple:
		return "Apple"
	case orange:
		return "Orange"
	case pear:
		return "Pear"
	}
	return fmt.Sprintf("fruit(%d)", int8(f))
}

func Example() {
	fruits := Must[fruit]()

	// Forward ...
	for f := range fruits.All() {
		fmt.Println(fruitName(f))
	}

	// ... and backwards!
	for f := range fruits.Backward() {
		fmt.Println(fruitName(f))
	}

	// Output:
	// Apple
	// Orange
	// Pear
	// Pear
	// Orange
	// Apple
}

func ExampleRange_Begin() {
	fruits := Must[fruit]()

	// Explicit iterators, for hosts that cannot use a range statement.
	for it := fruits.Begin(); it != fruits.End(); it = it.Next() {
		fmt.Println(fruitName(it.Value()))
	}

	// Output:
	// Apple
	// Orange
	// Pear
}

func ExampleRange_ReverseBegin() {
	fruits := Must[fruit]()

	for it := fruits.ReverseBegin(); it != fruits.ReverseEnd(); it = it.Next() {
		fmt.Println(fruitName(it.Value()))
	}

	// Output:
	// Pear
	// Orange
	// Apple
}
