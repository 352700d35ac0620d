// fruits lists the values of a small enumeration using enumit.
//
// Usage:
//
//	fruits        # list in declaration order
//	fruits -r     # list in reverse order
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dacapoday/enumit"
)

// Fruit follows the enumit protocol: a dedicated past-the-end constant,
// and Bounds naming it along with the first value.
type Fruit int

const (
	Apple Fruit = iota
	Orange
	Pear
	fruitEnd
)

func (Fruit) Bounds() (first, pastLast Fruit) { return Apple, fruitEnd }

var fruits = enumit.Must[Fruit]()

// name maps a fruit to its label. Values outside the enumeration are the
// caller's problem, not enumit's; report them as ordinary errors.
func name(f Fruit) (string, error) {
	switch f {
	case Apple:
		return "Apple", nil
	case Orange:
		return "Orange", nil
	case Pear:
		return "Pear", nil
	}
	return "", fmt.Errorf("unknown fruit %d", int(f))
}

func main() {
	reverseFlag := flag.Bool("r", false, "list in reverse order")
	flag.Parse()

	values := fruits.All()
	if *reverseFlag {
		values = fruits.Backward()
	}

	for f := range values {
		label, err := name(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(label)
	}
}
