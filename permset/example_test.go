// SPDX-License-Identifier: MIT
package permset_test

import (
	"fmt"

	"github.com/katalvlaran/permav/permset"
)

// ExampleParse shows strategy selection from the basis shape.
func ExampleParse() {
	for _, text := range []string{"", "10", "120", "0"} {
		s, err := permset.Parse(text)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%q %s %v\n", text, s.Kind(), s.Counts(4))
	}

	// Output:
	// "" all [1 1 2 6 24]
	// "10" monotone [1 1 1 1 1]
	// "120" avoidance [1 1 2 5 14]
	// "0" finite [1 0 0 0 0]
}
