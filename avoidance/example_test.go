// SPDX-License-Identifier: MIT
package avoidance_test

import (
	"fmt"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/basis"
)

// ExampleClass_Counts enumerates Av(120): the Catalan numbers.
func ExampleClass_Counts() {
	c, err := avoidance.Of(basis.MustParse("120"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Counts(7))

	// Output:
	// [1 1 2 5 14 42 132 429]
}

// ExampleClass_All walks Av(012, 210) to its end; the class is finite.
func ExampleClass_All() {
	c := avoidance.MustOf(basis.MustParse("012_210"))
	for p := range c.All() {
		if p.Len() == 4 {
			fmt.Print(p.Digits(), " ")
		}
	}
	fmt.Println()

	// Output:
	// 1302 1032 2301 2031
}
