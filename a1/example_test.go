package a1_test

import (
	"fmt"

	"github.com/katalvlaran/sheetnet/a1"
)

// ExampleColumnName shows the label sequence around the one- and two-letter boundaries.
func ExampleColumnName() {
	for _, n := range []int{0, 25, 26, 701, 702} {
		fmt.Printf("%d → %s\n", n, a1.ColumnName(n))
	}

	// Output:
	// 0 → A
	// 25 → Z
	// 26 → AA
	// 701 → ZZ
	// 702 → AAA
}

// ExampleRange renders the absolute range of a three-node layer stored in column B.
func ExampleRange() {
	fmt.Println(a1.Range(a1.At(1, 0), a1.At(1, 2)))
	fmt.Println(a1.At(1, 2))

	// Output:
	// $B$1:$B$3
	// B3
}
