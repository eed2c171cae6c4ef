package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// ExampleConvertTo materializes a packed upper-triangular matrix densely.
func ExampleConvertTo() {
	up, _ := matrix.NewUpperTriangular(3)
	matrix.Fill(up, func(i, j int) float64 { return float64(1 + i + j) })

	dense, _ := matrix.ConvertTo(up, matrix.Normal)
	fmt.Print(dense)
	fmt.Println(len(up.RawData()), len(dense.RawData()))

	// Output:
	// [1, 2, 3]
	// [0, 3, 4]
	// [0, 0, 5]
	// 6 9
}

// ExampleVerify shows the first mismatching cell being reported.
func ExampleVerify() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	b.Set(1, 0, 3.5)

	ok, mm := matrix.Verify(a, b)
	fmt.Println(ok, mm.Row, mm.Col)

	// Output:
	// false 1 0
}
