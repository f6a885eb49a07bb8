package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hypertile/matrix"
)

// ExampleInverse inverts a rotation and checks that the product is the identity.
func ExampleInverse() {
	R := matrix.Cspin(0, 1, math.Pi/3)
	inv := matrix.Inverse(R, 3)
	fmt.Println(matrix.EqMatrix(R.Mul(inv), matrix.Id, 1e-12))
	// Output: true
}

// ExampleDet shows the determinant of a scaling.
func ExampleDet() {
	d, _ := matrix.Det(matrix.Diag(2, 3, 4, 1), 4)
	fmt.Println(d)
	// Output: 24
}
