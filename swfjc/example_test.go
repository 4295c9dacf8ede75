// SPDX-License-Identifier: MIT

package swfjc_test

import (
	"fmt"

	"github.com/katalvlaran/polymers/swfjc"
)

func ExampleNew() {
	// 8 links of 1 nm free to stretch by up to 0.5 nm.
	model, err := swfjc.New(8, 1, 1, 0.5)
	if err != nil {
		panic(err)
	}

	fmt.Printf("ς: %.1f\n", model.Response.MaximumStretch)
	fmt.Printf("γ at η=1: %.4f\n", model.Response.NondimensionalEndToEndLengthPerLink(1))
	fmt.Printf("ϱ at η=1: %.4f\n", model.Response.NondimensionalRelativeGibbsFreeEnergyPerLink(1))
	fmt.Printf("η at γ=1.2: %.3f\n", model.Isometric.NondimensionalForce(1.2, 300))
	// Output:
	// ς: 1.5
	// γ at η=1: 0.5054
	// ϱ at η=1: -0.2646
	// η at γ=1.2: 5.923
}
