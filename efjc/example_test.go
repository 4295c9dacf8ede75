// SPDX-License-Identifier: MIT

package efjc_test

import (
	"fmt"

	"github.com/katalvlaran/polymers/efjc"
)

func ExampleNew() {
	// 8 links of 1 nm with k = 1e5 J/(mol·nm²), at 300 K.
	model, err := efjc.New(8, 1, 1, 1e5)
	if err != nil {
		panic(err)
	}
	const temperature = 300.0

	fmt.Printf("κ: %.2f\n", model.NondimensionalLinkStiffness(temperature))
	fmt.Printf("reduced force at γ=1: %.3f\n", model.Isometric.Reduced.NondimensionalForce(1, temperature))
	fmt.Printf("full force at γ=1:    %.3f\n", model.Isometric.Full.NondimensionalForce(1, temperature))
	fmt.Printf("stretch at η=5:       %.4f\n", model.Isotensional.Full.NondimensionalEndToEndLengthPerLink(5, temperature))
	// Output:
	// κ: 40.09
	// reduced force at γ=1: 6.332
	// full force at γ=1:    5.911
	// stretch at η=5:       0.9470
}
