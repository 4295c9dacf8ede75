// SPDX-License-Identifier: MIT

package fjc_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polymers/fjc"
	"github.com/katalvlaran/polymers/physics"
)

// ExampleNew builds an eight-link chain and compares the exact isometric
// force at half extension with its large-N Legendre approximation.
func ExampleNew() {
	model, err := fjc.New(8, 1.0, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("contour length: %.1f nm\n", model.ContourLength)
	fmt.Printf("exact force:    %.3f\n", model.Isometric.NondimensionalForce(0.5))
	fmt.Printf("Legendre force: %.3f\n", model.Isometric.Legendre.NondimensionalForce(0.5))
	fmt.Printf("stretch at η=1: %.3f\n", model.Isotensional.NondimensionalEndToEndLengthPerLink(1))
	// Output:
	// contour length: 8.0 nm
	// exact force:    1.536
	// Legendre force: 1.797
	// stretch at η=1: 0.313
}

// ExampleNew_invalid shows the sentinel returned for a chain that is too short.
func ExampleNew_invalid() {
	_, err := fjc.New(1, 1.0, 1.0)
	fmt.Println(errors.Is(err, physics.ErrInvalidParameter))
	// Output:
	// true
}
