// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polymers/quadrature"
)

func ExampleIntegrate1D() {
	fmt.Printf("%.6f\n", quadrature.Integrate1D(func(x float64) float64 { return x * x }, 0, 1, quadrature.Points))
	// Output:
	// 0.333325
}

func ExampleGrid() {
	g, err := quadrature.NewGrid(0, math.Pi, 200)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Len())
	fmt.Printf("%.4f\n", g.Integrate(math.Sin))
	// Output:
	// 200
	// 2.0000
}
