// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidGrid indicates a grid with no cells or a degenerate interval.
var ErrInvalidGrid = errors.New("quadrature: grid needs n > 0 and a < b")

// Grid holds the midpoint abscissae of [A, B] split into len(Points) cells
// and the single weight Δ shared by every cell.
// Build it once and reuse it across integrands of the same domain.
type Grid struct {
	A, B   float64
	Points []float64
	Weight float64
}

// NewGrid builds the n-cell midpoint grid of [a, b].
//
// Errors:
//   - ErrInvalidGrid when n <= 0 or a >= b.
//
// Complexity: O(n) time and memory.
func NewGrid(a, b float64, n int) (Grid, error) {
	if n <= 0 || !(a < b) {
		return Grid{}, fmt.Errorf("NewGrid(%g, %g, %d): %w", a, b, n, ErrInvalidGrid)
	}
	dx := (b - a) / float64(n)
	pts := make([]float64, n)
	if n == 1 {
		pts[0] = a + dx/2
	} else {
		floats.Span(pts, a+dx/2, b-dx/2)
	}

	return Grid{A: a, B: b, Points: pts, Weight: dx}, nil
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.Points)
}

// Sample evaluates f at every abscissa.
func (g Grid) Sample(f func(float64) float64) []float64 {
	out := make([]float64, len(g.Points))
	for i, x := range g.Points {
		out[i] = f(x)
	}

	return out
}

// Integrate returns the midpoint sum of f on g.
func (g Grid) Integrate(f func(float64) float64) float64 {
	return IntegrateGrid(g.Sample(f), g.Weight)
}

// IntegrateGrid2D integrates f over gx × gy using the product weight.
// Samples are accumulated row by row in gx order.
//
// Complexity: O(gx.Len()·gy.Len()) evaluations of f.
func IntegrateGrid2D(f func(x, y float64) float64, gx, gy Grid) float64 {
	row := make([]float64, gy.Len())
	var s float64
	for _, x := range gx.Points {
		for j, y := range gy.Points {
			row[j] = f(x, y)
		}
		s += floats.Sum(row)
	}

	return s * gx.Weight * gy.Weight
}
