// SPDX-License-Identifier: MIT

package quadrature

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// Points is the default number of cells for one-dimensional integrals.
	Points = 100

	// GridPoints is the default number of cells per axis for two-dimensional grids.
	GridPoints = 256
)

// Integrate1D returns Σ_{k<n} f(a+(k+½)Δ)·Δ with Δ = (b-a)/n.
// n <= 0 yields NaN.
//
// Complexity: O(n) evaluations of f.
func Integrate1D(f func(float64) float64, a, b float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	dx := (b - a) / float64(n)
	var s float64
	for k := 0; k < n; k++ {
		s += f(a + (float64(k)+0.5)*dx)
	}

	return s * dx
}

// Integrate2D integrates f over [ax, bx]×[ay, by] with n cells per axis.
// n <= 0 yields NaN.
//
// Complexity: O(n²) evaluations of f.
func Integrate2D(f func(x, y float64) float64, ax, bx, ay, by float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	dx := (bx - ax) / float64(n)
	dy := (by - ay) / float64(n)
	var s, x float64
	for i := 0; i < n; i++ {
		x = ax + (float64(i)+0.5)*dx
		for j := 0; j < n; j++ {
			s += f(x, ay+(float64(j)+0.5)*dy)
		}
	}

	return s * dx * dy
}

// Integrate2DSymmetric integrates a symmetric f(x,y) = f(y,x) over [a, b]²
// with n cells per axis, evaluating only the diagonal and the upper triangle.
// n <= 0 yields NaN.
//
// Complexity: n(n+1)/2 evaluations of f.
func Integrate2DSymmetric(f func(x, y float64) float64, a, b float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	d := (b - a) / float64(n)
	var diag, off, x float64
	for i := 0; i < n; i++ {
		x = a + (float64(i)+0.5)*d
		diag += f(x, x)
		for j := i + 1; j < n; j++ {
			off += f(x, a+(float64(j)+0.5)*d)
		}
	}

	return (diag + 2*off) * d * d
}

// IntegrateGrid applies one uniform weight to precomputed samples.
func IntegrateGrid(values []float64, weight float64) float64 {
	return floats.Sum(values) * weight
}
