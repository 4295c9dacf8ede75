// SPDX-License-Identifier: MIT

// Package quadrature provides the fixed-rule integrators used for
// normalization constants and continuum averages.
//
// Every rule is the midpoint Riemann sum: an interval [a, b] split into n
// equal cells of width Δ = (b-a)/n, sampled at a + (k+½)Δ, each sample
// weighted by Δ. There is no adaptivity and no error estimate; accuracy is
// the caller's choice of n.
//
// Usage:
//
//	z := quadrature.Integrate1D(f, 1e-6, 1, quadrature.Points)
//
//	g := quadrature.NewGrid(0, math.Pi, quadrature.GridPoints)
//	vals := g.Sample(f)
//	z = quadrature.IntegrateGrid(vals, g.Weight)
package quadrature
