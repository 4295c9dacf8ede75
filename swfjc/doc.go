// SPDX-License-Identifier: MIT

// Package swfjc implements the square-well freely jointed chain: each link
// length is free to vary over [ℓ, ℓ + w] at no energy cost and cannot leave
// that range.
//
// With ς = 1 + w/ℓ the per-link isotensional partition function is the
// shell integral
//
//	g(η) = ∫₁^ς s² sinh(ηs)/(ηs) ds
//
// and the ensemble is exact for every N: ϱ = -ln(g(η)/g(0)), γ = g'/g.
// g is summed as a positive series for small forces and in closed form,
// scaled by exp(-ς|η|), otherwise.
//
// The isometric ensemble is the Legendre transform, accurate for large N.
// Its equilibrium distribution lives on [0, ς).
package swfjc
