// SPDX-License-Identifier: MIT

// Package equilibrium turns an unnormalized nondimensional density over the
// end-to-end length per link γ into a normalized equilibrium distribution.
//
// The normalization Z = ∫ 4πγ²·ρ(γ) dγ is computed once, at construction,
// with the midpoint rule over [zero, upper] (defaults 1e-6, 1 and 100 cells).
// The lower bound keeps the rule away from γ = 0, where exact isometric
// forces carry a 1/γ term. Every later query divides by the stored Z, so
//
//	Density(γ)       = ρ(γ)/Z
//	RadialDensity(γ) = 4πγ²·ρ(γ)/Z
//
// and RadialDensity integrates to one under the same rule.
package equilibrium
