// SPDX-License-Identifier: MIT

// Package asymptotic implements the modified canonical ensemble: a chain
// whose end is tethered by a harmonic potential
//
//	U/kT = (Nλ/2)·|γ - γp|²
//
// of nondimensional stiffness λ = κNℓ²/kT centred at γp = rp/(Nℓ). The
// potential pulls on the chain with η = λ(γp - γ).
//
// Two expansions are provided, and the caller picks one:
//
//	StrongPotential   λ → ∞, about the isometric ensemble, residual O(1/λ)
//	WeakPotential     λ → 0, about the isotensional ensemble, residual O(λ)
//
// Both are built from any pair of ensembles satisfying Isometric and
// Isotensional, so every chain model in this module reuses them.
package asymptotic
