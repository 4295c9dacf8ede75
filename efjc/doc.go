// SPDX-License-Identifier: MIT

// Package efjc implements the extensible freely jointed chain: links are
// harmonic springs of stiffness k about length ℓ, nondimensionalized as
// κ = kℓ²/kT.
//
// The isotensional ensemble is asymptotic in 1/κ at two orders:
//
//	Reduced   γ = L(η) + η/κ
//	          ϱ = -ln(sinh η/η) - η²/(2κ)
//	Full      ϱ adds -ln(1 + η coth η/κ), and γ = -∂ϱ/∂η
//
// The isometric ensemble is the Legendre transform of each order, computed
// by Newton-Raphson inversion of γ(η). ModifiedCanonical expands the reduced
// order under a harmonic tether.
//
// NondimensionalForce and NondimensionalRelativeHelmholtzFreeEnergy are the
// two functions a continuum model integrates over its director grid.
package efjc
