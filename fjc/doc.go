// SPDX-License-Identifier: MIT

// Package fjc implements the freely jointed chain: N rigid links of length
// ℓ joined by free hinges of mass m.
//
// Ensembles:
//
//	Isometric             exact, finite N: alternating binomial sum
//	Isometric.Legendre    large-N: η = L⁻¹(γ)
//	Isotensional          exact for all N: γ = L(η), ϱ = -ln(sinh η/η)
//	Isotensional.Legendre Helmholtz free energy ϱ + ηγ
//	ModifiedCanonical     strong/weak tether expansions (package asymptotic)
//
// Naming follows one grid: a quantity X comes as X (total), XPerLink,
// RelativeX (X minus its value at zero), and NondimensionalX in units of kT,
// ℓ and Nℓ. Dimensional methods take lengths in nm, forces in J/(mol·nm)
// and temperatures in K.
//
// Quick example:
//
//	m, _ := fjc.New(8, 1.0, 1.0)
//	eta := m.Isometric.NondimensionalForce(0.5)
//	approx := m.Isometric.Legendre.NondimensionalForce(0.5)
package fjc
