// SPDX-License-Identifier: MIT

// Package physics holds the physical constants and the unit plumbing shared
// by every chain model in this module.
//
// Conventions:
//
//	lengths       nm
//	masses        kg/mol
//	temperatures  K
//	energies      J/mol
//	forces        J/(mol·nm)
//
// A chain of N links of length ℓ is described nondimensionally by
//
//	γ = r/(Nℓ)   nondimensional end-to-end length per link
//	η = fℓ/kT    nondimensional force
//	ϑ = A/kT     nondimensional free energy
//
// and Chain converts between the two worlds.
package physics
