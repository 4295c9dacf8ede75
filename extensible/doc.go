// SPDX-License-Identifier: MIT

// Package extensible builds the ensembles of chains whose links stretch.
//
// Such a model is described by its per-link isotensional response at a
// temperature: γ(η), ϱ(η) and dγ/dη, captured by asymptotic.Isotensional.
// Link stiffnesses are nondimensionalized by kT, so the response depends on
// temperature and is supplied as a ResponseFunc. From it this package
// derives
//
//	Isotensional            γ(η), Gibbs free energies
//	Isotensional.Legendre   Helmholtz free energies as functions of force
//	Isometric               η = γ⁻¹ by Newton-Raphson, ψ = ηγ + ϱ(η)
//	ModifiedCanonical       strong/weak tether expansions at one temperature
//
// Absolute free energies subtract the kinetic term once per link in the
// isotensional ensemble and once per hinge pair (N-1) in the isometric one,
// as for the rigid chain.
package extensible
