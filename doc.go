// SPDX-License-Identifier: MIT

// Package polymers computes the statistical thermodynamics of single polymer
// chains: forces, end-to-end lengths, free energies and equilibrium
// distributions, in the isometric (fixed length) and isotensional (fixed
// force) ensembles.
//
// 🚀 What is inside?
//
//	• Models: freely jointed (fjc), extensible (efjc), square-well (swfjc),
//	  arbitrary link potential (ufjc) and worm-like (wlc) chains
//	• Ensembles: exact and Legendre-transformed isometric, isotensional,
//	  and the modified canonical ensemble of a tethered chain
//	• Numerics: Langevin and inverse Langevin, Erfcx, Bessel I₀/I₁,
//	  midpoint quadrature and normalized distributions
//
// ✨ Conventions
//
//   - Lengths in nm, masses in kg/mol, temperatures in K, energies in J/mol
//     and forces in J/(mol·nm).
//   - Every quantity also comes nondimensional: γ = r/(Nℓ), η = fℓ/kT,
//     and energies in units of kT, in total and per link.
//   - Constructors validate and return wrapped sentinel errors; evaluations
//     never fail and propagate NaN or ±Inf for out-of-domain input.
//   - Models are read-only after construction and safe for concurrent use.
//
// Under the hood the packages stack as follows:
//
//	special/      Langevin, inverse Langevin, Newton-Raphson, Erfcx, BesselI
//	quadrature/   midpoint rules in one and two dimensions, reusable grids
//	physics/      constants, the shared Chain parameters, validation
//	equilibrium/  distributions normalized over a configurable γ domain
//	asymptotic/   strong and weak tether expansions over any ensemble pair
//	extensible/   Legendre ensembles of any per-link isotensional response
//	fjc/ efjc/ swfjc/ ufjc/ wlc/  chain models
//
// Quick example:
//
//	model, _ := fjc.New(8, 1, 1) // 8 links of 1 nm, hinge mass 1 kg/mol
//	eta := model.Isometric.NondimensionalForce(0.5)
//
//	go get github.com/katalvlaran/polymers
package polymers
