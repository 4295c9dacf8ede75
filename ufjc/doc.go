// SPDX-License-Identifier: MIT

// Package ufjc implements the freely jointed chain with links governed by an
// arbitrary link potential u(s), s being the link length over its rest
// length ℓ.
//
// A LinkPotential is given in dimensional units and reduced at each
// temperature to a Potential parameterized by the per-link force η: the
// stretch s(η) solving u'(s) = η, its compliance ds/dη and the energy
// u(s(η)). Harmonic, LogSquared and Morse are provided; Composite puts two
// potentials in series.
//
// The isotensional ensemble uses the reduced asymptotic form, exact to
// leading order in the link stiffness:
//
//	γ(η) = L(η) + s(η) - 1
//	ϱ(η) = -ln(sinh η/η) + u(s(η)) - η(s(η) - 1)
//
// The isometric ensemble is its Legendre transform. Potentials that break
// (LogSquared, Morse) have a maximum force; lengths beyond the one it
// reaches are unreachable and have NaN force.
package ufjc
