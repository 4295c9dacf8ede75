// SPDX-License-Identifier: MIT

package asymptotic

import "github.com/katalvlaran/polymers/physics"

// StrongPotential expands the modified canonical ensemble about the
// isometric ensemble. To first order in 1/λ:
//
//	η = η₀ - η₀/(λ·c(η₀)),   η₀ = η_iso(γp),  c = dγ/dη
//	ψ = ψ_iso(γp) - η₀²/(2λ)
//	γ = γp - η/λ
type StrongPotential struct {
	physics.Chain
	isometric    Isometric
	isotensional Isotensional
}

// NewStrongPotential wires the expansion to a model's ensembles.
func NewStrongPotential(chain physics.Chain, isometric Isometric, isotensional Isotensional) StrongPotential {
	return StrongPotential{Chain: chain, isometric: isometric, isotensional: isotensional}
}

// NondimensionalForce returns the force exerted by the potential.
func (s StrongPotential) NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	eta := s.isometric.NondimensionalForce(nondimensionalPotentialDistance)

	return eta - eta/(nondimensionalPotentialStiffness*s.isotensional.NondimensionalCompliance(eta))
}

// NondimensionalEndToEndLengthPerLink returns the mean γ of the tethered chain.
func (s StrongPotential) NondimensionalEndToEndLengthPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return nondimensionalPotentialDistance -
		s.NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness)/nondimensionalPotentialStiffness
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γp) - ψ(0).
func (s StrongPotential) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	eta := s.isometric.NondimensionalForce(nondimensionalPotentialDistance)

	return s.isometric.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalPotentialDistance) -
		eta*eta/(2*nondimensionalPotentialStiffness)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns N times the per-link value.
func (s StrongPotential) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return s.Links() * s.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness)
}

// Force returns the dimensional force for a potential centred at
// potentialDistance (nm) with stiffness potentialStiffness (J/(mol·nm²)).
func (s StrongPotential) Force(potentialDistance, potentialStiffness, temperature float64) float64 {
	return s.Chain.Force(s.NondimensionalForce(s.PerLink(potentialDistance), s.PotentialStiffness(potentialStiffness, temperature)), temperature)
}

// EndToEndLength returns the mean end-to-end length in nm.
func (s StrongPotential) EndToEndLength(potentialDistance, potentialStiffness, temperature float64) float64 {
	return s.Length(s.NondimensionalEndToEndLengthPerLink(s.PerLink(potentialDistance), s.PotentialStiffness(potentialStiffness, temperature)))
}

// RelativeHelmholtzFreeEnergy returns the relative free energy in J/mol.
func (s StrongPotential) RelativeHelmholtzFreeEnergy(potentialDistance, potentialStiffness, temperature float64) float64 {
	return s.Energy(s.NondimensionalRelativeHelmholtzFreeEnergy(s.PerLink(potentialDistance), s.PotentialStiffness(potentialStiffness, temperature)), temperature)
}
