// SPDX-License-Identifier: MIT

package fjc

import (
	"github.com/katalvlaran/polymers/physics"
	"github.com/katalvlaran/polymers/special"
)

// Isotensional is the fixed-force ensemble. Its closed forms are exact for
// every N:
//
//	γ(η) = L(η) = coth η - 1/η
//	ϱ(η) = -ln(sinh η/η)            per link, relative
//
// Absolute Gibbs free energies subtract the kinetic term once per link;
// the Legendre Helmholtz free energy subtracts it N-1 times, like the
// isometric ensemble.
type Isotensional struct {
	physics.Chain

	// Legendre gives the Helmholtz free energy as a function of force.
	Legendre IsotensionalLegendre
}

func newIsotensional(chain physics.Chain) Isotensional {
	return Isotensional{Chain: chain, Legendre: IsotensionalLegendre{Chain: chain}}
}

// EndToEndLength returns the mean end-to-end length (nm) under force (J/(mol·nm)).
func (m Isotensional) EndToEndLength(force, temperature float64) float64 {
	return m.Length(m.NondimensionalEndToEndLengthPerLink(m.Chain.NondimensionalForce(force, temperature)))
}

// EndToEndLengthPerLink returns the mean end-to-end length per link (nm).
func (m Isotensional) EndToEndLengthPerLink(force, temperature float64) float64 {
	return m.LinkLength * m.NondimensionalEndToEndLengthPerLink(m.Chain.NondimensionalForce(force, temperature))
}

// NondimensionalEndToEndLength returns Nγ(η) = r/ℓ.
func (m Isotensional) NondimensionalEndToEndLength(nondimensionalForce float64) float64 {
	return m.Links() * m.NondimensionalEndToEndLengthPerLink(nondimensionalForce)
}

// NondimensionalEndToEndLengthPerLink returns γ(η) = L(η).
func (m Isotensional) NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64 {
	return special.Langevin(nondimensionalForce)
}

// NondimensionalCompliance returns dγ/dη = L'(η).
func (m Isotensional) NondimensionalCompliance(nondimensionalForce float64) float64 {
	return special.LangevinDerivative(nondimensionalForce)
}

// GibbsFreeEnergy returns the absolute Gibbs free energy in J/mol.
func (m Isotensional) GibbsFreeEnergy(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergy(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// GibbsFreeEnergyPerLink returns the absolute Gibbs free energy per link in J/mol.
func (m Isotensional) GibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// RelativeGibbsFreeEnergy returns the Gibbs free energy relative to zero force in J/mol.
func (m Isotensional) RelativeGibbsFreeEnergy(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergy(m.Chain.NondimensionalForce(force, temperature)), temperature)
}

// RelativeGibbsFreeEnergyPerLink returns the relative Gibbs free energy per link in J/mol.
func (m Isotensional) RelativeGibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature)), temperature)
}

// NondimensionalGibbsFreeEnergy returns N·(ϱ(η) - ln(8π²mℓ²kT/ħ²)).
func (m Isotensional) NondimensionalGibbsFreeEnergy(nondimensionalForce, temperature float64) float64 {
	return m.Links() * m.NondimensionalGibbsFreeEnergyPerLink(nondimensionalForce, temperature)
}

// NondimensionalGibbsFreeEnergyPerLink returns ϱ(η) - ln(8π²mℓ²kT/ħ²).
func (m Isotensional) NondimensionalGibbsFreeEnergyPerLink(nondimensionalForce, temperature float64) float64 {
	return m.NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce) - m.KineticTerm(temperature)
}

// NondimensionalRelativeGibbsFreeEnergy returns N·ϱ(η).
func (m Isotensional) NondimensionalRelativeGibbsFreeEnergy(nondimensionalForce float64) float64 {
	return m.Links() * m.NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ(η) = -ln(sinh η/η).
func (m Isotensional) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64 {
	return -special.LogSinhc(nondimensionalForce)
}

// IsotensionalLegendre is the Legendre transform ψ = ϱ + ηγ of the
// isotensional ensemble: Helmholtz free energies as functions of force.
type IsotensionalLegendre struct {
	physics.Chain
}

// HelmholtzFreeEnergy returns the absolute Helmholtz free energy in J/mol.
func (m IsotensionalLegendre) HelmholtzFreeEnergy(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergy(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns the absolute Helmholtz free energy per link in J/mol.
func (m IsotensionalLegendre) HelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns the relative Helmholtz free energy in J/mol.
func (m IsotensionalLegendre) RelativeHelmholtzFreeEnergy(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergy(m.Chain.NondimensionalForce(force, temperature)), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns the relative Helmholtz free energy per link in J/mol.
func (m IsotensionalLegendre) RelativeHelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature)), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns N(ϱ + ηγ) - (N-1)·ln(8π²mℓ²kT/ħ²),
// the isometric free energy at the mean length under force.
func (m IsotensionalLegendre) NondimensionalHelmholtzFreeEnergy(nondimensionalForce, temperature float64) float64 {
	return m.NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalForce) - (m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m IsotensionalLegendre) NondimensionalHelmholtzFreeEnergyPerLink(nondimensionalForce, temperature float64) float64 {
	return m.NondimensionalHelmholtzFreeEnergy(nondimensionalForce, temperature) / m.Links()
}

// NondimensionalRelativeHelmholtzFreeEnergy returns N times the per-link value.
func (m IsotensionalLegendre) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalForce float64) float64 {
	return m.Links() * m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalForce)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ϱ(η) + ηL(η).
func (m IsotensionalLegendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalForce float64) float64 {
	return nondimensionalForce*special.Langevin(nondimensionalForce) - special.LogSinhc(nondimensionalForce)
}
