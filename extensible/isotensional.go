// SPDX-License-Identifier: MIT

package extensible

import (
	"github.com/katalvlaran/polymers/asymptotic"
	"github.com/katalvlaran/polymers/physics"
)

// ResponseFunc returns the per-link isotensional response at temperature (K).
type ResponseFunc func(temperature float64) asymptotic.Isotensional

// Isotensional is the fixed-force ensemble of an extensible chain.
type Isotensional struct {
	physics.Chain

	// Legendre gives the Helmholtz free energy as a function of force.
	Legendre IsotensionalLegendre

	response ResponseFunc
}

// NewIsotensional wires a response into the isotensional ensemble.
func NewIsotensional(chain physics.Chain, response ResponseFunc) Isotensional {
	return Isotensional{
		Chain:    chain,
		Legendre: IsotensionalLegendre{Chain: chain, response: response},
		response: response,
	}
}

// Response returns the per-link response at temperature.
func (m Isotensional) Response(temperature float64) asymptotic.Isotensional {
	return m.response(temperature)
}

// EndToEndLength returns the mean end-to-end length (nm) under force (J/(mol·nm)).
func (m Isotensional) EndToEndLength(force, temperature float64) float64 {
	return m.Length(m.NondimensionalEndToEndLengthPerLink(m.Chain.NondimensionalForce(force, temperature), temperature))
}

// EndToEndLengthPerLink returns the mean end-to-end length per link (nm).
func (m Isotensional) EndToEndLengthPerLink(force, temperature float64) float64 {
	return m.LinkLength * m.NondimensionalEndToEndLengthPerLink(m.Chain.NondimensionalForce(force, temperature), temperature)
}

// NondimensionalEndToEndLength returns Nγ(η).
func (m Isotensional) NondimensionalEndToEndLength(nondimensionalForce, temperature float64) float64 {
	return m.Links() * m.NondimensionalEndToEndLengthPerLink(nondimensionalForce, temperature)
}

// NondimensionalEndToEndLengthPerLink returns γ(η).
func (m Isotensional) NondimensionalEndToEndLengthPerLink(nondimensionalForce, temperature float64) float64 {
	return m.response(temperature).NondimensionalEndToEndLengthPerLink(nondimensionalForce)
}

// NondimensionalCompliance returns dγ/dη.
func (m Isotensional) NondimensionalCompliance(nondimensionalForce, temperature float64) float64 {
	return m.response(temperature).NondimensionalCompliance(nondimensionalForce)
}

// GibbsFreeEnergy returns the absolute Gibbs free energy in J/mol.
func (m Isotensional) GibbsFreeEnergy(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergy(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// GibbsFreeEnergyPerLink returns the absolute Gibbs free energy per link in J/mol.
func (m Isotensional) GibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalGibbsFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// RelativeGibbsFreeEnergy returns the relative Gibbs free energy in J/mol.
func (m Isotensional) RelativeGibbsFreeEnergy(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergy(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// RelativeGibbsFreeEnergyPerLink returns the relative Gibbs free energy per link in J/mol.
func (m Isotensional) RelativeGibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeGibbsFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// NondimensionalGibbsFreeEnergy returns N times the per-link value.
func (m Isotensional) NondimensionalGibbsFreeEnergy(nondimensionalForce, temperature float64) float64 {
	return m.Links() * m.NondimensionalGibbsFreeEnergyPerLink(nondimensionalForce, temperature)
}

// NondimensionalGibbsFreeEnergyPerLink returns ϱ(η) - ln(8π²mℓ²kT/ħ²).
func (m Isotensional) NondimensionalGibbsFreeEnergyPerLink(nondimensionalForce, temperature float64) float64 {
	return m.NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce, temperature) - m.KineticTerm(temperature)
}

// NondimensionalRelativeGibbsFreeEnergy returns Nϱ(η).
func (m Isotensional) NondimensionalRelativeGibbsFreeEnergy(nondimensionalForce, temperature float64) float64 {
	return m.Links() * m.NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce, temperature)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ(η).
func (m Isotensional) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce, temperature float64) float64 {
	return m.response(temperature).NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce)
}

// IsotensionalLegendre is ψ = ϱ + ηγ as a function of force.
type IsotensionalLegendre struct {
	physics.Chain

	response ResponseFunc
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
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergy(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns the relative Helmholtz free energy per link in J/mol.
func (m IsotensionalLegendre) RelativeHelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(m.Chain.NondimensionalForce(force, temperature), temperature), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns N(ϱ + ηγ) - (N-1)·ln(8π²mℓ²kT/ħ²),
// the isometric free energy at the mean length under force.
func (m IsotensionalLegendre) NondimensionalHelmholtzFreeEnergy(nondimensionalForce, temperature float64) float64 {
	return m.NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalForce, temperature) - (m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m IsotensionalLegendre) NondimensionalHelmholtzFreeEnergyPerLink(nondimensionalForce, temperature float64) float64 {
	return m.NondimensionalHelmholtzFreeEnergy(nondimensionalForce, temperature) / m.Links()
}

// NondimensionalRelativeHelmholtzFreeEnergy returns N times the per-link value.
func (m IsotensionalLegendre) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalForce, temperature float64) float64 {
	return m.Links() * m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalForce, temperature)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ϱ(η) + ηγ(η).
func (m IsotensionalLegendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalForce, temperature float64) float64 {
	r := m.response(temperature)

	return r.NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce) +
		nondimensionalForce*r.NondimensionalEndToEndLengthPerLink(nondimensionalForce)
}
