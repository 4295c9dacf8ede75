// SPDX-License-Identifier: MIT

package wlc

import (
	"math"

	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/physics"
)

// Isometric is the fixed-length ensemble.
type Isometric struct {
	physics.Chain

	// ratio is ℓ/ℓp.
	ratio        float64
	distribution *equilibrium.Distribution
}

func newIsometric(chain physics.Chain, ratio float64, opts ...equilibrium.Option) (Isometric, error) {
	m := Isometric{Chain: chain, ratio: ratio}
	n := chain.Links()
	d, err := equilibrium.New(func(g float64) float64 {
		return math.Exp(-n * m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g))
	}, opts...)
	if err != nil {
		return Isometric{}, err
	}
	m.distribution = d

	return m, nil
}

// Force returns the force (J/(mol·nm)) at endToEndLength (nm).
func (m Isometric) Force(endToEndLength, temperature float64) float64 {
	return m.Chain.Force(m.NondimensionalForce(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalForce returns η(γ); it diverges as γ approaches one.
func (m Isometric) NondimensionalForce(nondimensionalEndToEndLengthPerLink float64) float64 {
	g := nondimensionalEndToEndLengthPerLink
	d := 1 - math.Abs(g)

	return m.ratio * (math.Copysign(1/(4*d*d)-0.25, g) + g)
}

// nondimensionalStiffness returns dη/dγ.
func (m Isometric) nondimensionalStiffness(nondimensionalEndToEndLengthPerLink float64) float64 {
	d := 1 - math.Abs(nondimensionalEndToEndLengthPerLink)

	return m.ratio * (1/(2*d*d*d) + 1)
}

// HelmholtzFreeEnergy returns the absolute Helmholtz free energy in J/mol.
func (m Isometric) HelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergy(m.PerLink(endToEndLength), temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns the absolute Helmholtz free energy per link in J/mol.
func (m Isometric) HelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength), temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns the relative Helmholtz free energy in J/mol.
func (m Isometric) RelativeHelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergy(m.PerLink(endToEndLength)), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns the relative Helmholtz free energy per link in J/mol.
func (m Isometric) RelativeHelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength)), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns Nψ(γ) - (N-1)·ln(8π²mℓ²kT/ħ²).
func (m Isometric) NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink) - (m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m Isometric) NondimensionalHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) / m.Links()
}

// NondimensionalRelativeHelmholtzFreeEnergy returns Nψ(γ).
func (m Isometric) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.Links() * m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γ), zero at γ = 0.
func (m Isometric) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64 {
	g := math.Abs(nondimensionalEndToEndLengthPerLink)

	return m.ratio * (1/(4*(1-g)) - 0.25 - g/4 + g*g/2)
}

// EquilibriumDistribution returns P(r) in nm⁻³ at endToEndLength (nm).
func (m Isometric) EquilibriumDistribution(endToEndLength float64) float64 {
	return m.Density(m.NondimensionalEquilibriumDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumDistribution returns P(γ) ∝ exp(-Nψ(γ)).
func (m Isometric) NondimensionalEquilibriumDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.Density(nondimensionalEndToEndLengthPerLink)
}

// EquilibriumRadialDistribution returns g(r) in nm⁻¹ at endToEndLength (nm).
func (m Isometric) EquilibriumRadialDistribution(endToEndLength float64) float64 {
	return m.RadialDensity(m.NondimensionalEquilibriumRadialDistribution(m.PerLink(endToEndLength)))
}

// NondimensionalEquilibriumRadialDistribution returns 4πγ²P(γ).
func (m Isometric) NondimensionalEquilibriumRadialDistribution(nondimensionalEndToEndLengthPerLink float64) float64 {
	return m.distribution.RadialDensity(nondimensionalEndToEndLengthPerLink)
}
