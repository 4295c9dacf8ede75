// SPDX-License-Identifier: MIT

package extensible

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/physics"
)

// Isometric is the large-N fixed-length ensemble of an extensible chain,
// obtained from the isotensional response by Legendre transform.
type Isometric struct {
	physics.Chain

	response ResponseFunc
	opts     []equilibrium.Option
}

// NewIsometric wires a response into the isometric ensemble. opts are the
// defaults for EquilibriumDistribution; an extensible chain usually needs
// an upper bound above one.
func NewIsometric(chain physics.Chain, response ResponseFunc, opts ...equilibrium.Option) Isometric {
	return Isometric{Chain: chain, response: response, opts: opts}
}

// Legendre returns the per-link isometric ensemble at temperature.
func (m Isometric) Legendre(temperature float64) Legendre {
	return Legendre{Response: m.response(temperature)}
}

// Force returns the force (J/(mol·nm)) at endToEndLength (nm).
func (m Isometric) Force(endToEndLength, temperature float64) float64 {
	return m.Chain.Force(m.NondimensionalForce(m.PerLink(endToEndLength), temperature), temperature)
}

// NondimensionalForce returns η(γ).
func (m Isometric) NondimensionalForce(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.Legendre(temperature).NondimensionalForce(nondimensionalEndToEndLengthPerLink)
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
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergy(m.PerLink(endToEndLength), temperature), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns the relative Helmholtz free energy per link in J/mol.
func (m Isometric) RelativeHelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return m.Energy(m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(m.PerLink(endToEndLength), temperature), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns Nψ(γ) - (N-1)·ln(8π²mℓ²kT/ħ²).
func (m Isometric) NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) -
		(m.Links()-1)*m.KineticTerm(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the total divided by N.
func (m Isometric) NondimensionalHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.NondimensionalHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature) / m.Links()
}

// NondimensionalRelativeHelmholtzFreeEnergy returns Nψ(γ).
func (m Isometric) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.Links() * m.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γ) = ηγ + ϱ(η).
func (m Isometric) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink, temperature float64) float64 {
	return m.Legendre(temperature).NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink)
}

// EquilibriumDistribution normalizes exp(-Nψ(γ)) at temperature. Lengths a
// Bounded response cannot reach carry no weight. opts override the defaults
// given to NewIsometric.
//
// Errors:
//   - equilibrium.ErrNormalization if the integral is not finite and positive.
func (m Isometric) EquilibriumDistribution(temperature float64, opts ...equilibrium.Option) (*equilibrium.Distribution, error) {
	legendre := m.Legendre(temperature)
	n := m.Links()
	all := append(append([]equilibrium.Option(nil), m.opts...), opts...)
	d, err := equilibrium.New(func(g float64) float64 {
		psi := legendre.NondimensionalRelativeHelmholtzFreeEnergyPerLink(g)
		if math.IsNaN(psi) {
			// Unreachable length.
			return 0
		}

		return math.Exp(-n * psi)
	}, all...)
	if err != nil {
		return nil, fmt.Errorf("extensible.EquilibriumDistribution: T=%g: %w", temperature, err)
	}

	return d, nil
}
