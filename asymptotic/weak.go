// SPDX-License-Identifier: MIT

package asymptotic

import (
	"math"

	"github.com/katalvlaran/polymers/physics"
	"gonum.org/v1/gonum/diff/fd"
)

// weakStepScale sets the central-difference step relative to max(1, |γp|).
const weakStepScale = 1e-6

// WeakPotential expands the modified canonical ensemble about the
// isotensional ensemble at η₀ = λγp. Averaging the quadratic part of the
// tether over the isotensional ensemble of independent links gives
//
//	ψ = λγp²/2 + ϱ(η₀) + (λ/2)·[γ(η₀)² + (c(η₀) + 2γ(η₀)/η₀)/N]
//
// with c = dγ/dη; the bracket is ⟨|γ|²⟩ at force η₀. The force is ∂ψ/∂γp,
// taken by central difference, and γ = γp - η/λ.
type WeakPotential struct {
	physics.Chain
	isotensional Isotensional
}

// NewWeakPotential wires the expansion to a model's isotensional ensemble.
func NewWeakPotential(chain physics.Chain, isotensional Isotensional) WeakPotential {
	return WeakPotential{Chain: chain, isotensional: isotensional}
}

// meanSquare returns ⟨|γ|²⟩ for N independent links under force eta.
func (w WeakPotential) meanSquare(eta float64) float64 {
	g := w.isotensional.NondimensionalEndToEndLengthPerLink(eta)
	c := w.isotensional.NondimensionalCompliance(eta)
	transverse := c
	if eta != 0 {
		transverse = g / eta
	}

	return g*g + (c+2*transverse)/w.Links()
}

// nondimensionalHelmholtzFreeEnergyPerLink is ψ(γp) before the γp = 0 shift.
func (w WeakPotential) nondimensionalHelmholtzFreeEnergyPerLink(gp, lambda float64) float64 {
	eta := lambda * gp

	return lambda*gp*gp/2 + w.isotensional.NondimensionalRelativeGibbsFreeEnergyPerLink(eta) + lambda/2*w.meanSquare(eta)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γp) - ψ(0).
func (w WeakPotential) NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return w.nondimensionalHelmholtzFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness) -
		w.nondimensionalHelmholtzFreeEnergyPerLink(0, nondimensionalPotentialStiffness)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns N times the per-link value.
func (w WeakPotential) NondimensionalRelativeHelmholtzFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return w.Links() * w.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness)
}

// NondimensionalForce returns ∂ψ/∂γp, the force exerted by the potential.
func (w WeakPotential) NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	psi := func(gp float64) float64 {
		return w.nondimensionalHelmholtzFreeEnergyPerLink(gp, nondimensionalPotentialStiffness)
	}

	return fd.Derivative(psi, nondimensionalPotentialDistance, &fd.Settings{
		Formula: fd.Central,
		Step:    weakStepScale * math.Max(1, math.Abs(nondimensionalPotentialDistance)),
	})
}

// NondimensionalEndToEndLengthPerLink returns the mean γ of the tethered chain.
func (w WeakPotential) NondimensionalEndToEndLengthPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return nondimensionalPotentialDistance -
		w.NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness)/nondimensionalPotentialStiffness
}

// Force returns the dimensional force for a potential centred at
// potentialDistance (nm) with stiffness potentialStiffness (J/(mol·nm²)).
func (w WeakPotential) Force(potentialDistance, potentialStiffness, temperature float64) float64 {
	return w.Chain.Force(w.NondimensionalForce(w.PerLink(potentialDistance), w.PotentialStiffness(potentialStiffness, temperature)), temperature)
}

// EndToEndLength returns the mean end-to-end length in nm.
func (w WeakPotential) EndToEndLength(potentialDistance, potentialStiffness, temperature float64) float64 {
	return w.Length(w.NondimensionalEndToEndLengthPerLink(w.PerLink(potentialDistance), w.PotentialStiffness(potentialStiffness, temperature)))
}

// RelativeHelmholtzFreeEnergy returns the relative free energy in J/mol.
func (w WeakPotential) RelativeHelmholtzFreeEnergy(potentialDistance, potentialStiffness, temperature float64) float64 {
	return w.Energy(w.NondimensionalRelativeHelmholtzFreeEnergy(w.PerLink(potentialDistance), w.PotentialStiffness(potentialStiffness, temperature)), temperature)
}
