// SPDX-License-Identifier: MIT

package efjc

import (
	"math"

	"github.com/katalvlaran/polymers/extensible"
	"github.com/katalvlaran/polymers/special"
)

// correctionSeriesCutoff bounds |η| below which η·coth η and its
// derivatives use their Taylor series.
const correctionSeriesCutoff = 1e-2

// Reduced is the leading-order isotensional response at fixed κ.
type Reduced struct {
	NondimensionalLinkStiffness float64
}

// NondimensionalEndToEndLengthPerLink returns γ = L(η) + η/κ.
func (r Reduced) NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64 {
	return special.Langevin(nondimensionalForce) + nondimensionalForce/r.NondimensionalLinkStiffness
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ = -ln(sinh η/η) - η²/(2κ).
func (r Reduced) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64 {
	return -special.LogSinhc(nondimensionalForce) - nondimensionalForce*nondimensionalForce/(2*r.NondimensionalLinkStiffness)
}

// NondimensionalCompliance returns dγ/dη = L'(η) + 1/κ.
func (r Reduced) NondimensionalCompliance(nondimensionalForce float64) float64 {
	return special.LangevinDerivative(nondimensionalForce) + 1/r.NondimensionalLinkStiffness
}

// Full adds the first correction in 1/κ to Reduced.
type Full struct {
	NondimensionalLinkStiffness float64
}

// cothTerms returns q = η coth η and its first two derivatives.
func cothTerms(eta float64) (q, q1, q2 float64) {
	if math.Abs(eta) < correctionSeriesCutoff {
		e2 := eta * eta
		return 1 + e2*(1.0/3-e2/45), eta * (2.0/3 - e2*4.0/45), 2.0/3 - e2*4.0/15
	}
	coth := 1 / math.Tanh(eta)
	s := math.Sinh(eta)
	csch2 := 1 / (s * s)

	return eta * coth, coth - eta*csch2, 2 * csch2 * (eta*coth - 1)
}

// NondimensionalEndToEndLengthPerLink returns γ = L(η) + η/κ + q'/(κ + q), q = η coth η.
func (f Full) NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64 {
	q, q1, _ := cothTerms(nondimensionalForce)
	kappa := f.NondimensionalLinkStiffness

	return Reduced(f).NondimensionalEndToEndLengthPerLink(nondimensionalForce) + q1/(kappa+q)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns the reduced ϱ minus
// ln((κ + η coth η)/(κ + 1)), which vanishes at η = 0.
func (f Full) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64 {
	q, _, _ := cothTerms(nondimensionalForce)
	kappa := f.NondimensionalLinkStiffness

	return Reduced(f).NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce) - math.Log((kappa+q)/(kappa+1))
}

// NondimensionalCompliance returns dγ/dη.
func (f Full) NondimensionalCompliance(nondimensionalForce float64) float64 {
	q, q1, q2 := cothTerms(nondimensionalForce)
	d := f.NondimensionalLinkStiffness + q

	return Reduced(f).NondimensionalCompliance(nondimensionalForce) + q2/d - q1*q1/(d*d)
}

// NondimensionalForce returns the per-link force η holding an extensible
// chain of nondimensional link stiffness κ at γ, inverting the reduced
// response.
func NondimensionalForce(nondimensionalLinkStiffness, nondimensionalEndToEndLengthPerLink float64) float64 {
	return extensible.Invert(Reduced{NondimensionalLinkStiffness: nondimensionalLinkStiffness}, nondimensionalEndToEndLengthPerLink)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns N·ψ(γ) of the reduced
// isometric ensemble, ψ = ηγ + ϱ(η).
func NondimensionalRelativeHelmholtzFreeEnergy(numberOfLinks int, nondimensionalLinkStiffness, nondimensionalEndToEndLengthPerLink float64) float64 {
	legendre := extensible.Legendre{Response: Reduced{NondimensionalLinkStiffness: nondimensionalLinkStiffness}}

	return float64(numberOfLinks) * legendre.NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink)
}
