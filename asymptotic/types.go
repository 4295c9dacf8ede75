// SPDX-License-Identifier: MIT

package asymptotic

// Isometric is the large-N isometric ensemble of a chain model.
type Isometric interface {
	// NondimensionalForce returns η(γ).
	NondimensionalForce(nondimensionalEndToEndLengthPerLink float64) float64

	// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns ψ(γ) - ψ(0).
	NondimensionalRelativeHelmholtzFreeEnergyPerLink(nondimensionalEndToEndLengthPerLink float64) float64
}

// Isotensional is the isotensional ensemble of a chain model.
type Isotensional interface {
	// NondimensionalEndToEndLengthPerLink returns γ(η).
	NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64

	// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ(η) - ϱ(0).
	NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64

	// NondimensionalCompliance returns dγ/dη.
	NondimensionalCompliance(nondimensionalForce float64) float64
}
