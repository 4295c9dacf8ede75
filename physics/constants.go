// SPDX-License-Identifier: MIT

package physics

import "math"

const (
	// BoltzmannConstant is the molar gas constant in J/(mol·K).
	BoltzmannConstant = 8.314462618

	// PlanckConstant is the reduced Planck constant in J·ns/mol, so that
	// m·ℓ²·kT/ħ² is dimensionless for m in kg/mol and ℓ in nm.
	PlanckConstant = 6.350779923502961e-2
)

// ThermalEnergy returns kT in J/mol.
func ThermalEnergy(temperature float64) float64 {
	return BoltzmannConstant * temperature
}

// KineticTerm returns ln(8π²·m·ℓ²·kT/ħ²), the rotational/kinetic constant
// contributed by one hinge of mass m joining links of length ℓ.
// Absolute (non-relative) free energies subtract it once per free hinge.
func KineticTerm(hingeMass, linkLength, temperature float64) float64 {
	return math.Log(8 * math.Pi * math.Pi * hingeMass * linkLength * linkLength *
		ThermalEnergy(temperature) / (PlanckConstant * PlanckConstant))
}
