// SPDX-License-Identifier: MIT

package physics

// Chain carries the parameters every chain model shares and converts
// between dimensional and nondimensional quantities.
// It is a plain value; models embed it and copy it into their ensembles.
type Chain struct {
	// NumberOfLinks is the link count N.
	NumberOfLinks int

	// LinkLength is ℓ in nm.
	LinkLength float64

	// HingeMass is m in kg/mol.
	HingeMass float64
}

// NewChain validates and returns the shared chain parameters.
// op names the calling constructor and prefixes any error.
//
// Errors:
//   - ErrInvalidParameter if numberOfLinks < minLinks, or if linkLength or
//     hingeMass is not finite and positive.
func NewChain(op string, numberOfLinks, minLinks int, linkLength, hingeMass float64) (Chain, error) {
	if numberOfLinks < minLinks || numberOfLinks < 1 {
		return Chain{}, parameterErrorf(op, "numberOfLinks", float64(numberOfLinks))
	}
	if err := RequirePositive(op, "linkLength", linkLength); err != nil {
		return Chain{}, err
	}
	if err := RequirePositive(op, "hingeMass", hingeMass); err != nil {
		return Chain{}, err
	}

	return Chain{NumberOfLinks: numberOfLinks, LinkLength: linkLength, HingeMass: hingeMass}, nil
}

// Links returns N as a float64.
func (c Chain) Links() float64 {
	return float64(c.NumberOfLinks)
}

// ContourLength returns Nℓ.
func (c Chain) ContourLength() float64 {
	return c.Links() * c.LinkLength
}

// PerLink maps an end-to-end length r to γ = r/(Nℓ).
func (c Chain) PerLink(endToEndLength float64) float64 {
	return endToEndLength / c.ContourLength()
}

// Length maps γ back to r = γNℓ.
func (c Chain) Length(nondimensionalEndToEndLengthPerLink float64) float64 {
	return nondimensionalEndToEndLengthPerLink * c.ContourLength()
}

// Force maps η to f = η·kT/ℓ.
func (c Chain) Force(nondimensionalForce, temperature float64) float64 {
	return nondimensionalForce * ThermalEnergy(temperature) / c.LinkLength
}

// NondimensionalForce maps f to η = fℓ/kT.
func (c Chain) NondimensionalForce(force, temperature float64) float64 {
	return force * c.LinkLength / ThermalEnergy(temperature)
}

// Energy maps ϑ to ϑ·kT.
func (c Chain) Energy(nondimensionalEnergy, temperature float64) float64 {
	return nondimensionalEnergy * ThermalEnergy(temperature)
}

// KineticTerm returns the per-hinge constant for this chain at temperature.
func (c Chain) KineticTerm(temperature float64) float64 {
	return KineticTerm(c.HingeMass, c.LinkLength, temperature)
}

// Density maps a nondimensional probability density over γ to a density
// over the end-to-end vector in nm⁻³.
func (c Chain) Density(nondimensional float64) float64 {
	l := c.ContourLength()

	return nondimensional / (l * l * l)
}

// RadialDensity maps a nondimensional radial density over γ to nm⁻¹.
func (c Chain) RadialDensity(nondimensional float64) float64 {
	return nondimensional / c.ContourLength()
}

// PotentialStiffness maps the stiffness κ (J/(mol·nm²)) of a harmonic tether
// on the chain end to λ = κNℓ²/kT, so the tether energy is (Nλ/2)|γ-γp|² in kT.
func (c Chain) PotentialStiffness(potentialStiffness, temperature float64) float64 {
	return potentialStiffness * c.Links() * c.LinkLength * c.LinkLength / ThermalEnergy(temperature)
}
