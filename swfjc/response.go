// SPDX-License-Identifier: MIT

package swfjc

import "math"

const (
	// seriesCutoff bounds |η| below which g is summed as a series.
	seriesCutoff = 4.0

	seriesMaxTerms = 200
)

// Response is the exact per-link isotensional response of a square well
// reaching MaximumStretch = 1 + w/ℓ.
type Response struct {
	MaximumStretch float64
}

// shell returns g, g' and g'' at |η|, all scaled by exp(-scale).
func (r Response) shell(eta float64) (g, g1, g2, scale float64) {
	a := math.Abs(eta)
	z := r.MaximumStretch
	if a < seriesCutoff {
		// g = Σ a^{2k}/(2k+1)! · (ς^{2k+3} - 1)/(2k+3); all terms positive.
		g = r.shellAtZero()
		q := 1.0 / 6 // a^{2k-2}/(2k+1)!
		a2 := a * a
		for k := 1; k < seriesMaxTerms; k++ {
			kk := float64(2 * k)
			t := q * (math.Pow(z, kk+3) - 1) / (kk + 3)
			g += a2 * t
			g1 += kk * a * t
			g2 += kk * (kk - 1) * t
			if kk*(kk-1)*t < 1e-17*g2 {
				break
			}
			q *= a2 / ((kk + 2) * (kk + 3))
		}

		return g, g1, g2, 0
	}

	// Antiderivatives of the three integrands at s, scaled by exp(-ςa).
	at := func(s float64) (float64, float64, float64) {
		ep, em := math.Exp((s-z)*a), math.Exp(-(s+z)*a)
		sh, ch := (ep-em)/2, (ep+em)/2
		a2, a3 := a*a, a*a*a
		a4, a5 := a3*a, a3*a2

		return s*ch/a2 - sh/a3,
			s*s*sh/a2 - 3*s*ch/a3 + 3*sh/a4,
			s*s*s*ch/a2 - 5*s*s*sh/a3 + 12*s*ch/a4 - 12*sh/a5
	}
	u, u1, u2 := at(z)
	l, l1, l2 := at(1)

	return u - l, u1 - l1, u2 - l2, z * a
}

// shellAtZero returns g(0) = (ς³ - 1)/3.
func (r Response) shellAtZero() float64 {
	z := r.MaximumStretch

	return (z*z*z - 1) / 3
}

// NondimensionalEndToEndLengthPerLink returns γ = g'(η)/g(η).
func (r Response) NondimensionalEndToEndLengthPerLink(nondimensionalForce float64) float64 {
	g, g1, _, _ := r.shell(nondimensionalForce)

	return math.Copysign(g1/g, nondimensionalForce)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns ϱ = -ln(g(η)/g(0)).
func (r Response) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalForce float64) float64 {
	g, _, _, scale := r.shell(nondimensionalForce)

	return -(math.Log(g/r.shellAtZero()) + scale)
}

// NondimensionalCompliance returns dγ/dη = g''/g - (g'/g)².
func (r Response) NondimensionalCompliance(nondimensionalForce float64) float64 {
	g, g1, g2, _ := r.shell(nondimensionalForce)
	gamma := g1 / g

	return g2/g - gamma*gamma
}
