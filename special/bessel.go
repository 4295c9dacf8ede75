// SPDX-License-Identifier: MIT

package special

import "math"

const (
	// besselSeriesCutoff and besselAsymptoticCutoff split the three regimes.
	besselSeriesCutoff     = 7.75
	besselAsymptoticCutoff = 500.0

	// besselChebMid and besselChebHalf map 1/x on [1/500, 1/7.75] onto [-1, 1].
	besselChebMid  = (1/besselSeriesCutoff + 1/besselAsymptoticCutoff) / 2
	besselChebHalf = (1/besselSeriesCutoff - 1/besselAsymptoticCutoff) / 2

	// invSqrtTwoPi is 1/√(2π).
	invSqrtTwoPi = 0.39894228040143267793994605993438186847585863116493

	// besselUnsupportedOrder is what BesselI answers for ν ∉ {0, 1}.
	besselUnsupportedOrder = -1.0
)

// BesselI returns the modified Bessel function of the first kind Iν(x)
// for ν = 0 or 1, and -1 for any other order.
func BesselI(nu int, x float64) float64 {
	switch nu {
	case 0:
		return BesselI0(x)
	case 1:
		return BesselI1(x)
	default:
		return besselUnsupportedOrder
	}
}

// BesselI0 returns I₀(x). I₀ is even.
//
// Regimes:
//   - |x| < 7.75: power series in x².
//   - 7.75 <= |x| < 500: e^x/√x times a Chebyshev series in 1/x.
//   - |x| >= 500: asymptotic series, exponential split as e^{x/2}·(…)·e^{x/2}.
func BesselI0(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < besselSeriesCutoff:
		return horner(besselI0Series[:], x*x)
	case x < besselAsymptoticCutoff:
		return clenshaw(besselI0Chebyshev[:], (1/x-besselChebMid)/besselChebHalf) * math.Exp(x) / math.Sqrt(x)
	default:
		w := 1 / x
		s := 1 + w*(1.0/8+w*(9.0/128+w*(225.0/3072+w*11025.0/98304)))
		e := math.Exp(x / 2)
		return e * (invSqrtTwoPi * s / math.Sqrt(x)) * e
	}
}

// BesselI1 returns I₁(x). I₁ is odd.
// Regimes match BesselI0.
func BesselI1(x float64) float64 {
	if x < 0 {
		return -BesselI1(-x)
	}
	switch {
	case x < besselSeriesCutoff:
		return x / 2 * horner(besselI1Series[:], x*x)
	case x < besselAsymptoticCutoff:
		return clenshaw(besselI1Chebyshev[:], (1/x-besselChebMid)/besselChebHalf) * math.Exp(x) / math.Sqrt(x)
	default:
		w := 1 / x
		s := 1 - w*(3.0/8+w*(15.0/128+w*(315.0/3072+w*14175.0/98304)))
		e := math.Exp(x / 2)
		return e * (invSqrtTwoPi * s / math.Sqrt(x)) * e
	}
}

// horner evaluates Σ c[k]·zᵏ.
func horner(c []float64, z float64) float64 {
	var s float64
	for k := len(c) - 1; k >= 0; k-- {
		s = s*z + c[k]
	}

	return s
}

// clenshaw evaluates c₀/2 + Σ cₖTₖ(u).
func clenshaw(c []float64, u float64) float64 {
	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = 2*u*b1-b2+c[k], b1
	}

	return u*b1 - b2 + c[0]/2
}
