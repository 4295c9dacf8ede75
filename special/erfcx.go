// SPDX-License-Identifier: MIT

package special

import "math"

const (
	// erfcxAsymptoticCutoff is the argument from which the continued-fraction
	// asymptotic form replaces the lookup table.
	erfcxAsymptoticCutoff = 50.0

	// erfcxLeadingCutoff is the argument from which only the leading
	// 1/(x√π) term survives in double precision.
	erfcxLeadingCutoff = 5e7

	// erfcxOverflowCutoff is the negative argument below which e^{x²} overflows.
	erfcxOverflowCutoff = -26.7

	// erfcxReflectionCutoff is the negative argument below which the
	// reflected erfcx(-x) term underflows against 2e^{x²}.
	erfcxReflectionCutoff = -6.1

	// invSqrtPi is 1/√π.
	invSqrtPi = 0.56418958354775628694807945156077258584405062932900
)

// Erfcx returns the scaled complementary error function e^{x²}·erfc(x).
//
// Branches:
//   - x >= 50: rational asymptotic form, leading term only beyond 5e7.
//   - 0 <= x < 50: piecewise polynomial lookup on z = 400/(4+x).
//   - -6.1 <= x < 0: reflection 2e^{x²} - erfcx(-x).
//   - -26.7 <= x < -6.1: 2e^{x²}.
//   - x < -26.7: math.MaxFloat64.
func Erfcx(x float64) float64 {
	switch {
	case x >= erfcxAsymptoticCutoff:
		if x > erfcxLeadingCutoff {
			return invSqrtPi / x
		}
		x2 := x * x
		return invSqrtPi * (x2*(x2+4.5) + 2) / (x * (x2*(x2+5) + 3.75))
	case x >= 0:
		return erfcxY100(400 / (4 + x))
	case x < erfcxOverflowCutoff:
		return math.MaxFloat64
	case x < erfcxReflectionCutoff:
		return 2 * math.Exp(x*x)
	default:
		return 2*math.Exp(x*x) - erfcxY100(400/(4-x))
	}
}

// Erfc returns the complementary error function erfcx(x)·e^{-x²}.
func Erfc(x float64) float64 {
	return Erfcx(x) * math.Exp(-x*x)
}

// Erf returns the error function 1 - erfc(x).
func Erf(x float64) float64 {
	return 1 - Erfc(x)
}

// erfcxY100 evaluates the bucket polynomial for z in (0, 100].
// z = 100 is x = 0 exactly, where erfcx is 1.
func erfcxY100(z float64) float64 {
	k := int(z)
	if k >= len(erfcxCoefficients) {
		return 1
	}
	t := 2*z - float64(2*k+1)
	c := &erfcxCoefficients[k]

	return c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*(c[4]+t*(c[5]+t*c[6])))))
}
