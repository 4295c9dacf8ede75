// SPDX-License-Identifier: MIT

package special

import "math"

const (
	// langevinSeriesCutoff bounds |x| below which the odd Taylor series
	// replaces coth x - 1/x to avoid cancellation.
	langevinSeriesCutoff = 1e-2

	// inverseLangevinLinearCutoff bounds |y| below which L⁻¹(y) = 3y.
	inverseLangevinLinearCutoff = 1e-3

	// InverseLangevinRelTol and InverseLangevinMaxIters configure the
	// Newton-Raphson polish of the rational seed.
	InverseLangevinRelTol   = 1e-2
	InverseLangevinMaxIters = 100
)

// Langevin returns L(x) = coth x - 1/x.
func Langevin(x float64) float64 {
	if math.Abs(x) < langevinSeriesCutoff {
		x2 := x * x
		return x * (1.0/3 - x2*(1.0/45-x2*2.0/945))
	}

	return 1/math.Tanh(x) - 1/x
}

// LangevinDerivative returns L'(x) = 1/x² - 1/sinh²x.
func LangevinDerivative(x float64) float64 {
	if math.Abs(x) < langevinSeriesCutoff {
		x2 := x * x
		return 1.0/3 - x2*(1.0/15-x2*2.0/189)
	}
	s := math.Sinh(x)

	return 1/(x*x) - 1/(s*s)
}

// InverseLangevin returns x with L(x) = y for y in (-1, 1).
//
// For |y| <= 1e-3 the leading Taylor term 3y is returned. Otherwise the
// rational approximant
//
//	y(3 - 4.22785y + 2.14234y²) / ((1 - y)(1 - 0.39165y - 0.41103y² + 0.71716y³))
//
// seeds InverseNewtonRaphson with InverseLangevinRelTol and
// InverseLangevinMaxIters. Negative y uses the odd symmetry of L.
// The result diverges as |y| → 1 and is undefined outside (-1, 1).
func InverseLangevin(y float64) float64 {
	if math.Abs(y) <= inverseLangevinLinearCutoff {
		return 3 * y
	}
	if y < 0 {
		return -InverseLangevin(-y)
	}
	guess := (2.14234*y*y*y - 4.22785*y*y + 3*y) / (1 - y) /
		(0.71716*y*y*y - 0.41103*y*y - 0.39165*y + 1)

	return InverseNewtonRaphson(y, Langevin, LangevinDerivative, guess, InverseLangevinRelTol, InverseLangevinMaxIters)
}

// LogSinhc returns ln(sinh x / x), the negative relative Gibbs free energy
// per freely jointed link. It is even, uses its Taylor series near zero and
// avoids overflow of sinh for large |x|.
func LogSinhc(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < langevinSeriesCutoff:
		x2 := x * x
		return x2 * (1.0/6 - x2*(1.0/180-x2/2835))
	case x > 20:
		return x - math.Ln2 - math.Log(x) + math.Log1p(-math.Exp(-2*x))
	default:
		return math.Log(math.Sinh(x) / x)
	}
}
