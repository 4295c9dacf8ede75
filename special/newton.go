// SPDX-License-Identifier: MIT

package special

import "math"

// InverseNewtonRaphson solves f(x) = target for x by Newton-Raphson from
// initialGuess, with fPrime the derivative of f.
//
// Iteration stops on whichever comes first: the relative residual
// |f(x)-target|/|target| of the current iterate drops to relTol, or
// maxIters steps have been taken. The residual is measured before each
// step, so a guess that is already within relTol still receives exactly one
// Newton step.
//
// Complexity: O(maxIters) evaluations of f and fPrime.
func InverseNewtonRaphson(target float64, f, fPrime func(float64) float64, initialGuess, relTol float64, maxIters int) float64 {
	var (
		x           = initialGuess
		residual    float64
		residualRel = 1.0
		iters       int
	)
	for residualRel > relTol && iters < maxIters {
		residual = f(x) - target
		x -= residual / fPrime(x)
		residualRel = math.Abs(residual / target)
		iters++
	}

	return x
}
