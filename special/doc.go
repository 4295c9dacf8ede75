// SPDX-License-Identifier: MIT

// Package special implements the special functions the chain models are
// built on.
//
// What is inside:
//   - Langevin, LangevinDerivative: L(x) = coth x - 1/x and its slope.
//   - InverseLangevin: rational seed polished by InverseNewtonRaphson.
//   - Erfcx, Erfc, Erf: scaled complementary error function evaluated with
//     100 piecewise degree-6 polynomials plus asymptotic and reflection
//     branches.
//   - BesselI, BesselI0, BesselI1: modified Bessel functions of the first
//     kind, orders 0 and 1, in three argument regimes.
//
// Error policy:
//
//	Nothing here returns an error. Out-of-domain arguments propagate NaN or
//	±Inf, and BesselI answers -1 for orders other than 0 and 1.
//
// All functions are pure and safe for concurrent use.
package special
