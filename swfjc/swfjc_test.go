// SPDX-License-Identifier: MIT

package swfjc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polymers/equilibrium"
	"github.com/katalvlaran/polymers/physics"
	"github.com/katalvlaran/polymers/quadrature"
	"github.com/katalvlaran/polymers/special"
	"github.com/katalvlaran/polymers/swfjc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

const temperature = 300.0

func mustSWFJC(t testing.TB, n int, l, w float64, opts ...equilibrium.Option) *swfjc.SWFJC {
	t.Helper()
	model, err := swfjc.New(n, l, 1, w, opts...)
	require.NoError(t, err)

	return model
}

func TestNew_EchoesParametersAndErrors(t *testing.T) {
	model := mustSWFJC(t, 10, 0.8, 0.4)
	assert.Equal(t, 0.4, model.WellWidth)
	assert.InDelta(t, 1.5, model.Response.MaximumStretch, 1e-15)
	assert.InDelta(t, 8, model.ContourLength, 1e-12)
	assert.Equal(t, model.Chain, model.ModifiedCanonical.WeakPotential.Chain)

	_, err := swfjc.New(10, 0.8, 1, 0)
	assert.ErrorIs(t, err, physics.ErrInvalidParameter)
	_, err = swfjc.New(0, 0.8, 1, 0.4)
	assert.ErrorIs(t, err, physics.ErrInvalidParameter)
	_, err = swfjc.New(10, 0.8, 1, 0.4, equilibrium.WithZero(2))
	assert.ErrorIs(t, err, equilibrium.ErrNormalization)
}

// ------------------------------
// Response
// ------------------------------

func TestResponse_AgainstShellQuadrature(t *testing.T) {
	for _, z := range []float64{1.01, 1.5, 3} {
		r := swfjc.Response{MaximumStretch: z}
		g0 := (z*z*z - 1) / 3
		for _, eta := range []float64{0.2, 2, 3.9, 4.1, 9} {
			g := quad.Fixed(func(s float64) float64 { return s * math.Sinh(eta*s) / eta }, 1, z, 64, nil, 0)
			g1 := quad.Fixed(func(s float64) float64 {
				return s*s*math.Cosh(eta*s)/eta - s*math.Sinh(eta*s)/(eta*eta)
			}, 1, z, 64, nil, 0)
			assert.True(t, scalar.EqualWithinRel(-math.Log(g/g0), r.NondimensionalRelativeGibbsFreeEnergyPerLink(eta), 1e-10), "ς=%g η=%g", z, eta)
			assert.True(t, scalar.EqualWithinRel(g1/g, r.NondimensionalEndToEndLengthPerLink(eta), 1e-10), "ς=%g η=%g", z, eta)
		}
	}
}

func TestResponse_LegendreDuality(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}
	for _, z := range []float64{1.01, 1.5, 3} {
		r := swfjc.Response{MaximumStretch: z}
		for _, eta := range []float64{1e-3, 0.3, 3.5, 4.5, 20} {
			gamma := -fd.Derivative(r.NondimensionalRelativeGibbsFreeEnergyPerLink, eta, settings)
			assert.True(t, scalar.EqualWithinRel(r.NondimensionalEndToEndLengthPerLink(eta), gamma, 1e-7), "ς=%g η=%g", z, eta)
			compliance := fd.Derivative(r.NondimensionalEndToEndLengthPerLink, eta, settings)
			assert.True(t, scalar.EqualWithinRel(r.NondimensionalCompliance(eta), compliance, 1e-7), "ς=%g η=%g", z, eta)
		}
	}
}

func TestResponse_Limits(t *testing.T) {
	r := swfjc.Response{MaximumStretch: 1.5}
	assert.Equal(t, 0.0, r.NondimensionalEndToEndLengthPerLink(0))
	assert.Equal(t, 0.0, r.NondimensionalRelativeGibbsFreeEnergyPerLink(0))
	// ⟨s²⟩/3 at zero force.
	assert.InDelta(t, 3*(math.Pow(1.5, 5)-1)/(5*(math.Pow(1.5, 3)-1))/3, r.NondimensionalCompliance(0), 1e-14)

	// Strong forces pull every link to the outer wall: γ = ς - 2/η + 1/(ςη²).
	for _, eta := range []float64{1e3, 1e5} {
		assert.InDelta(t, 1.5-2/eta+1/(1.5*eta*eta), r.NondimensionalEndToEndLengthPerLink(eta), 1e-8)
		assert.False(t, math.IsInf(r.NondimensionalRelativeGibbsFreeEnergyPerLink(eta), 0))
	}
	assert.Equal(t, -r.NondimensionalEndToEndLengthPerLink(2.5), r.NondimensionalEndToEndLengthPerLink(-2.5))
}

func TestResponse_NarrowWellIsFJC(t *testing.T) {
	r := swfjc.Response{MaximumStretch: 1 + 1e-7}
	for _, eta := range []float64{0.5, 2, 6} {
		assert.InDelta(t, special.Langevin(eta), r.NondimensionalEndToEndLengthPerLink(eta), 1e-6, "η=%g", eta)
		assert.InDelta(t, -special.LogSinhc(eta), r.NondimensionalRelativeGibbsFreeEnergyPerLink(eta), 1e-6, "η=%g", eta)
	}
}

func TestResponse_SeriesSeam(t *testing.T) {
	for _, z := range []float64{1.01, 1.5, 3} {
		r := swfjc.Response{MaximumStretch: z}
		below, above := 4*(1-1e-13), 4*(1+1e-13)
		assert.InDelta(t, r.NondimensionalEndToEndLengthPerLink(below), r.NondimensionalEndToEndLengthPerLink(above), 1e-11)
		assert.InDelta(t, r.NondimensionalCompliance(below), r.NondimensionalCompliance(above), 1e-11)
		assert.InDelta(t, r.NondimensionalRelativeGibbsFreeEnergyPerLink(below), r.NondimensionalRelativeGibbsFreeEnergyPerLink(above), 1e-10)
	}
}

// ------------------------------
// Ensembles
// ------------------------------

func TestIsometric_InvertsIsotensional(t *testing.T) {
	model := mustSWFJC(t, 8, 1, 0.5)
	for _, g := range []float64{0.05, 0.6, 1.2, 1.45} {
		eta := model.Isometric.NondimensionalForce(g, temperature)
		assert.True(t, scalar.EqualWithinRel(g, model.Isotensional.NondimensionalEndToEndLengthPerLink(eta, temperature), 1e-11), "γ=%g", g)
	}
	assert.InDelta(t, 5.922758630461217, model.Isometric.NondimensionalForce(1.2, temperature), 1e-9)
}

func TestIsometric_EquilibriumDistribution(t *testing.T) {
	model := mustSWFJC(t, 12, 1, 0.5)
	o := equilibrium.NewOptions(equilibrium.WithUpperBound(1.5))
	got := quadrature.Integrate1D(model.Isometric.NondimensionalEquilibriumRadialDistribution, o.Zero(), o.Upper(), o.Points())
	assert.InDelta(t, 1, got, 1e-9)

	r := 0.7 * model.ContourLength
	nd := model.Isometric.NondimensionalEquilibriumDistribution(0.7)
	assert.InDelta(t, nd/math.Pow(model.ContourLength, 3), model.Isometric.EquilibriumDistribution(r), 1e-15)
	ndr := model.Isometric.NondimensionalEquilibriumRadialDistribution(0.7)
	assert.InDelta(t, ndr/model.ContourLength, model.Isometric.EquilibriumRadialDistribution(r), 1e-12)
	assert.InDelta(t, 4*math.Pi*0.49*nd, ndr, 1e-12)
}

func TestModifiedCanonical_Convergence(t *testing.T) {
	model := mustSWFJC(t, 8, 1, 0.5)
	strong := model.ModifiedCanonical.StrongPotential
	for _, gp := range []float64{0.3, 1.2} {
		ref := model.Isometric.NondimensionalForce(gp, temperature)
		r1 := math.Abs(strong.NondimensionalForce(gp, 1e3)-ref) / ref
		r2 := math.Abs(strong.NondimensionalForce(gp, 2e3)-ref) / ref
		assert.InDelta(t, -1, math.Log(r2/r1)/math.Log(2), 1e-6, "γp=%g", gp)
	}
	weak := model.ModifiedCanonical.WeakPotential
	residual := func(lambda float64) float64 {
		ref := model.Response.NondimensionalEndToEndLengthPerLink(1)
		return math.Abs(weak.NondimensionalEndToEndLengthPerLink(1/lambda, lambda)-ref) / ref
	}
	assert.InDelta(t, 1, math.Log(residual(0.02)/residual(0.01))/math.Log(2), 1e-2)
}
