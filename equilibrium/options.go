// SPDX-License-Identifier: MIT

package equilibrium

import "math"

// Defaults (single source of truth).
const (
	// DefaultZero is the lower integration bound standing in for γ = 0.
	DefaultZero = 1e-6

	// DefaultUpper is the upper integration bound (γ < 1 for inextensible chains).
	DefaultUpper = 1.0

	// DefaultPoints is the number of midpoint cells.
	DefaultPoints = 100
)

const (
	panicPointsInvalid = "equilibrium: WithPoints: n must be > 0"
	panicZeroInvalid   = "equilibrium: WithZero: eps must be finite and > 0"
	panicUpperInvalid  = "equilibrium: WithUpperBound: upper must be finite and > 0"
)

// Option mutates the normalization settings.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved normalization configuration.
type Options struct {
	zero   float64
	upper  float64
	points int
}

// WithPoints sets the number of midpoint cells. Panics if n <= 0.
func WithPoints(n int) Option {
	if n <= 0 {
		panic(panicPointsInvalid)
	}

	return func(o *Options) { o.points = n }
}

// WithZero sets the lower integration bound. Panics unless eps is finite and > 0.
func WithZero(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicZeroInvalid)
	}

	return func(o *Options) { o.zero = eps }
}

// WithUpperBound sets the upper integration bound, e.g. 1 + w/ℓ for a
// square-well chain. Panics unless upper is finite and > 0.
func WithUpperBound(upper float64) Option {
	if isNonFinite(upper) || upper <= 0 {
		panic(panicUpperInvalid)
	}

	return func(o *Options) { o.upper = upper }
}

// Zero, Upper and Points expose the resolved settings.
func (o Options) Zero() float64  { return o.zero }
func (o Options) Upper() float64 { return o.upper }
func (o Options) Points() int    { return o.points }

// NewOptions applies opts in order over the defaults. Later options win.
func NewOptions(opts ...Option) Options {
	o := Options{zero: DefaultZero, upper: DefaultUpper, points: DefaultPoints}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
