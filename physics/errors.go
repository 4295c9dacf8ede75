// SPDX-License-Identifier: MIT

package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter indicates a non-positive, non-finite or otherwise
// meaningless model parameter passed to a constructor.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("physics: invalid model parameter")

// parameterErrorf tags ErrInvalidParameter with the constructor and field.
func parameterErrorf(op, name string, v float64) error {
	return fmt.Errorf("%s: %s=%g: %w", op, name, v, ErrInvalidParameter)
}

// RequirePositive returns a wrapped ErrInvalidParameter unless v is finite
// and strictly positive. op names the calling constructor (e.g. "efjc.New").
func RequirePositive(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return parameterErrorf(op, name, v)
	}

	return nil
}
