// SPDX-License-Identifier: MIT

package fjc_test

import (
	"testing"
)

// BenchmarkNew_Short measures construction, dominated by the two normalizations.
func BenchmarkNew_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mustFJC(b, 8, 1, 1)
	}
}

// BenchmarkNew_Long measures construction with the extended-precision sum.
func BenchmarkNew_Long(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mustFJC(b, 128, 1, 1)
	}
}

func BenchmarkIsometric_NondimensionalForce(b *testing.B) {
	model := mustFJC(b, 64, 1, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = model.Isometric.NondimensionalForce(0.37)
	}
}

func BenchmarkIsometricLegendre_NondimensionalForce(b *testing.B) {
	model := mustFJC(b, 64, 1, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = model.Isometric.Legendre.NondimensionalForce(0.37)
	}
}
