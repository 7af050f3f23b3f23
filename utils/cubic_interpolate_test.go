// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"start returns y1", 0, 1, 2, 3, 0, 1, 0},
		{"end returns y2", 0, 1, 2, 3, 1, 2, 0.001},
		{"linear data stays linear", 1, 2, 3, 4, 0.25, 2.25, 0.001},
		{"impulse at y2", 0, 0, 1, 0, 0.5, 0.5625, 0.001},
		{"flat input", 0.25, 0.25, 0.25, 0.25, 0.7, 0.25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			diff := float32(math.Abs(float64(got - tt.want)))
			if diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (tolerance %v, diff %v)",
					got, tt.want, tt.tolerance, diff)
			}
		})
	}
}

func TestCubicInterpolate_ZeroIsExact(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		y0, y1, y2, y3 := float32(i)*0.3, float32(i)*-0.7, float32(i+2), float32(i)*1.1
		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0 should return y1=%v, got %v", y1, got)
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})
	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var result float32
	b.ReportAllocs()

	for b.Loop() {
		result = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	}
	_ = result
}
