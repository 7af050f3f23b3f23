// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"max positive", 1, math.MaxInt16},
		{"max negative", -1, -math.MaxInt16},
		{"half positive", 0.5, 16383},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -3, -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    float32
		bitDepth int
		want     int
	}{
		{1, 16, math.MaxInt16},
		{-1, 16, -math.MaxInt16},
		{0, 24, 0},
		{1, 8, 127},
		{2, 24, 8388607},
	}

	for _, tt := range tests {
		if got := Float32ToInt(tt.input, tt.bitDepth); got != tt.want {
			t.Errorf("Float32ToInt(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
		}
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    int
		bitDepth int
		want     float32
	}{
		{0, 16, 0},
		{-32768, 16, -1},
		{16384, 16, 0.5},
		{-8388608, 24, -1},
		{64, 8, 0.5},
		{16384, 12, 0.5},
	}

	for _, tt := range tests {
		if got := IntToFloat32(tt.input, tt.bitDepth); got != tt.want {
			t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.input, tt.bitDepth, got, tt.want)
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})
	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
