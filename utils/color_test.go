// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func closeRGBA(a, b gg.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestRGBToHSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   gg.RGBA
		want HSV
	}{
		{"red", gg.RGBA{R: 1, A: 1}, HSV{H: 0, S: 1, V: 1, A: 1}},
		{"green", gg.RGBA{G: 1, A: 1}, HSV{H: 120, S: 1, V: 1, A: 1}},
		{"blue", gg.RGBA{B: 1, A: 0.5}, HSV{H: 240, S: 1, V: 1, A: 0.5}},
		{"magenta side", gg.RGBA{R: 1, B: 0.5, A: 1}, HSV{H: 330, S: 1, V: 1, A: 1}},
		{"grey", gg.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, HSV{H: 0, S: 0, V: 0.5, A: 1}},
		{"black", gg.RGBA{A: 1}, HSV{A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RGBToHSV(tt.in)
			if math.Abs(got.H-tt.want.H) > 1e-9 || math.Abs(got.S-tt.want.S) > 1e-9 ||
				math.Abs(got.V-tt.want.V) > 1e-9 || got.A != tt.want.A {
				t.Errorf("RGBToHSV(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSV_RoundTrip(t *testing.T) {
	t.Parallel()

	colors := []gg.RGBA{
		{R: 0.2, G: 0.4, B: 0.6, A: 1},
		{R: 0.9, G: 0.1, B: 0.3, A: 0.7},
		{R: 0.05, G: 0.8, B: 0.05, A: 1},
		{R: 0.5, G: 0.5, B: 0.1, A: 0},
	}

	for _, c := range colors {
		got := RGBToHSV(c).RGB()
		if !closeRGBA(got, c, 1e-9) {
			t.Errorf("RGBToHSV(%+v).RGB() = %+v", c, got)
		}
	}
}

func TestLerpHSV_ShortestHuePath(t *testing.T) {
	t.Parallel()

	a := HSV{H: 350, S: 0, V: 0, A: 1}
	b := HSV{H: 10, S: 1, V: 1, A: 1}

	mid := LerpHSV(a, b, 0.5)
	if math.Abs(mid.H) > 1e-9 && math.Abs(mid.H-360) > 1e-9 {
		t.Errorf("LerpHSV hue = %v, want 0 (through 360)", mid.H)
	}
	if math.Abs(mid.S-0.5) > 1e-9 || math.Abs(mid.V-0.5) > 1e-9 {
		t.Errorf("LerpHSV s/v = %v/%v, want 0.5/0.5", mid.S, mid.V)
	}

	quarter := LerpHSV(b, a, 0.25)
	if math.Abs(quarter.H-5) > 1e-9 {
		t.Errorf("LerpHSV(10->350, 0.25) hue = %v, want 5", quarter.H)
	}
}

func TestSRGBToLinear(t *testing.T) {
	t.Parallel()

	got := SRGBToLinear(gg.RGBA{R: 0, G: 0.5, B: 1, A: 0.5})

	want := gg.RGBA{R: 0, G: 0.21404114048223255, B: 1, A: 0.5}
	if !closeRGBA(got, want, 1e-9) {
		t.Errorf("SRGBToLinear() = %+v, want %+v", got, want)
	}
}
