// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in hue/saturation/value space. H is in degrees [0, 360),
// S and V in [0, 1]. A carries alpha unchanged.
type HSV struct {
	H, S, V, A float64
}

// SRGBToLinear decodes gamma-encoded sRGB components to linear light.
// Alpha is left untouched.
func SRGBToLinear(c gg.RGBA) gg.RGBA {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()
	return gg.RGBA{R: r, G: g, B: b, A: c.A}
}

// RGBToHSV converts a linear RGB color to HSV.
func RGBToHSV(c gg.RGBA) HSV {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return HSV{H: h, S: s, V: v, A: c.A}
}

// RGB converts h back to linear RGB. Hues outside [0, 360) are wrapped.
func (h HSV) RGB() gg.RGBA {
	c := colorful.Hsv(Wrap(h.H, 0, 360), h.S, h.V)
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: h.A}
}

// LerpHSV interpolates two HSV colors, taking the shorter way around the
// hue circle.
func LerpHSV(a, b HSV, t float64) HSV {
	src, dst := a.H, b.H

	if math.Abs(src-dst) > 180 {
		if dst > src {
			src += 360
		} else {
			dst += 360
		}
	}

	return HSV{
		H: Wrap(Lerp(src, dst, t), 0, 360),
		S: Lerp(a.S, b.S, t),
		V: Lerp(a.V, b.V, t),
		A: Lerp(a.A, b.A, t),
	}
}
