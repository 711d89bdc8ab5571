// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/gogpu/gg"

	"github.com/ik5/wavescope/utils"
)

// Palette holds the HSV colors of a rendered waveform: the fill gradient
// runs from FillA at the baseline to FillB at full amplitude, Boundary
// strokes the curve.
type Palette struct {
	FillA    utils.HSV
	FillB    utils.HSV
	Boundary utils.HSV
}

// NewPalette derives a palette from one linear RGB base color. The fill
// colors sit 2.5 degrees either side of the base hue; value is capped at 0.5
// and saturation lowered so the boundary stays brighter than the fill.
func NewPalette(base gg.RGBA) Palette {
	hsv := utils.RGBToHSV(base)

	value := min(hsv.V, 0.5) * hsv.A
	saturation := max(hsv.S-0.45, 0) * hsv.A

	return Palette{
		FillA:    utils.HSV{H: utils.Wrap(hsv.H, -2.5, 360), S: saturation + 0.35, V: value, A: 1},
		FillB:    utils.HSV{H: utils.Wrap(hsv.H, 2.5, 360), S: saturation + 0.4, V: value + 0.15, A: 1},
		Boundary: utils.HSV{H: hsv.H, S: saturation, V: value + 0.35, A: 1},
	}
}
