// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/ik5/wavescope/utils"
)

const (
	// StrokeBorderSize is the thickness of the boundary stroke in pixels.
	StrokeBorderSize = 2

	ditherAmount = 0.025
)

// Surface is the pixel grid a waveform is drawn into. *gg.Pixmap satisfies it.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c gg.RGBA)
	Clear(c gg.RGBA)
}

// Curves is the per-channel output of the sampling and fitting stages.
// Samples[ch][i] describes column FirstColumn+i.
type Curves struct {
	Channels    int
	FirstColumn int
	Samples     [MaxSupportedChannels][]ChannelSample
	Segments    [MaxSupportedChannels][]SplineSegment
}

// sample returns the column summary for x, if one was taken.
func (c *Curves) sample(ch, x int) (ChannelSample, bool) {
	i := x - c.FirstColumn
	if i < 0 || i >= len(c.Samples[ch]) {
		return ChannelSample{}, false
	}
	return c.Samples[ch][i], true
}

// Rasterize clears dst and draws every channel of c. Mono uses the full
// height growing up from the bottom row; stereo mirrors channel 0 upward and
// channel 1 downward from the middle row. Colors are premultiplied by alpha.
// rng drives the gradient dither.
func Rasterize(dst Surface, c *Curves, p Palette, rng *rand.Rand) {
	dst.Clear(gg.Transparent)

	width, height := dst.Width(), dst.Height()
	maxAmplitude := height
	if c.Channels == 2 {
		maxAmplitude = height / 2
	}
	if maxAmplitude <= 0 {
		return
	}

	peakColor := p.FillB.RGB()

	for ch := 0; ch < c.Channels && ch < MaxSupportedChannels; ch++ {
		segments := c.Segments[ch]
		seg := 0

		for x := 0; x < width; x++ {
			for seg < len(segments) && float64(x) >= segments[seg].Position+segments[seg].Width {
				seg++
			}
			if seg >= len(segments) {
				break
			}

			sample, ok := c.sample(ch, x)
			if !ok {
				break
			}

			amplitude := segments[seg].Eval(float64(x))
			boundaryStart := amplitude - StrokeBorderSize*0.5
			boundaryEnd := amplitude + StrokeBorderSize*0.5

			for px := 0; px < maxAmplitude; px++ {
				center := float64(px) + 0.5

				dither := rng.Float64()*ditherAmount - ditherAmount/2
				grad := utils.Clamp(float64(px)/float64(maxAmplitude)+dither, 0, 1)
				fill := utils.LerpHSV(p.FillA, p.FillB, grad)

				border := 1.0
				if px <= int(boundaryStart) {
					border = 1 - utils.Clamp(boundaryStart-float64(px), 0, 1)
				}

				color := peakColor
				if px != sample.Peak {
					color = utils.LerpHSV(fill, p.Boundary, border).RGB()
				}

				alpha := math.Max(
					utils.Clamp(boundaryEnd-center, 0, 1),
					utils.Clamp(float64(sample.Peak-px)+0.25, 0, 1),
				)
				if alpha <= 0 {
					break
				}

				y := height - px - 1
				if c.Channels == 2 {
					if ch == 0 {
						y = height/2 - px
					} else {
						y = height/2 + px
					}
				}

				dst.SetPixel(x, y, gg.RGBA{
					R: color.R * alpha,
					G: color.G * alpha,
					B: color.B * alpha,
					A: alpha,
				})
			}
		}
	}
}
