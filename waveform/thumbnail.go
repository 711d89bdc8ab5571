// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/internal/logging"
	"github.com/ik5/wavescope/utils"
)

// Thumbnail renders a window of one buffer into a Surface. The lookup is
// built once; every Render runs the sampling, fitting and rasterizing stages
// from scratch.
type Thumbnail struct {
	lookup   Lookup
	channels int
	duration float64
	palette  Palette
	seed     uint64
}

// NewThumbnail prepares buf for rendering. tint is an sRGB color, the
// palette is derived from its linear value. seed fixes the gradient dither so
// equal inputs render equal pixels.
func NewThumbnail(buf *audio.Buffer, tint gg.RGBA, seed uint64) *Thumbnail {
	return &Thumbnail{
		lookup:   BuildLookup(buf),
		channels: buf.Channels(),
		duration: buf.Duration(),
		palette:  NewPalette(utils.SRGBToLinear(tint)),
		seed:     seed,
	}
}

// Channels returns the channel count of the source buffer.
func (t *Thumbnail) Channels() int { return t.channels }

// Duration returns the source length in seconds.
func (t *Thumbnail) Duration() float64 { return t.duration }

// Palette returns the colors derived from the tint.
func (t *Thumbnail) Palette() Palette { return t.palette }

// Empty reports whether there is nothing to draw.
func (t *Thumbnail) Empty() bool {
	return len(t.lookup) == 0 || t.duration <= 0
}

// Render draws the source between drawStart and drawEnd seconds across the
// full width of dst.
//
// An empty source, a channel layout other than mono or stereo, or an empty
// window leave dst cleared. A spline that cannot be solved aborts the pass
// with an error before dst is touched.
func (t *Thumbnail) Render(dst Surface, drawStart, drawEnd float64) error {
	width, height := dst.Width(), dst.Height()

	if t.Empty() || t.channels < 1 || t.channels > MaxSupportedChannels ||
		width <= 0 || height <= 0 || drawEnd <= drawStart {
		dst.Clear(gg.Transparent)
		return nil
	}

	curves := t.sample(width, height, drawStart, drawEnd)

	for ch := range t.channels {
		segments, err := BuildSpline(curves.Samples[ch], curves.FirstColumn)
		if err != nil {
			logging.Logger().Warn("waveform render aborted",
				"channel", ch,
				"start", drawStart,
				"end", drawEnd,
				"error", err,
			)
			return fmt.Errorf("channel %d: %w", ch, err)
		}
		curves.Segments[ch] = segments
	}

	rng := rand.New(rand.NewPCG(t.seed, t.seed^0x9e3779b97f4a7c15))
	Rasterize(dst, curves, t.palette, rng)

	return nil
}

// sample summarizes every column of the window plus two smoothing groups on
// each side. The first column is locked to the smoothing grid of the window
// offset so panning does not make the curve shimmer.
func (t *Thumbnail) sample(width, height int, drawStart, drawEnd float64) *Curves {
	maxAmplitude := height
	if t.channels == 2 {
		maxAmplitude = height / 2
	}

	window := drawEnd - drawStart
	pixelSeconds := window / float64(width)
	offsetPx := max(int(math.Round(drawStart/pixelSeconds)), 0)

	first := -2*SmoothingAmount - offsetPx%SmoothingAmount
	last := width + 2*SmoothingAmount

	curves := &Curves{
		Channels:    t.channels,
		FirstColumn: first,
	}

	size := float64(len(t.lookup))
	fraction := func(column float64) float64 {
		return (column/float64(width)*window + drawStart) / t.duration
	}

	for x := first; x < last; x++ {
		from := fraction(float64(x) - 0.5)
		if from > 1 {
			break
		}
		to := fraction(float64(x) + 0.5)

		start := int(math.Mod(from, 1) * size)
		end := int(math.Mod(to, 1) * size)

		columns := SampleWindow(t.channels, t.lookup, start, end, maxAmplitude)
		for ch := range t.channels {
			curves.Samples[ch] = append(curves.Samples[ch], columns[ch])
		}
	}

	return curves
}
