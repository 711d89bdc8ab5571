// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/gg"
)

const pixelTolerance = 2.0 / 255

func flatCurves(channels, columns int, amplitude float64, peak int) *Curves {
	c := &Curves{Channels: channels}
	c.Samples[0] = make([]ChannelSample, columns)
	for i := range c.Samples[0] {
		c.Samples[0][i] = ChannelSample{RMS: amplitude, Peak: peak, Count: 1}
	}
	c.Segments[0] = []SplineSegment{{A: amplitude, Position: 0, Width: float64(columns)}}
	return c
}

func testPalette() Palette {
	return NewPalette(gg.RGBA{R: 0.2, G: 0.3, B: 0.6, A: 1})
}

func alphaAt(pm *gg.Pixmap, x, y int) float64 {
	return pm.GetPixel(x, y).A
}

func TestRasterize_Mono(t *testing.T) {
	t.Parallel()

	pm := gg.NewPixmap(20, 40)
	p := testPalette()
	Rasterize(pm, flatCurves(1, 20, 10, 3), p, rand.New(rand.NewPCG(1, 2)))

	for _, x := range []int{0, 7, 19} {
		if a := alphaAt(pm, x, 39); math.Abs(a-1) > pixelTolerance {
			t.Errorf("column %d bottom row alpha = %v, want 1", x, a)
		}
		if a := alphaAt(pm, x, 29); math.Abs(a-0.5) > pixelTolerance {
			t.Errorf("column %d boundary edge alpha = %v, want 0.5", x, a)
		}
		if a := alphaAt(pm, x, 28); a != 0 {
			t.Errorf("column %d above the curve alpha = %v, want 0", x, a)
		}

		peak := pm.GetPixel(x, 36)
		want := p.FillB.RGB()
		if math.Abs(peak.R-want.R) > pixelTolerance || math.Abs(peak.G-want.G) > pixelTolerance ||
			math.Abs(peak.B-want.B) > pixelTolerance {
			t.Errorf("column %d peak pixel = %+v, want %+v", x, peak, want)
		}
	}
}

func TestRasterize_BlankPastLastSegment(t *testing.T) {
	t.Parallel()

	c := flatCurves(1, 20, 10, 3)
	c.Segments[0][0].Width = 10

	pm := gg.NewPixmap(20, 40)
	Rasterize(pm, c, testPalette(), rand.New(rand.NewPCG(1, 2)))

	if a := alphaAt(pm, 9, 39); a == 0 {
		t.Error("last covered column is blank")
	}
	for x := 10; x < 20; x++ {
		for y := range 40 {
			if a := alphaAt(pm, x, y); a != 0 {
				t.Fatalf("pixel (%d, %d) alpha = %v, want 0", x, y, a)
			}
		}
	}
}

func TestRasterize_Stereo(t *testing.T) {
	t.Parallel()

	pm := gg.NewPixmap(20, 40)
	Rasterize(pm, flatCurves(2, 20, 5, 0), testPalette(), rand.New(rand.NewPCG(1, 2)))

	tests := []struct {
		y    int
		want float64
	}{
		{20, 1},
		{16, 1},
		{15, 0.5},
		{14, 0},
		{21, 0},
		{39, 0},
	}

	for _, tt := range tests {
		if a := alphaAt(pm, 10, tt.y); math.Abs(a-tt.want) > pixelTolerance {
			t.Errorf("row %d alpha = %v, want %v", tt.y, a, tt.want)
		}
	}
}

func TestRasterize_ClearsSurface(t *testing.T) {
	t.Parallel()

	pm := gg.NewPixmap(8, 8)
	pm.Clear(gg.RGBA{R: 1, A: 1})

	Rasterize(pm, &Curves{}, testPalette(), rand.New(rand.NewPCG(1, 2)))

	if !bytes.Equal(pm.Data(), make([]byte, 8*8*4)) {
		t.Error("surface not cleared")
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	t.Parallel()

	a := gg.NewPixmap(20, 40)
	b := gg.NewPixmap(20, 40)
	c := flatCurves(1, 20, 17.3, 12)

	Rasterize(a, c, testPalette(), rand.New(rand.NewPCG(7, 7)))
	Rasterize(b, c, testPalette(), rand.New(rand.NewPCG(7, 7)))

	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("equal seeds produced different pixels")
	}
}
