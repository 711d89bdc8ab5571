// SPDX-License-Identifier: EPL-2.0

package visualizer

import "github.com/gogpu/gg"

const (
	// DefaultMaxZoom is the zoom limit used when Config.MaxZoom is unset.
	DefaultMaxZoom = 20.0

	// ZoomLimit is the largest MaxZoom accepted.
	ZoomLimit = 100.0

	// DefaultTint is the sRGB base color of the waveform.
	DefaultTint = "#5D5F88"
)

// Config holds visualizer configuration
type Config struct {
	// MaxZoom is the largest zoom factor AddZoom reaches, in [1, 100] (default: 20)
	MaxZoom float64

	// Tint is the sRGB color the waveform palette is derived from (default: #5D5F88)
	Tint gg.RGBA

	// Seed fixes the gradient dither. Equal seeds give equal pixels.
	Seed uint64
}

// DefaultConfig returns the configuration New falls back to.
func DefaultConfig() Config {
	return Config{
		MaxZoom: DefaultMaxZoom,
		Tint:    gg.Hex(DefaultTint),
	}
}

// withDefaults fills unset fields and clamps MaxZoom.
func (c Config) withDefaults() Config {
	if c.MaxZoom == 0 {
		c.MaxZoom = DefaultMaxZoom
	}
	c.MaxZoom = min(max(c.MaxZoom, 1), ZoomLimit)

	if c.Tint == (gg.RGBA{}) {
		c.Tint = gg.Hex(DefaultTint)
	}

	return c
}
