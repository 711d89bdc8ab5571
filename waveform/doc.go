// SPDX-License-Identifier: EPL-2.0

// Package waveform draws smoothed amplitude thumbnails of an audio.Buffer.
//
// A render pass has three stages:
//
//   - Sampling: the buffer is quantized once into a 16-bit Lookup.
//     SampleWindow summarizes the lookup entries under one pixel column as
//     RMS and peak amplitudes, visiting at most MaxSamplesPerPixel entries.
//   - Fitting: BuildSpline merges columns into groups of SmoothingAmount and
//     fits a natural cubic spline through the resulting control points.
//   - Rasterizing: Rasterize evaluates the spline at every column and fills
//     the pixels below it with an HSV gradient, a stroked boundary and the
//     column peak.
//
// Thumbnail ties the stages together:
//
//	thumb := waveform.NewThumbnail(buf, gg.Hex("#5D5F88"), 1)
//	pm := gg.NewPixmap(800, 120)
//	if err := thumb.Render(pm, 0, buf.Duration()); err != nil {
//	    return err
//	}
//	pm.SavePNG("wave.png")
//
// Mono sources fill the whole height from the bottom row up. Stereo sources
// draw channel 0 upward and channel 1 downward from the middle row.
// Anything wider than stereo renders a cleared surface.
package waveform
