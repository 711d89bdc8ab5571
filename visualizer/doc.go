// SPDX-License-Identifier: EPL-2.0

// Package visualizer keeps the pan and zoom state of a waveform view and
// redraws it on every change.
//
//	v := visualizer.New(visualizer.DefaultConfig())
//	pm := gg.NewPixmap(800, 120)
//	_ = v.Attach(pm)
//	_ = v.SetSource(buf)
//	_ = v.AddZoom(3)      // show a quarter of the source
//	_ = v.SetOffset(12.5) // starting 12.5 seconds in
//
// The zoom factor stays within [1, Config.MaxZoom] and the offset within
// [0, duration*(1 - 1/zoom)]. Every change runs the whole waveform pipeline
// again; nothing is redrawn incrementally.
package visualizer
