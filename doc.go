// SPDX-License-Identifier: EPL-2.0

// Package wavescope loads audio files for playback and waveform display.
//
// The root package is a thin convenience layer over the subpackages:
//
//   - audio: Source, Decoder, the format Registry and the in-memory Buffer
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//   - playback: a lock-free playback cursor serving chunks to an output device
//   - waveform: the sampling, spline and rasterizing pipeline for thumbnails
//   - visualizer: pan and zoom state driving waveform renders
//
// # Supported Formats
//
//   - WAV, integer PCM 8/16/24/32-bit (.wav, .wave)
//   - AIFF, 8/16/24/32-bit (.aiff, .aif)
//   - FLAC, 4-32 bit, up to eight channels (.flac)
//   - MP3 (.mp3)
//   - Ogg Vorbis (.ogg, .oga)
//
// # Quick Start
//
//	buf, err := wavescope.Open("song.ogg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Playback: pull chunks from the audio callback.
//	engine := playback.NewEngine(buf, playback.Options{})
//	defer engine.Close()
//	n, chunk := engine.PullChunk(512)
//
//	// Display: draw the whole file into a pixmap.
//	v := visualizer.New(visualizer.DefaultConfig())
//	pm := gg.NewPixmap(800, 120)
//	_ = v.Attach(pm)
//	_ = v.SetSource(buf)
//	_ = pm.SavePNG("song.png")
//
// # Logging
//
// wavescope is silent by default. SetLogger installs a *slog.Logger shared by
// every subpackage:
//
//	wavescope.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
// Levels used:
//   - Debug: sources attached, notifications dropped by a full queue
//   - Info: playback finished
//   - Warn: rejected seeks, released buffers, aborted renders
//
// # Thread Safety
//
// A Buffer is immutable once built, apart from Release. An Engine may be
// pulled from one audio goroutine while other goroutines seek and query it.
// A Visualizer serializes its own methods.
package wavescope
