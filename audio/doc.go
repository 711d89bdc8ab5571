// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives shared by playback and rendering.
//
// This package contains:
//   - Source interface for streaming decoder output
//   - Decoder interface and a format Registry
//   - Buffer, the fully decoded interleaved sample buffer
//   - Conversions from and to github.com/go-audio/audio buffers
//
// # Source Interface
//
// The Source interface is the contract every format decoder satisfies:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Buffer
//
// A Buffer holds the whole stream in memory as interleaved float32 samples.
// It is built once, usually with ReadAll, and then shared read-only between
// a playback.Engine and a waveform renderer:
//
//	buf, err := audio.ReadAll(src)
//	fmt.Println(buf.Frames(), buf.Channels(), buf.Duration())
//
// Release frees the samples. Nothing synchronizes Release with readers of the
// buffer; callers must stop playback and rendering first.
//
// # Format Registry
//
// The registry maps format keys or file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	buf, err := registry.Load(file, filepath.Ext(path))
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll treats
// io.EOF as the normal end of stream and wraps any other error.
package audio
