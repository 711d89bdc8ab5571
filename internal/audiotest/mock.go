// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMockRead is returned by FailingSource.
var ErrMockRead = errors.New("mock read failure")

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // Total frames to generate
	generated  int // Frames generated so far
	waveform   func(frame int, channel int) float32
	closed     bool
}

// NewMockSource creates a new mock audio source producing frames frames.
// waveform is a function that generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		return Sine(frame, sampleRate, frequency)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the generator to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.frames-m.generated)

	for frame := range framesToWrite {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.frames {
		return written, io.EOF
	}

	return written, nil
}

// FailingSource returns a few samples and then ErrMockRead.
type FailingSource struct {
	MockSource
	failed bool
}

// NewFailingSource builds a source that fails on its second read.
func NewFailingSource(sampleRate, channels int) *FailingSource {
	return &FailingSource{
		MockSource: *NewConstantSource(sampleRate, channels, 1<<20, 0.25),
	}
}

func (f *FailingSource) ReadSamples(dst []float32) (int, error) {
	if f.failed {
		return 0, ErrMockRead
	}
	f.failed = true
	return f.MockSource.ReadSamples(dst[:f.channels])
}

// Sine returns the value of a unit sine of the given frequency at frame.
func Sine(frame, sampleRate int, frequency float64) float32 {
	t := float64(frame) / float64(sampleRate)
	return float32(math.Sin(2 * math.Pi * frequency * t))
}

// Interleave builds interleaved samples of frames frames from a generator.
func Interleave(channels, frames int, waveform func(frame int, channel int) float32) []float32 {
	out := make([]float32, channels*frames)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = waveform(f, ch)
		}
	}
	return out
}
