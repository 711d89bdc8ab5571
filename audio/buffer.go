// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is a fully decoded, interleaved float32 PCM stream.
//
// A Buffer is read-only once built. The playback engine and the waveform
// renderer share it without locking; Release is the only mutation and the
// caller must make sure neither of them is running when it is called.
type Buffer struct {
	samples    []float32
	channels   int
	frames     int
	sampleRate int
}

// NewBuffer wraps interleaved samples. It takes ownership of samples.
func NewBuffer(samples []float32, channels, sampleRate int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(samples)%channels != 0 {
		return nil, ErrMisalignedSamples
	}

	return &Buffer{
		samples:    samples,
		channels:   channels,
		frames:     len(samples) / channels,
		sampleRate: sampleRate,
	}, nil
}

// Samples returns the interleaved samples. The slice must not be modified.
func (b *Buffer) Samples() []float32 {
	if b == nil {
		return nil
	}
	return b.samples
}

func (b *Buffer) Channels() int {
	if b == nil {
		return 0
	}
	return b.channels
}

// Frames returns the number of frames (samples per channel).
func (b *Buffer) Frames() int {
	if b == nil {
		return 0
	}
	return b.frames
}

func (b *Buffer) SampleRate() int {
	if b == nil {
		return 0
	}
	return b.sampleRate
}

// Duration returns the length of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.sampleRate == 0 {
		return 0
	}
	return float64(b.frames) / float64(b.sampleRate)
}

// Empty reports whether the buffer is nil, released or holds no frames.
func (b *Buffer) Empty() bool {
	return b == nil || b.frames == 0 || len(b.samples) == 0
}

// Release drops the sample data. Channel count and sample rate are kept so
// the format can still be reported, but the buffer becomes Empty.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.samples = nil
	b.frames = 0
}

// ReadAll drains src into a new Buffer. src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	chunk := max(src.BufSize(), 4096)
	chunk -= chunk % channels

	buf := make([]float32, chunk)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// a source that neither advances nor fails is treated as finished
			break
		}
	}

	// drop a trailing partial frame from a truncated stream
	samples = samples[:len(samples)-len(samples)%channels]

	return NewBuffer(samples, channels, src.SampleRate())
}
