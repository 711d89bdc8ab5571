// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/wavescope/audio"
)

const (
	minBitDepth = 4
	maxBitDepth = 32
	maxChannels = 8
)

// frameStream is the part of flac.Stream a source reads from.
type frameStream interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameStream
	sampleRate int
	channels   int
	scale      float32

	frame *frame.Frame
	pos   int
	index uint64
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }
func (s *source) BufSize() int    { return 4096 * s.channels }

// ReadSamples fills dst with whole frames, carrying a partly consumed FLAC
// block over to the next call.
func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) / s.channels * s.channels
	n := 0

	for n < want {
		if s.frame == nil || s.pos >= int(s.frame.BlockSize) {
			f, err := s.next()
			if err != nil {
				return n, err
			}
			s.frame, s.pos = f, 0
			continue
		}

		for ch := range s.channels {
			dst[n+ch] = float32(s.frame.Subframes[ch].Samples[s.pos]) / s.scale
		}
		n += s.channels
		s.pos++
	}

	return n, nil
}

func (s *source) next() (*frame.Frame, error) {
	f, err := s.stream.ParseNext()
	switch {
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case err != nil:
		return nil, fmt.Errorf("decoding flac frame %d: %w", s.index, err)
	}
	s.index++

	if len(f.Subframes) < s.channels {
		return nil, fmt.Errorf("frame %d has %d subframes for %d channels: %w",
			s.index-1, len(f.Subframes), s.channels, ErrCorruptFrame)
	}
	for ch := range s.channels {
		if len(f.Subframes[ch].Samples) < int(f.BlockSize) {
			return nil, fmt.Errorf("frame %d channel %d: %w", s.index-1, ch, ErrCorruptFrame)
		}
	}

	return f, nil
}

// Decoder reads FLAC streams of any channel layout and bit depth.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFLACFile, err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	switch {
	case channels <= 0 || channels > maxChannels:
		stream.Close()
		return nil, fmt.Errorf("%d channels: %w", channels, audio.ErrInvalidChannels)
	case info.SampleRate == 0:
		stream.Close()
		return nil, audio.ErrInvalidSampleRate
	case bitDepth < minBitDepth || bitDepth > maxBitDepth:
		stream.Close()
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	return newSource(stream, int(info.SampleRate), channels, bitDepth), nil
}

func newSource(stream frameStream, sampleRate, channels, bitDepth int) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      float32(uint64(1) << (bitDepth - 1)),
	}
}
