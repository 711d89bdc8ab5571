// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is the part of the go-audio wav and aiff decoders an IntSource
// reads from.
type PCMReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource adapts a go-audio integer PCM decoder to Source.
type IntSource struct {
	dec        PCMReader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewIntSource wraps dec, normalizing samples of the given bit depth.
func NewIntSource(dec PCMReader, bitDepth int) (*IntSource, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrInvalidChannels
	}
	if format.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &IntSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      IntScale(bitDepth),
	}, nil
}

func (s *IntSource) SampleRate() int { return s.sampleRate }
func (s *IntSource) Channels() int   { return s.channels }
func (s *IntSource) Close() error    { return nil }

func (s *IntSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n <= 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("decoding pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	if err == io.EOF {
		return n, io.EOF
	}

	return n, err
}

// Seekable returns r itself when it can seek, otherwise it reads r to the
// end and serves the bytes from memory. The go-audio decoders need to seek.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
