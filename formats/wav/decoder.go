// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/wavescope/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("format tag %d: %w", dec.WavAudioFormat, ErrUnsupportedEncoding)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d bits: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locating pcm data: %w", err)
	}

	var pcm audio.PCMReader = dec
	if dec.BitDepth == 8 {
		pcm = unsigned8{dec}
	}

	src, err := audio.NewIntSource(pcm, int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("wav header: %w", err)
	}

	return src, nil
}

// unsigned8 recenters 8-bit WAV samples, which are stored unsigned around 128.
type unsigned8 struct {
	audio.PCMReader
}

func (u unsigned8) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n, err := u.PCMReader.PCMBuffer(buf)
	for i := range buf.Data[:max(n, 0)] {
		buf.Data[i] -= 128
	}
	return n, err
}
