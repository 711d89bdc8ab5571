// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"
)

// IntScale returns the divisor that maps a signed integer sample of the
// given bit depth into [-1, 1]. Unknown depths are treated as 16-bit.
func IntScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// FromFloat32Buffer copies a go-audio float buffer into a Buffer.
func FromFloat32Buffer(fb *goaudio.Float32Buffer) (*Buffer, error) {
	if fb == nil || fb.Format == nil {
		return nil, ErrNilBuffer
	}

	samples := make([]float32, len(fb.Data))
	copy(samples, fb.Data)

	return NewBuffer(samples, fb.Format.NumChannels, fb.Format.SampleRate)
}

// FromIntBuffer normalizes a go-audio integer buffer using its
// SourceBitDepth (16-bit when unset).
func FromIntBuffer(ib *goaudio.IntBuffer) (*Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, ErrNilBuffer
	}

	scale := IntScale(ib.SourceBitDepth)
	samples := make([]float32, len(ib.Data))
	for i, v := range ib.Data {
		samples[i] = float32(v) / scale
	}

	return NewBuffer(samples, ib.Format.NumChannels, ib.Format.SampleRate)
}

// Float32Buffer exposes b as a go-audio buffer sharing the same samples.
func (b *Buffer) Float32Buffer() *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: b.Channels(),
			SampleRate:  b.SampleRate(),
		},
		Data:           b.Samples(),
		SourceBitDepth: 32,
	}
}
