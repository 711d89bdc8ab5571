// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/utils"
)

// WritePCM16 encodes buf as a 16-bit PCM WAV with the buffer's channel
// count and sample rate. Samples outside [-1, 1] are clipped.
// w must seek so the chunk sizes can be patched once the data is written.
func WritePCM16(w io.WriteSeeker, buf *audio.Buffer) error {
	if buf == nil {
		return audio.ErrNilBuffer
	}

	samples := buf.Samples()
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(utils.Float32ToInt16(s))
	}

	enc := wav.NewEncoder(w, buf.SampleRate(), 16, buf.Channels(), formatPCM)

	err := enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return fmt.Errorf("writing pcm: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}

	return nil
}
