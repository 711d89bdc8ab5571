// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"
	"math"
)

// Stream adapts an Engine to io.Reader, producing little-endian float32
// bytes. It suits output libraries that pull PCM through a reader, such
// as oto with FormatFloat32LE.
type Stream struct {
	engine *Engine
}

// NewStream wraps e.
func NewStream(e *Engine) *Stream {
	return &Stream{engine: e}
}

// Read fills p with whole frames. It returns io.EOF once the engine has
// delivered the last frame, and io.ErrShortBuffer when p cannot hold a
// single frame.
func (s *Stream) Read(p []byte) (int, error) {
	n, chunk := s.engine.PullChunk(len(p) / 4)
	if n == 0 {
		if s.engine.buf.Empty() || s.engine.IsFinished() {
			return 0, io.EOF
		}
		return 0, io.ErrShortBuffer
	}

	for i, v := range chunk {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return n * 4, nil
}
