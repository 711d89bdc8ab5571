// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockPCMReader serves fixed integer samples the way the go-audio decoders
// do: a short read at the end and then zero with no error.
type mockPCMReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
	err     error
}

func (m *mockPCMReader) Format() *goaudio.Format { return m.format }

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestIntSource_ReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{"16-bit", 16, []int{0, 16384, -32768, 32767}, []float32{0, 0.5, -1, 32767.0 / 32768}},
		{"8-bit", 8, []int{64, -128}, []float32{0.5, -1}},
		{"24-bit", 24, []int{4194304, -8388608}, []float32{0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &mockPCMReader{
				format:  &goaudio.Format{NumChannels: 2, SampleRate: 44100},
				samples: tt.samples,
			}

			src, err := NewIntSource(dec, tt.bitDepth)
			if err != nil {
				t.Fatalf("NewIntSource() error = %v", err)
			}
			if src.SampleRate() != 44100 || src.Channels() != 2 {
				t.Fatalf("format = %d Hz, %d channels", src.SampleRate(), src.Channels())
			}

			buf, err := ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			got := buf.Samples()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIntSource_InvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format *goaudio.Format
		want   error
	}{
		{"nil format", nil, ErrInvalidChannels},
		{"no channels", &goaudio.Format{SampleRate: 8000}, ErrInvalidChannels},
		{"no rate", &goaudio.Format{NumChannels: 1}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewIntSource(&mockPCMReader{format: tt.format}, 16); !errors.Is(err, tt.want) {
				t.Errorf("NewIntSource() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIntSource_DecodeError(t *testing.T) {
	t.Parallel()

	dec := &mockPCMReader{
		format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		err:    io.ErrUnexpectedEOF,
	}

	src, err := NewIntSource(dec, 16)
	if err != nil {
		t.Fatalf("NewIntSource() error = %v", err)
	}

	if _, err := src.ReadSamples(make([]float32, 16)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	seeker := bytes.NewReader([]byte("abc"))
	if rs, err := Seekable(seeker); err != nil || rs != seeker {
		t.Errorf("Seekable(ReadSeeker) = %v, %v; want the same reader", rs, err)
	}

	rs, err := Seekable(io.MultiReader(bytes.NewBufferString("ab"), bytes.NewBufferString("cd")))
	if err != nil {
		t.Fatalf("Seekable() error = %v", err)
	}
	if _, err := rs.Seek(2, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "cd" {
		t.Errorf("after Seek(2) read %q, want %q", rest, "cd")
	}
}
