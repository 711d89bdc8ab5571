// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wavescope/audio"
)

// createWAVFile builds a canonical 44-byte header WAV around raw sample bytes.
func createWAVFile(sampleRate, channels, bitsPerSample, formatTag int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func int16Bytes(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

func decodeAll(t *testing.T, r io.Reader) *audio.Buffer {
	t.Helper()

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return buf
}

func TestDecoder_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		bits     int
		data     []byte
		want     []float32
	}{
		{
			name:     "16-bit mono",
			channels: 1,
			bits:     16,
			data:     int16Bytes(0, 16384, -32768, -16384),
			want:     []float32{0, 0.5, -1, -0.5},
		},
		{
			name:     "8-bit unsigned",
			channels: 1,
			bits:     8,
			data:     []byte{128, 192, 0, 64},
			want:     []float32{0, 0.5, -1, -0.5},
		},
		{
			name:     "24-bit stereo",
			channels: 2,
			bits:     24,
			data:     []byte{0x00, 0x00, 0x40, 0x00, 0x00, 0x80},
			want:     []float32{0.5, -1},
		},
		{
			name:     "32-bit",
			channels: 1,
			bits:     32,
			data:     []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0xC0},
			want:     []float32{0.5, -0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := createWAVFile(8000, tt.channels, tt.bits, formatPCM, tt.data)
			buf := decodeAll(t, bytes.NewReader(file))

			if buf.SampleRate() != 8000 || buf.Channels() != tt.channels {
				t.Fatalf("format = %d Hz, %d channels", buf.SampleRate(), buf.Channels())
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

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	file := createWAVFile(22050, 2, 16, formatPCM, int16Bytes(100, 200, 300, 400))
	buf := decodeAll(t, io.MultiReader(bytes.NewReader(file[:10]), bytes.NewReader(file[10:])))

	if buf.Frames() != 2 || buf.SampleRate() != 22050 {
		t.Errorf("decoded %d frames at %d Hz, want 2 at 22050", buf.Frames(), buf.SampleRate())
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not riff", []byte("This is not WAV data at all, just text."), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"float samples", createWAVFile(8000, 1, 32, 3, make([]byte, 8)), ErrUnsupportedEncoding},
		{"12-bit", createWAVFile(8000, 1, 12, formatPCM, make([]byte, 8)), ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
