// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and 16-bit PCM encoding.
//
// It uses github.com/go-audio/wav for the RIFF container handling.
//
// # Supported Formats
//
//   - Integer PCM, 8 (unsigned), 16, 24 and 32 bits
//   - WAVE_FORMAT_EXTENSIBLE headers carrying integer PCM
//   - Any channel count and sample rate
//
// Floating point and compressed WAV files are rejected with
// ErrUnsupportedEncoding.
//
// # Decoding
//
//	f, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src)
//
// The go-audio decoder needs to seek. Readers that cannot seek are read
// into memory first.
//
// # Encoding
//
// WritePCM16 writes an audio.Buffer as a 16-bit PCM file. It needs an
// io.WriteSeeker such as *os.File to patch the chunk sizes at the end:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.WritePCM16(f, buf)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedEncoding: the samples are not integer PCM
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//
// All errors are wrapped; compare with errors.Is.
package wav
