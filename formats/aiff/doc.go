// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// audio.IntSource to normalize the big-endian integer samples.
//
// # Supported Formats
//
//   - Uncompressed AIFF, 8, 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src)
//
// The go-audio decoder needs to seek. Readers that cannot seek are read
// into memory first.
package aiff
