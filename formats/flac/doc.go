// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse the stream one frame at a
// time. Every bit depth from 4 to 32 bits and up to eight channels are
// accepted; samples are normalized to [-1.0, 1.0).
//
//	f, _ := os.Open("audio.flac")
//	src, err := flac.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//	buf, err := audio.ReadAll(src)
package flac
