// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which decodes to
// interleaved float32 samples directly; no conversion is needed.
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src)
//
// Any channel count the stream declares is passed through.
package vorbis
