// SPDX-License-Identifier: EPL-2.0

// Package playback serves an audio.Buffer to an output device chunk by chunk.
//
// # Pulling Audio
//
// The output collaborator calls PullChunk from its audio callback:
//
//	engine := playback.NewEngine(buf, playback.Options{})
//	defer engine.Close()
//
//	n, chunk := engine.PullChunk(1024)
//	// chunk holds n interleaved float32 samples, read-only
//
// Requests are rounded down to whole frames and clamped at the end of the
// buffer. After the last frame PullChunk returns zero.
//
// Stream wraps an Engine as an io.Reader of little-endian float32 bytes for
// output libraries that pull through a reader.
//
// # Notifications
//
// Listeners registered with AddListener are told when playback finishes and
// receive a copy of each delivered chunk. The finished notification fires at
// most once per completion; Seek and SeekFrame re-arm it.
//
// Notifications go through a Dispatcher and never run on the pulling
// goroutine unless the Inline dispatcher is chosen. By default the engine owns
// a Queue with a single worker goroutine; when its backlog is full further
// notifications are dropped rather than blocking the audio path.
//
// # Seeking
//
//	if !engine.Seek(12.5) {
//	    // target outside the buffer, cursor unchanged
//	}
//
// # Envelope
//
// ExtractEnvelope returns a coarse, bucketed summary over a time window. See
// its documentation for the exact byte-level reading it performs.
package playback
