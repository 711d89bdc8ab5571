// SPDX-License-Identifier: EPL-2.0

package playback

import "math"

// envelopeBitDepth is the sample width the envelope reader assumes.
const envelopeBitDepth = 16

// ExtractEnvelope returns bucketCount amplitudes sampled evenly across
// [startSeconds, startSeconds+lengthSeconds] for channel.
//
// Each amplitude is built from the first two bytes of the frame's in-memory
// representation, read as a big-endian 16-bit value and scaled by 128/2^15.
// The buffer holds float32 samples, so the result reflects the low mantissa
// bytes of the frame's first sample rather than its amplitude. channel is
// validated but does not select the sample. Results fall in [0, 256).
//
// It reports false for a channel out of range, a negative or NaN start, a
// non-positive or NaN length, bucketCount < 1 or a buffer shorter than two
// frames. Starts past the end are clamped to the last two frames.
func (e *Engine) ExtractEnvelope(channel int, startSeconds, lengthSeconds float64, bucketCount int) ([]float32, bool) {
	if channel < 0 || channel >= e.buf.Channels() {
		return nil, false
	}
	if math.IsNaN(startSeconds) || math.IsNaN(lengthSeconds) {
		return nil, false
	}
	if startSeconds < 0 || lengthSeconds <= 0 {
		return nil, false
	}
	if e.buf.Frames() < 2 {
		return nil, false
	}
	if bucketCount < 1 {
		return nil, false
	}

	samples := e.buf.Samples()
	frames := e.buf.Frames()
	rate := float64(e.buf.SampleRate())

	// clamp before converting, out of range floats do not convert to int
	startFrame := int(min(startSeconds*rate, float64(frames-2)))
	endFrame := int(min((startSeconds+lengthSeconds)*rate, float64(frames-1)))
	endFrame = max(endFrame, startFrame+1)

	deltaFrames := endFrame - startFrame
	bytesPerFrame := len(samples) * 4 / frames
	divisor := math.Pow(2, envelopeBitDepth-1)

	out := make([]float32, bucketCount)
	for i := range out {
		var percent float64
		if bucketCount > 1 {
			percent = float64(i) / float64(bucketCount-1)
		}

		frame := int(float64(deltaFrames)*percent) + startFrame
		idx := bytesPerFrame * frame

		hi := sampleByte(samples, idx)
		lo := sampleByte(samples, idx+1)
		word := int(hi)<<8 | int(lo)

		out[i] = float32(float64(word) / divisor * 128)
	}

	return out, true
}

// sampleByte returns byte k of samples laid out as little-endian float32.
func sampleByte(samples []float32, k int) byte {
	bits := math.Float32bits(samples[k/4])
	return byte(bits >> (8 * uint(k%4)))
}
