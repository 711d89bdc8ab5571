// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wavescope/utils"
)

const (
	// MaxSupportedChannels is the widest layout the renderer draws.
	MaxSupportedChannels = 2

	// MaxSamplesPerPixel caps how many lookup entries one column visits.
	MaxSamplesPerPixel = 60
)

// ChannelSample summarizes one pixel column of one channel. Amplitudes are
// in pixels, [0, maxAmplitude).
type ChannelSample struct {
	RMS   float64
	Peak  int
	Count int
}

// SampleWindow summarizes lookup[start:end) for every channel.
//
// For stereo the start index is moved back to a channel-0 boundary. When the
// window holds more than MaxSamplesPerPixel frames it is snapped to a
// multiple of the cap and visited with a proportionally larger stride.
// Indices outside the lookup count as silent samples.
func SampleWindow(channels int, lookup Lookup, start, end, maxAmplitude int) [MaxSupportedChannels]ChannelSample {
	var out [MaxSupportedChannels]ChannelSample

	channels = min(channels, MaxSupportedChannels)
	if channels <= 0 || maxAmplitude <= 0 {
		return out
	}

	size := len(lookup)

	if channels == 2 && start%2 != 0 {
		start--
	}
	end = max(end, start+1)

	step := channels
	count := (end - start) / step

	if count > MaxSamplesPerPixel {
		adjust := start % MaxSamplesPerPixel
		start = utils.Clamp(start-adjust, 0, size)
		end = utils.Clamp(end-adjust, 0, size)
		step *= count / MaxSamplesPerPixel
	}

	for ch := range channels {
		s := &out[ch]

		for idx := start; idx < end; idx += step {
			s.Count++

			if idx < 0 || idx+ch >= size {
				continue
			}

			v := math.Abs(float64(lookup[idx+ch])) / 32768 * float64(maxAmplitude)
			amp := utils.Clamp(int(v), 0, maxAmplitude-1)

			s.RMS += float64(amp * amp)
			s.Peak = max(s.Peak, amp)
		}

		if s.Count > 0 {
			s.RMS = math.Sqrt(s.RMS / float64(s.Count))
		}
	}

	return out
}
