// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/utils"
)

// Lookup is the 16-bit quantized copy of a buffer's interleaved samples.
type Lookup []int16

// BuildLookup quantizes every sample of buf, rounding up. A nil or empty
// buffer yields an empty Lookup.
func BuildLookup(buf *audio.Buffer) Lookup {
	samples := buf.Samples()
	if len(samples) == 0 {
		return nil
	}

	lookup := make(Lookup, len(samples))
	for i, s := range samples {
		lookup[i] = utils.QuantizeCeil(s)
	}

	return lookup
}
