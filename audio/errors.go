// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrMisalignedSamples = errors.New("sample count must be multiple of channels")
	ErrUnsupportedFormat = errors.New("no decoder registered for format")
	ErrNilBuffer         = errors.New("nil go-audio buffer")
)
