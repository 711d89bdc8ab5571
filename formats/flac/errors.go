// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFLACFile indicates the stream does not start with a valid fLaC
	// marker and STREAMINFO block
	ErrNotFLACFile = errors.New("not a FLAC stream")

	// ErrUnsupportedBitDepth indicates a sample size outside 4-32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrCorruptFrame indicates a frame carries fewer subframes or samples
	// than the stream header announced
	ErrCorruptFrame = errors.New("corrupt FLAC frame")
)
