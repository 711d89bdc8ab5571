// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrTooFewControlPoints is returned when a spline is fitted through
	// fewer than two points.
	ErrTooFewControlPoints = errors.New("spline needs at least two control points")

	// ErrDegenerateSystem is returned when elimination meets a vanishing pivot
	// or a control point value that is not finite.
	ErrDegenerateSystem = errors.New("degenerate spline system")
)
