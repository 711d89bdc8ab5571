// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// SmoothingAmount is the number of columns merged into one smoothing group.
const SmoothingAmount = 6

// pivotEpsilon is the smallest pivot accepted during elimination.
const pivotEpsilon = 1e-9

// ControlPoint is a spline knot at a pixel column.
type ControlPoint struct {
	Value     float64
	Position  float64
	GroupSize int
}

// SplineSegment is f(t) = A + Bt + Ct^2 + Dt^3 over [Position, Position+Width),
// with t the fraction of Width covered.
type SplineSegment struct {
	A, B, C, D float64
	Position   float64
	Width      float64
}

// Covers reports whether column x lies inside the segment.
func (s SplineSegment) Covers(x float64) bool {
	return x >= s.Position && x < s.Position+s.Width
}

// Eval returns the curve value at column x.
func (s SplineSegment) Eval(x float64) float64 {
	t := (x - s.Position) / s.Width
	return s.A + t*(s.B+t*(s.C+t*s.D))
}

// ControlPoints merges runs of groupSize samples into knots. Each run yields
// a knot at its first column holding that column's RMS and, when the run has
// at least two columns, a second knot halfway through holding the RMS of the
// whole run. offset is the pixel column of samples[0].
func ControlPoints(samples []ChannelSample, offset, groupSize int) []ControlPoint {
	if groupSize <= 0 {
		groupSize = SmoothingAmount
	}

	points := make([]ControlPoint, 0, 2*(len(samples)/groupSize+1))

	for i := 0; i < len(samples); i += groupSize {
		n := min(groupSize, len(samples)-i)

		var sum float64
		for _, s := range samples[i : i+n] {
			sum += s.RMS * s.RMS
		}
		rms := math.Sqrt(sum / float64(n))

		second := n / 2
		first := n - second

		points = append(points, ControlPoint{
			Value:     samples[i].RMS,
			Position:  float64(i + offset),
			GroupSize: first,
		})

		if second > 0 {
			points = append(points, ControlPoint{
				Value:     rms,
				Position:  float64(i + offset + first),
				GroupSize: second,
			})
		}
	}

	return points
}

// FitSpline solves the natural cubic spline through points, one segment per
// pair of neighbours. Knots are treated as unit spaced; each segment is
// stretched over its start point's GroupSize columns.
func FitSpline(points []ControlPoint) ([]SplineSegment, error) {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}

	deriv, err := solveDerivatives(values)
	if err != nil {
		return nil, err
	}

	segments := make([]SplineSegment, len(points)-1)
	for i := range segments {
		y0, y1 := values[i], values[i+1]
		d0, d1 := deriv[i], deriv[i+1]

		segments[i] = SplineSegment{
			A:        y0,
			B:        d0,
			C:        3*(y1-y0) - 2*d0 - d1,
			D:        2*(y0-y1) + d0 + d1,
			Position: points[i].Position,
			Width:    float64(points[i].GroupSize),
		}
	}

	return segments, nil
}

// BuildSpline groups samples with SmoothingAmount and fits a spline. Fewer
// than two knots yield no segments and no error.
func BuildSpline(samples []ChannelSample, offset int) ([]SplineSegment, error) {
	points := ControlPoints(samples, offset, SmoothingAmount)
	if len(points) < 2 {
		return nil, nil
	}

	return FitSpline(points)
}

// solveDerivatives returns the first derivative at each knot of the natural
// cubic spline through y, by Gaussian elimination of
//
//	2 1                 D0     3(y1 - y0)
//	1 4 1               D1     3(y2 - y0)
//	  ...          x    ..  =  ..
//	      1 4 1         Dn-2   3(yn-1 - yn-3)
//	        1 2         Dn-1   3(yn-1 - yn-2)
func solveDerivatives(y []float64) ([]float64, error) {
	n := len(y)
	if n < 2 {
		return nil, fmt.Errorf("%d points: %w", n, ErrTooFewControlPoints)
	}

	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %d is %v: %w", i, v, ErrDegenerateSystem)
		}
	}

	diag := make([]float64, n)
	known := make([]float64, n)

	diag[0] = 2
	known[0] = 3 * (y[1] - y[0])

	for i := 1; i < n; i++ {
		prev := diag[i-1]
		if math.Abs(prev) < pivotEpsilon {
			return nil, fmt.Errorf("row %d: %w", i-1, ErrDegenerateSystem)
		}

		if i == n-1 {
			diag[i] = 2 - 1/prev
			known[i] = 3*(y[i]-y[i-1]) - known[i-1]/prev
			break
		}

		diag[i] = 4 - 1/prev
		known[i] = 3*(y[i+1]-y[i-1]) - known[i-1]/prev
	}

	if math.Abs(diag[n-1]) < pivotEpsilon {
		return nil, fmt.Errorf("row %d: %w", n-1, ErrDegenerateSystem)
	}

	d := make([]float64, n)
	d[n-1] = known[n-1] / diag[n-1]
	for i := n - 2; i >= 0; i-- {
		d[i] = (known[i] - d[i+1]) / diag[i]
	}

	return d, nil
}
