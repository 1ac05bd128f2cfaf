// File: interval/interval.go
package interval

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// Sentinel errors for interval validation and sampling.
var (
	// ErrIntervalShape indicates bounds that are not exactly two values.
	ErrIntervalShape = errors.New("interval: an interval must be some sort of sequence of length 2")
	// ErrResolution indicates a non-positive sampling resolution.
	ErrResolution = errors.New("interval: resolution must be positive")
)

// Warnf receives non-fatal validation warnings, printf style. The default
// writes through the standard logger; tests may swap it to capture.
var Warnf = func(format string, args ...any) { log.Printf(format, args...) }

// Interval is an immutable closed numeric range [Lower, Upper].
type Interval struct {
	Lower float64
	Upper float64
}

// Ignored is the no-constraint sentinel (-Inf, +Inf): every point is
// inside it. Boxes return it for dimensions they do not track.
var Ignored = Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}

// New constructs an Interval, emitting a warning through Warnf when the
// upper bound is strictly less than the lower bound. Construction still
// succeeds: a reversed/empty domain is valid by user intent.
func New(lower, upper float64) Interval {
	iv := Interval{Lower: lower, Upper: upper}
	iv.warnReversed()
	return iv
}

// Validate normalizes raw bounds into an Interval. The bounds must hold
// exactly two values; anything else fails with ErrIntervalShape.
func Validate(bounds []float64) (Interval, error) {
	if len(bounds) != 2 {
		return Interval{}, fmt.Errorf("got %d values: %w", len(bounds), ErrIntervalShape)
	}
	return New(bounds[0], bounds[1]), nil
}

// ValidateNested accepts either a bare pair or a single-element wrapping
// of one, mirroring the one level of nesting tolerated in interval
// specifications.
func ValidateNested(bounds [][]float64) (Interval, error) {
	if len(bounds) == 1 {
		return Validate(bounds[0])
	}
	if len(bounds) == 2 && len(bounds[0]) == 1 && len(bounds[1]) == 1 {
		return Validate([]float64{bounds[0][0], bounds[1][0]})
	}
	return Interval{}, fmt.Errorf("got %d sequences: %w", len(bounds), ErrIntervalShape)
}

// IsIgnored reports whether the interval is the no-constraint sentinel.
func (iv Interval) IsIgnored() bool {
	return math.IsInf(iv.Lower, -1) && math.IsInf(iv.Upper, 1)
}

// Contains reports whether Lower ≤ x ≤ Upper.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lower && x <= iv.Upper
}

// Outside reports, elementwise, which points fall strictly below Lower or
// strictly above Upper.
func (iv Interval) Outside(xs []float64) []bool {
	out := make([]bool, len(xs))
	for i, x := range xs {
		out[i] = x < iv.Lower || x > iv.Upper
	}
	return out
}

// Domain samples the interval uniformly from Lower to Upper inclusive
// with the given step, producing round((Upper-Lower)/resolution)+1
// points. It is a pure function of its inputs and may be re-invoked
// freely.
func (iv Interval) Domain(resolution float64) ([]float64, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("got %g: %w", resolution, ErrResolution)
	}
	n := int(math.Round((iv.Upper-iv.Lower)/resolution)) + 1
	if n < 1 {
		n = 1
	}
	points := make([]float64, n)
	for i := range points {
		points[i] = iv.Lower + float64(i)*resolution
	}
	return points, nil
}

// String renders the interval in its canonical form.
func (iv Interval) String() string {
	return fmt.Sprintf("Interval(lower=%g, upper=%g)", iv.Lower, iv.Upper)
}

func (iv Interval) warnReversed() {
	if iv.Upper < iv.Lower {
		Warnf("invalid interval: upper bound %g is strictly less than lower bound %g", iv.Upper, iv.Lower)
	}
}
