package sampler

import (
	"errors"
	"time"
)

// Sentinel errors for sampling.
var (
	// ErrBadStep indicates a sampling step <= 0.
	ErrBadStep = errors.New("sampler: step must be > 0")

	// ErrNilSegment indicates a nil segment in the input.
	ErrNilSegment = errors.New("sampler: segment is nil")

	// ErrDurationOverflow indicates a segment end or sequence offset beyond
	// the range of time.Duration (about 292 years).
	ErrDurationOverflow = errors.New("sampler: duration exceeds time.Duration range")
)

// Sample is the value of one segment at one tick.
type Sample struct {
	// Offset is the tick time from the start of the sequence.
	Offset time.Duration

	// Segment is the index of the segment that produced Value.
	Segment int

	// Value holds one entry per dimension, in dimension order.
	Value []float64
}
