package segment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polytraj/polynomial"
)

// SingleDimension returns a new one-dimensional segment holding a copy of
// dimension i and the same duration.
//
// Errors: ErrOutOfRange when i < 0 or i >= D.
func (s *Segment) SingleDimension(i int) (*Segment, error) {
	if i < 0 || i >= s.d {
		return nil, segErrorf(ctxSingle, i, ErrOutOfRange)
	}
	out := New(s.n, 1)
	out.duration = s.duration
	out.polys[0] = *s.polys[i].Clone()

	return out, nil
}

// AppendDimensions returns a new segment whose dimensions are those of s
// followed by those of o. Both segments must share N and duration.
//
// Errors:
//   - ErrCoefficientMismatch when s.N() != o.N().
//   - ErrDurationMismatch when s.Time() != o.Time().
//   - ErrNilSegment when o is nil.
func (s *Segment) AppendDimensions(o *Segment) (*Segment, error) {
	if o == nil {
		return nil, segErrorf(ctxAppend, 0, ErrNilSegment)
	}
	if s.n != o.n {
		return nil, segErrorf(ctxAppend, o.n, ErrCoefficientMismatch)
	}
	if s.duration != o.duration {
		return nil, fmt.Errorf("Segment.%s(%g): %w", ctxAppend, o.duration, ErrDurationMismatch)
	}
	out := New(s.n, s.d+o.d)
	out.duration = s.duration
	for i := range s.polys {
		out.polys[i] = *s.polys[i].Clone()
	}
	for i := range o.polys {
		out.polys[s.d+i] = *o.polys[i].Clone()
	}

	return out, nil
}

// Offset shifts dimension i by offset[i] by adding it to the constant
// coefficient. Derivatives of order >= 1 are unaffected.
//
// Errors:
//   - ErrDimensionMismatch when len(offset) != D.
//   - ErrCoefficientMismatch when N == 0 and an offset is non-zero.
//   - polynomial.ErrNaNInf when a shifted coefficient is not finite.
//
// On error s is unchanged.
func (s *Segment) Offset(offset []float64) error {
	if len(offset) != s.d {
		return segErrorf(ctxOffset, len(offset), ErrDimensionMismatch)
	}
	if s.n == 0 {
		for _, v := range offset {
			if v != 0 {
				return segErrorf(ctxOffset, 0, ErrCoefficientMismatch)
			}
		}
		return nil
	}
	shifted := make([][]float64, s.d)
	for i := range s.polys {
		c := s.polys[i].Coefficients()
		c[0] += offset[i]
		if math.IsNaN(c[0]) || math.IsInf(c[0], 0) {
			return segErrorf(ctxOffset, i, polynomial.ErrNaNInf)
		}
		shifted[i] = c
	}
	for i := range s.polys {
		if err := s.polys[i].SetCoefficients(shifted[i]); err != nil {
			return segErrorf(ctxOffset, i, err)
		}
	}

	return nil
}
