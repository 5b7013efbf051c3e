package segment

import "github.com/katalvlaran/polytraj/motion"

// Evaluate samples every dimension at time offset t and derivative order.
//
// Implementation:
//   - Stage 1: reject order < 0 with motion.ErrNegativeOrder before any work.
//   - Stage 2: for i = 0 … D-1 evaluate polynomial i at (t, order).
//   - Stage 3: return the D values in dimension order.
//
// Behavior highlights:
//   - t is measured from the start of the segment and is neither clamped nor
//     checked against Time(); values outside [0, Time()] extrapolate.
//   - Orders at or above N yield zeros.
//   - D == 0 yields an empty, non-nil slice.
//   - No state is read besides the coefficients, so equal inputs give
//     bit-identical outputs.
//
// Complexity: O(D·N).
func (s *Segment) Evaluate(t float64, order int) ([]float64, error) {
	if err := motion.Validate(order); err != nil {
		return nil, segErrorf(ctxEvaluate, order, err)
	}
	out := make([]float64, s.d)
	if err := s.evaluateInto(out, t, order); err != nil {
		return nil, segErrorf(ctxEvaluate, order, err)
	}

	return out, nil
}

// EvaluateTo is the allocation-free form of Evaluate for control loops.
// dst must have length D (ErrDimensionMismatch otherwise); on error dst is
// left untouched.
func (s *Segment) EvaluateTo(dst []float64, t float64, order int) error {
	if err := motion.Validate(order); err != nil {
		return segErrorf(ctxEvaluateTo, order, err)
	}
	if len(dst) != s.d {
		return segErrorf(ctxEvaluateTo, len(dst), ErrDimensionMismatch)
	}

	return s.evaluateInto(dst, t, order)
}

// evaluateInto assumes a validated order and len(dst) == D.
func (s *Segment) evaluateInto(dst []float64, t float64, order int) error {
	for i := range s.polys {
		v, err := s.polys[i].Evaluate(t, order)
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}
