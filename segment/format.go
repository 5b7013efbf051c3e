package segment

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/polytraj/motion"
	"github.com/katalvlaran/polytraj/polynomial"
)

// ---------- Formatting literals ----------
const (
	_fmtTime      = "t: "
	_fmtCoeffsFor = " coefficients for "
	_fmtDim       = "dim "
	_fmtNilSeg    = "<nil segment>\n"
)

// Compile-time assertions for the diagnostic interfaces.
var (
	_ fmt.Stringer   = (*Segment)(nil)
	_ slog.LogValuer = (*Segment)(nil)
)

// Format renders the duration and, for every dimension, the coefficients of
// the requested derivative in increasing power order:
//
//	t: 2
//	 coefficients for velocity:
//	dim 0: [2 6 0]
//
// derivative must lie in [0, N); otherwise ErrBadDerivative is returned.
// The text carries no contract beyond a stable field order.
func Format(s *Segment, derivative int) (string, error) {
	if derivative < 0 || derivative >= s.n {
		return "", segErrorf(ctxFormat, derivative, ErrBadDerivative)
	}

	var sb strings.Builder
	writeTime(&sb, s)
	sb.WriteString(_fmtCoeffsFor)
	sb.WriteString(motion.Name(derivative))
	sb.WriteString(":\n")
	for i := range s.polys {
		dc, err := s.polys[i].DerivativeCoefficients(derivative)
		if err != nil {
			return "", segErrorf(ctxFormat, derivative, err)
		}
		sb.WriteString(_fmtDim)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(polynomial.NewFromCoefficients(dc).String())
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// FormatSequence concatenates String() of every segment in sequence order.
// nil entries render as a placeholder line so positions stay visible.
func FormatSequence(segs []*Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s == nil {
			sb.WriteString(_fmtNilSeg)
			continue
		}
		sb.WriteString(s.String())
	}

	return sb.String()
}

// String renders s with position coefficients. A segment with N == 0 has no
// coefficients to show and renders only its duration.
func (s *Segment) String() string {
	if s.n == 0 {
		var sb strings.Builder
		writeTime(&sb, s)
		return sb.String()
	}
	out, err := Format(s, motion.Position)
	if err != nil {
		return err.Error()
	}

	return out
}

// LogValue exposes the segment shape and duration to structured log sinks.
func (s *Segment) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("t", s.duration),
		slog.Int("d", s.d),
		slog.Int("n", s.n),
	)
}

// writeTime emits the "t: <seconds>" header line.
func writeTime(sb *strings.Builder, s *Segment) {
	sb.WriteString(_fmtTime)
	sb.WriteString(strconv.FormatFloat(s.duration, 'g', -1, 64))
	sb.WriteByte('\n')
}
