package sampler

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/polytraj/motion"
	"github.com/katalvlaran/polytraj/segment"
	"golang.org/x/sync/errgroup"
)

// SampleSegment samples s at 0, step, 2·step, … up to and including
// s.TimeNanoseconds(). Every Sample has Segment == 0.
//
// Errors:
//   - ErrNilSegment when s is nil.
//   - ErrBadStep when step <= 0.
//   - motion.ErrNegativeOrder when order < 0.
//   - ErrDurationOverflow when s.TimeNanoseconds() > math.MaxInt64.
func SampleSegment(s *segment.Segment, step time.Duration, order int) ([]Sample, error) {
	if err := validate(step, order); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("segment 0: %w", ErrNilSegment)
	}
	if _, err := advance(0, s, 0); err != nil {
		return nil, err
	}

	return sampleLocal(s, 0, 0, step, order, true)
}

// SampleSequence samples every segment of segs on its own tick grid and
// returns the samples in sequence order. Segment i starts at the sum of the
// nanosecond durations of segments 0 … i-1. Segments are sampled in parallel
// (see WithConcurrency) and must not be mutated until the call returns.
//
// Errors:
//   - ErrNilSegment for any nil entry (checked before sampling starts).
//   - ErrDurationOverflow when the summed durations exceed math.MaxInt64 ns
//     (checked before sampling starts).
//   - ErrBadStep, motion.ErrNegativeOrder as for SampleSegment.
//   - ctx.Err() when the context is cancelled.
func SampleSequence(ctx context.Context, segs []*segment.Segment, step time.Duration, order int, opts ...Option) ([]Sample, error) {
	if err := validate(step, order); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	starts := make([]time.Duration, len(segs))
	var cursor time.Duration
	for i, s := range segs {
		if s == nil {
			return nil, fmt.Errorf("segment %d: %w", i, ErrNilSegment)
		}
		starts[i] = cursor
		next, err := advance(cursor, s, i)
		if err != nil {
			return nil, err
		}
		cursor = next
	}

	parts := make([][]Sample, len(segs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, s := range segs {
		i, s := i, s
		last := i == len(segs)-1
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := sampleLocal(s, i, starts[i], step, order, last)
			if err != nil {
				return err
			}
			parts[i] = out
			o.logger.Debug("sampled segment", "index", i, "samples", len(out), "segment", s)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	samples := make([]Sample, 0, total)
	for _, p := range parts {
		samples = append(samples, p...)
	}

	return samples, nil
}

// validate checks the arguments shared by both entry points.
func validate(step time.Duration, order int) error {
	if step <= 0 {
		return fmt.Errorf("step %v: %w", step, ErrBadStep)
	}

	return motion.Validate(order)
}

// advance returns cursor + s.TimeNanoseconds() as a time.Duration, or
// ErrDurationOverflow when the sum leaves the int64 range.
func advance(cursor time.Duration, s *segment.Segment, idx int) (time.Duration, error) {
	ns := s.TimeNanoseconds()
	if ns > uint64(math.MaxInt64-cursor) {
		return 0, fmt.Errorf("segment %d: end %d ns after %v: %w", idx, ns, cursor, ErrDurationOverflow)
	}

	return cursor + time.Duration(ns), nil
}

// sampleLocal samples one segment on ticks k·step from its start. closed
// includes the end tick; otherwise the interval is half-open [0, T).
func sampleLocal(s *segment.Segment, idx int, base, step time.Duration, order int, closed bool) ([]Sample, error) {
	end := s.TimeNanoseconds()
	inc := uint64(step)

	var out []Sample
	for off := uint64(0); ; off += inc {
		if off > end || (!closed && off == end) {
			break
		}
		v, err := s.Evaluate(float64(off)*1e-9, order)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", idx, err)
		}
		out = append(out, Sample{Offset: base + time.Duration(off), Segment: idx, Value: v})
		if end-off < inc {
			break
		}
	}

	return out, nil
}
