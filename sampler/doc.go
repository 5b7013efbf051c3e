// Package sampler turns segments into time-stamped samples for execution.
//
// A controller running at a fixed rate needs the trajectory value at every
// tick. SampleSegment does this for one segment; SampleSequence does it for an
// ordered sequence of segments, placing each segment after the previous one
// and sampling segments in parallel (segments are read-only while sampled).
//
// Ticks are laid out on the integer nanosecond grid of each segment
// (Segment.TimeNanoseconds), so offsets are exact time.Duration values and
// never accumulate float drift across a long sequence.
//
//	seg 0           seg 1        seg 2
//	|-----T0-------|----T1------|---T2---|
//	^   ^   ^   ^   ^   ^   ^    ^   ^   ^
//	ticks restart at every boundary; the end of a segment is sampled only
//	for the last segment so boundaries are not duplicated.
//
// Offsets are time.Duration, so a segment or a whole sequence may span at
// most math.MaxInt64 ns. Longer inputs are rejected with ErrDurationOverflow
// before any sampling starts.
//
// ⚙️ Usage:
//
//	samples, err := sampler.SampleSequence(ctx, segs, 10*time.Millisecond,
//	    motion.Position, sampler.WithConcurrency(8))
package sampler
