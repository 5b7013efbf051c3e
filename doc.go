// Package polytraj stores, times and samples the segments of
// piecewise-polynomial motion trajectories (e.g. for aerial robots).
//
// 🚀 What is polytraj?
//
//	A small, dependency-light toolkit around one unit: the Segment.
//		• Polynomials: one scalar function of time, any derivative at any t
//		• Segments: D polynomials sharing a duration, sampled jointly
//		• Dual duration: float seconds and integer nanoseconds
//		• Sampling: fixed-rate ticks over one segment or a whole sequence
//
// Under the hood, everything is organized under four subpackages:
//
//	motion/     — derivative orders (position, velocity, …, snap) and their names
//	polynomial/ — fixed-size coefficient vectors, Horner evaluation of derivatives
//	segment/    — the Segment type, Evaluate, Format/FormatSequence diagnostics
//	sampler/    — execution-time sampling of segments and segment sequences
//
// Quick ASCII example:
//
//	X------------X---------------X
//	vertex           segment
//
// Fitting coefficients, continuity constraints between segments and time
// allocation are the job of a trajectory builder that owns the segments;
// this module only stores, times and samples them.
//
//	go get github.com/katalvlaran/polytraj
package polytraj
