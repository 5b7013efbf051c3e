package sampler

import (
	"io"
	"log/slog"
)

// DefaultConcurrency bounds the number of segments sampled at once.
const DefaultConcurrency = 4

const panicConcurrencyInvalid = "sampler: WithConcurrency: n must be > 0"

// Option configures SampleSequence.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	concurrency int          // > 0; DefaultConcurrency
	logger      *slog.Logger // never nil after gatherOptions
}

// WithConcurrency sets how many segments are sampled in parallel.
// Panics when n <= 0.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *options) { o.concurrency = n }
}

// WithLogger routes per-segment debug records to l. A nil l discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
