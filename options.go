package vertexlayout

import "log/slog"

// StridePolicy selects how a layout's stride is derived.
type StridePolicy uint8

const (
	// StrideSum uses the sum of the attribute sizes. This is the default and
	// always agrees with the attribute offsets.
	StrideSum StridePolicy = iota

	// StrideRecordSize uses the captured host record size, which may include
	// trailing padding. Requires WithRecordSize (For captures it automatically).
	StrideRecordSize
)

func (p StridePolicy) String() string {
	switch p {
	case StrideSum:
		return "sum"
	case StrideRecordSize:
		return "record"
	}
	return "unknown"
}

// Option configures a layout build.
//
// Example:
//
//	layout, err := vertexlayout.Build(fields,
//	    vertexlayout.WithRecordSize(48),
//	    vertexlayout.WithStridePolicy(vertexlayout.StrideRecordSize))
type Option func(*options)

// options holds the build configuration.
type options struct {
	registry   *Registry
	recordSize uint64
	hasRecord  bool
	policy     StridePolicy
	logger     *slog.Logger
}

// defaultOptions returns the default build options.
func defaultOptions() options {
	return options{
		registry: DefaultRegistry(),
		policy:   StrideSum,
		logger:   nil, // resolved to Logger() at build time
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithRegistry builds against r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithRecordSize captures the true in-memory size of one record, including
// any padding the host inserts. It is recorded on the layout for comparison
// and used as the stride under StrideRecordSize.
func WithRecordSize(size uint64) Option {
	return func(o *options) {
		o.recordSize = size
		o.hasRecord = true
	}
}

// WithStridePolicy selects the stride policy. The default is StrideSum.
func WithStridePolicy(p StridePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger overrides the package logger for a single build.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
