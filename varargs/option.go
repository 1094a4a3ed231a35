package varargs

import "github.com/ardnew/hopter/log"

// Option configures an [Expander] or [Scanner].
type Option func(*options)

type options struct {
	logger log.Logger
	marker bool
}

// DefaultMarker is the default setting for writing an arity marker line
// before each expansion.
const DefaultMarker = true

func makeOptions(opts ...Option) options {
	o := options{marker: DefaultMarker}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMarker controls whether each expansion is preceded by its [Marker]
// line.
func WithMarker(enable bool) Option {
	return func(o *options) { o.marker = enable }
}

// WithLogger sets the structured logger for trace-level debugging and
// warnings. If not provided, the logger is zero-valued and all logging is a
// no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}
