//go:build pprof

package profile

// Option appends profiler settings to a control.
type Option func(control) control

func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}
