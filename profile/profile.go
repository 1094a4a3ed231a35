package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler describes a profiling session.
type Profiler struct {
	// Mode selects one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Dir is the directory receiving profile data.
	Dir string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Stopper ends a profiling session started with [Profiler.Start].
type Stopper interface{ Stop() }

// Start begins profiling and returns a handle for stopping it.
//
// Without build tag pprof, or with an empty Mode, Start returns a no-op
// Stopper. Both Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// Enabled reports whether mode names a supported profiling mode.
func Enabled(mode string) bool {
	for _, m := range Modes() {
		if m == mode {
			return true
		}
	}

	return false
}

type ignore struct{}

func (ignore) Stop() {}
