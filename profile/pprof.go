//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Modes returns the supported profiling modes, sorted by name.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

type control struct {
	opts []func(*profile.Profile)
}

func start(p Profiler) Stopper {
	c := apply(control{}, withMode(p.Mode))
	if len(c.opts) == 0 {
		return ignore{}
	}

	c = apply(c, withDir(p.Dir), withQuiet(p.Quiet), withNoShutdownHook())

	return profile.Start(c.opts...)
}

func withMode(m string) Option {
	return func(c control) control {
		if fn, ok := mode[m]; ok {
			c.opts = append(c.opts, fn)
		}

		return c
	}
}

func withDir(dir string) Option {
	return func(c control) control {
		if dir != "" {
			c.opts = append(c.opts, profile.ProfilePath(dir))
		}

		return c
	}
}

func withQuiet(v bool) Option {
	return func(c control) control {
		if v {
			c.opts = append(c.opts, profile.Quiet)
		}

		return c
	}
}

// withNoShutdownHook leaves signal handling to the command context so an
// interrupted expansion still flushes its profile through Stop.
func withNoShutdownHook() Option {
	return func(c control) control {
		c.opts = append(c.opts, profile.NoShutdownHook)

		return c
	}
}
