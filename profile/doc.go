// Package profile provides optional runtime profiling for hopter.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
// With it, [github.com/pkg/profile] backs the following modes:
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// A session is described by a [Profiler] and ended with Stop:
//
//	stop := profile.Profiler{Mode: "cpu", Dir: "/tmp/hopter"}.Start()
//	defer stop.Stop()
//
// Analyze the output with the pprof tool:
//
//	go tool pprof -http=: /tmp/hopter/cpu.pprof
package profile
