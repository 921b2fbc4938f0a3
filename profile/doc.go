// Package profile provides optional runtime profiling for the denv
// command.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// In default builds every operation is a no-op with zero overhead; when
// built with the tag, the supported modes are:
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap memory profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace profiling
//
// Use [Modes] to retrieve the supported modes programmatically. Profile
// files are written to the configured directory with names matching the
// mode (cpu.pprof, heap.pprof, ...) for analysis with go tool pprof:
//
//	go tool pprof ./denv /path/to/cpu.pprof
//	go tool pprof -http=: /path/to/cpu.pprof
//
// Builds with the tag also import [net/http/pprof], registering its
// /debug/pprof/ handlers for any HTTP server the process may start.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
