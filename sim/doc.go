// Package sim provides the core tick-driven simulation engine for loadsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - request.go: Request model and the synthetic request generator
//   - server.go: capacity-bounded server state and the admission test
//   - driver.go: the tick loop (reclamation, arrivals, sampling) and reconfiguration
//
// # Key Interfaces
//
// The extension point is a single small interface:
//   - SchedulingPolicy: select a target server index for an incoming request
//
// Five implementations ship with the engine (round-robin, random,
// least-requests, least-response-time, dynamic-cpu), selected by name via
// NewSchedulingPolicy. The driver's own admission gate is authoritative: a
// policy proposes, the driver disposes.
//
// The engine is single-goroutine by design. Servers and counters are mutated
// only inside a tick; snapshot getters are safe between ticks.
package sim
