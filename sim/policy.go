package sim

import (
	"fmt"
	"math/rand"
)

// SchedulingPolicy selects which server should receive an incoming request.
// Implementations are pure functions of the request and the current server
// states: any rotation state (the round-robin cursor) is held by the driver
// and passed in, so policies can be swapped at runtime without resetting
// server state and unit-tested against plain server snapshots.
//
// A policy only proposes. The driver's admission gate re-checks capacity and
// is authoritative; a policy is never required to guarantee availability.
type SchedulingPolicy interface {
	// Name returns the policy's registry name.
	Name() string
	// SelectServer returns the index of the proposed target server.
	// servers is never empty; cursor is the driver-held rotation cursor
	// (meaningful only to round-robin, ignored by the rest).
	SelectServer(req *Request, servers []*Server, cursor int) int
}

// Policy registry names.
const (
	PolicyRoundRobin        = "round-robin"
	PolicyRandom            = "random"
	PolicyLeastRequests     = "least-requests"
	PolicyLeastResponseTime = "least-response-time"
	PolicyDynamicCPU        = "dynamic-cpu"
)

// AvailablePolicies returns the list of supported scheduling policy names.
func AvailablePolicies() []string {
	return []string{
		PolicyRoundRobin,
		PolicyRandom,
		PolicyLeastRequests,
		PolicyLeastResponseTime,
		PolicyDynamicCPU,
	}
}

// NewSchedulingPolicy creates a scheduling policy by name. rng is consumed
// only by the random policy; others ignore it. Unknown names return a
// descriptive error — there is no silent fallback to a default policy.
func NewSchedulingPolicy(name string, rng *rand.Rand) (SchedulingPolicy, error) {
	switch name {
	case PolicyRoundRobin:
		return &RoundRobin{}, nil
	case PolicyRandom:
		return NewRandom(rng), nil
	case PolicyLeastRequests:
		return &LeastRequests{}, nil
	case PolicyLeastResponseTime:
		return &LeastResponseTime{}, nil
	case PolicyDynamicCPU:
		return &DynamicCPU{}, nil
	default:
		return nil, fmt.Errorf("unknown scheduling policy %q; valid policies: %v", name, AvailablePolicies())
	}
}
