package sim

// LeastRequests proposes the server hosting the fewest active requests.
// Ties are broken by first occurrence in iteration order (lowest index).
type LeastRequests struct{}

// Name implements SchedulingPolicy.
func (*LeastRequests) Name() string { return PolicyLeastRequests }

// SelectServer implements SchedulingPolicy for LeastRequests.
func (*LeastRequests) SelectServer(_ *Request, servers []*Server, _ int) int {
	best := 0
	for i := 1; i < len(servers); i++ {
		if servers[i].ActiveCount() < servers[best].ActiveCount() {
			best = i
		}
	}
	return best
}
