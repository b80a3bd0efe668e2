package sim

// LeastResponseTime proposes the server with the lowest average response
// time over its completed requests. Servers with no completions yet are
// scored activeCount*100 rather than 0, so an untouched server is not
// unconditionally preferred over a proven fast one. Lower index wins ties.
type LeastResponseTime struct{}

// Name implements SchedulingPolicy.
func (*LeastResponseTime) Name() string { return PolicyLeastResponseTime }

// SelectServer implements SchedulingPolicy for LeastResponseTime.
func (*LeastResponseTime) SelectServer(_ *Request, servers []*Server, _ int) int {
	best := 0
	bestScore := responseScore(servers[0])
	for i := 1; i < len(servers); i++ {
		if score := responseScore(servers[i]); score < bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

func responseScore(s *Server) float64 {
	if s.CompletedCount == 0 {
		return float64(s.ActiveCount()) * 100
	}
	return s.AvgResponseTime()
}
