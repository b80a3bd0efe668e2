// Defines the Server struct: a capacity-bounded resource holder that hosts
// admitted requests and tracks completion and rejection counters.

package sim

// Capacity constants. Every server is created with the same fixed capacity;
// demands are percentages, so 100 means "the whole machine".
const (
	CapacityCPU    float64 = 100
	CapacityMemory float64 = 100
)

// Server holds the set of currently active requests plus monotone counters.
// Invariant: the summed CPU and memory demands of Active never exceed the
// capacities at any observable time. Admission is checked before mutation,
// so the invariant holds even transiently.
type Server struct {
	CapacityCPU    float64
	CapacityMemory float64

	// Active requests in admission order. Order is irrelevant for load math;
	// only the count matters (least-requests tie-break).
	Active []*Request

	CompletedCount         int64 // Number of requests that ran to completion
	CumulativeResponseTime int64 // Sum of service durations of completed requests (in ticks)
	RejectedCount          int64 // Number of requests rejected at admission
}

// NewServer creates a server with full capacity and zeroed counters.
func NewServer() *Server {
	return &Server{
		CapacityCPU:    CapacityCPU,
		CapacityMemory: CapacityMemory,
	}
}

// CPULoad returns the summed CPU demand of all active requests.
func (s *Server) CPULoad() float64 {
	var total float64
	for _, r := range s.Active {
		total += r.CPUDemand
	}
	return total
}

// MemoryLoad returns the summed memory demand of all active requests.
func (s *Server) MemoryLoad() float64 {
	var total float64
	for _, r := range s.Active {
		total += r.MemoryDemand
	}
	return total
}

// ActiveCount returns the number of currently hosted requests.
func (s *Server) ActiveCount() int {
	return len(s.Active)
}

// CanAdmit reports whether admitting r would keep both capacity constraints
// satisfied.
func (s *Server) CanAdmit(r *Request) bool {
	return s.CPULoad()+r.CPUDemand <= s.CapacityCPU &&
		s.MemoryLoad()+r.MemoryDemand <= s.CapacityMemory
}

// Admit adds r to the active set. Callers must check CanAdmit first; Admit
// itself does not re-verify so the driver keeps a single authoritative gate.
func (s *Server) Admit(r *Request) {
	s.Active = append(s.Active, r)
}

// AvgResponseTime returns CumulativeResponseTime / CompletedCount, or 0 when
// nothing has completed yet.
func (s *Server) AvgResponseTime() float64 {
	if s.CompletedCount == 0 {
		return 0
	}
	return float64(s.CumulativeResponseTime) / float64(s.CompletedCount)
}

// Reclaim removes every active request whose service duration has elapsed at
// now, updating the completion counters, and returns the reclaimed requests.
func (s *Server) Reclaim(now int64) []*Request {
	var completed []*Request
	remaining := s.Active[:0]
	for _, r := range s.Active {
		if r.CompletedBy(now) {
			s.CompletedCount++
			s.CumulativeResponseTime += r.ServiceDuration
			completed = append(completed, r)
		} else {
			remaining = append(remaining, r)
		}
	}
	s.Active = remaining
	return completed
}

// Reset drops all active requests and zeroes every counter.
func (s *Server) Reset() {
	s.Active = nil
	s.CompletedCount = 0
	s.CumulativeResponseTime = 0
	s.RejectedCount = 0
}

// ServerSnapshot is a lightweight read-only view of server state, exposed to
// the rendering/UI layer. Safe to hold across ticks; it never aliases live
// server state.
type ServerSnapshot struct {
	CPULoad         float64
	MemoryLoad      float64
	ActiveCount     int
	AvgResponseTime float64
	RejectedCount   int64
}

// Snapshot captures the server's observable state.
func (s *Server) Snapshot() ServerSnapshot {
	return ServerSnapshot{
		CPULoad:         s.CPULoad(),
		MemoryLoad:      s.MemoryLoad(),
		ActiveCount:     s.ActiveCount(),
		AvgResponseTime: s.AvgResponseTime(),
		RejectedCount:   s.RejectedCount,
	}
}
