package sim

// RoundRobin proposes servers in circular order starting at the driver-held
// cursor, skipping servers that cannot admit the request. If a full cycle
// finds no admissible server it returns the cursor unchanged and lets the
// driver's admission gate reject.
//
// The cursor advances only on successful admission (driver-side), so a
// rejected request does not rotate the ring.
type RoundRobin struct{}

// Name implements SchedulingPolicy.
func (*RoundRobin) Name() string { return PolicyRoundRobin }

// SelectServer implements SchedulingPolicy for RoundRobin.
func (*RoundRobin) SelectServer(req *Request, servers []*Server, cursor int) int {
	n := len(servers)
	for i := 0; i < n; i++ {
		idx := (cursor + i) % n
		if servers[idx].CanAdmit(req) {
			return idx
		}
	}
	return cursor
}
