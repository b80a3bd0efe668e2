package sim

// DynamicCPU proposes the server with the lowest current aggregate CPU
// demand across its active requests. Lower index wins ties.
type DynamicCPU struct{}

// Name implements SchedulingPolicy.
func (*DynamicCPU) Name() string { return PolicyDynamicCPU }

// SelectServer implements SchedulingPolicy for DynamicCPU.
func (*DynamicCPU) SelectServer(_ *Request, servers []*Server, _ int) int {
	best := 0
	bestLoad := servers[0].CPULoad()
	for i := 1; i < len(servers); i++ {
		if load := servers[i].CPULoad(); load < bestLoad {
			best = i
			bestLoad = load
		}
	}
	return best
}
