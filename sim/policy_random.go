package sim

import "math/rand"

// Random proposes server indices sampled without replacement until one can
// admit the request. If none can, it returns a uniformly random index anyway;
// the driver's admission gate will reject it downstream.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random policy drawing from the given RNG stream.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name implements SchedulingPolicy.
func (*Random) Name() string { return PolicyRandom }

// SelectServer implements SchedulingPolicy for Random.
func (p *Random) SelectServer(req *Request, servers []*Server, _ int) int {
	for _, idx := range p.rng.Perm(len(servers)) {
		if servers[idx].CanAdmit(req) {
			return idx
		}
	}
	return p.rng.Intn(len(servers))
}
