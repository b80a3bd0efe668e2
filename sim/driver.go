// The Driver orchestrates the simulation: arrival generation, policy
// invocation, the authoritative admission test, completion reclamation, and
// tick sequencing. It exclusively owns the server pool; all mutation happens
// inside a tick, fully serialized.

package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of submitting one request. ServerIndex is the
// admitting server on success, the rejecting candidate on a capacity
// rejection, and -1 when no server owned the decision (out-of-range policy
// index).
type Outcome struct {
	Admitted    bool
	ServerIndex int
}

// Hooks are synchronous notification callbacks fired within the tick that
// produced the event. They exist purely for presentation (the excluded
// rendering layer) and must not mutate core state. Nil hooks are skipped.
type Hooks struct {
	OnAdmitted  func(req *Request, serverIndex int)
	OnRejected  func(req *Request, serverIndex int)
	OnCompleted func(req *Request, serverIndex int)
}

// Driver is the core object that holds simulation time, the server pool, the
// active scheduling policy, and all simulation-wide counters.
type Driver struct {
	Clock   int64
	Servers []*Server
	Policy  SchedulingPolicy

	Generator *Generator
	Stats     *StatsEngine

	ArrivalRate float64 // arrivals per tick; fractional rates accumulate across ticks

	TotalAdmitted  int64
	TotalRejected  int64
	TotalCompleted int64

	cursor       int     // round-robin rotation cursor, advanced on successful admission
	arrivalCarry float64 // fractional arrival accumulator
	rng          *PartitionedRNG
	hooks        Hooks
}

// NewDriver builds a Driver from cfg. The configuration is validated first;
// an invalid configuration is an error, never silently patched.
func NewDriver(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	policy, err := NewSchedulingPolicy(cfg.Policy, rng.ForSubsystem(SubsystemPolicy))
	if err != nil {
		return nil, err
	}

	servers := make([]*Server, cfg.ServerCount)
	for i := range servers {
		servers[i] = NewServer()
	}

	return &Driver{
		Servers:     servers,
		Policy:      policy,
		Generator:   NewGenerator(cfg.Catalog, cfg.DurationMin, cfg.DurationMax, rng.ForSubsystem(SubsystemWorkload)),
		Stats:       NewStatsEngine(cfg.HistoryCapacity),
		ArrivalRate: cfg.ArrivalRate,
		rng:         rng,
	}, nil
}

// SetHooks installs the presentation callbacks.
func (d *Driver) SetHooks(h Hooks) {
	d.hooks = h
}

// Submit runs one admission decision: the active policy proposes a server,
// the driver re-checks capacity and either admits or rejects. Rejection is
// immediate and final — the request is never retried or re-queued.
func (d *Driver) Submit(req *Request) Outcome {
	idx := d.Policy.SelectServer(req, d.Servers, d.cursor)

	// Guard against third-party/custom policies returning a bad index.
	if idx < 0 || idx >= len(d.Servers) {
		logrus.Warnf("[tick %07d] policy %s returned out-of-range index %d; rejecting request %d",
			d.Clock, d.Policy.Name(), idx, req.ID)
		d.TotalRejected++
		if d.hooks.OnRejected != nil {
			d.hooks.OnRejected(req, -1)
		}
		return Outcome{Admitted: false, ServerIndex: -1}
	}

	srv := d.Servers[idx]
	if !srv.CanAdmit(req) {
		srv.RejectedCount++
		d.TotalRejected++
		logrus.Debugf("[tick %07d] rejected request %d at server %d (cpu %.1f+%.1f, mem %.1f+%.1f)",
			d.Clock, req.ID, idx, srv.CPULoad(), req.CPUDemand, srv.MemoryLoad(), req.MemoryDemand)
		if d.hooks.OnRejected != nil {
			d.hooks.OnRejected(req, idx)
		}
		return Outcome{Admitted: false, ServerIndex: idx}
	}

	srv.Admit(req)
	d.TotalAdmitted++
	d.cursor = (idx + 1) % len(d.Servers)
	logrus.Debugf("[tick %07d] admitted request %d at server %d", d.Clock, req.ID, idx)
	if d.hooks.OnAdmitted != nil {
		d.hooks.OnAdmitted(req, idx)
	}
	return Outcome{Admitted: true, ServerIndex: idx}
}

// Tick advances the clock by one and performs, in strict order:
// (1) completion reclamation across all servers, (2) new-arrival admissions
// for this tick's arrival count, (3) one statistics sample. Reclamation runs
// first so same-tick arrivals never see stale capacity.
func (d *Driver) Tick() {
	d.Clock++
	now := d.Clock

	for i, srv := range d.Servers {
		for _, req := range srv.Reclaim(now) {
			d.TotalCompleted++
			if d.hooks.OnCompleted != nil {
				d.hooks.OnCompleted(req, i)
			}
		}
	}

	d.arrivalCarry += d.ArrivalRate
	for d.arrivalCarry >= 1 {
		d.arrivalCarry--
		d.Submit(d.Generator.Generate(now))
	}

	d.Stats.Sample(d.Servers, now)
}

// Run executes up to ticks ticks, stopping early when ctx is cancelled.
// Requests still active at cancellation are simply dropped; the simulation
// does not drain. Returns the number of ticks executed.
func (d *Driver) Run(ctx context.Context, ticks int64) int64 {
	for i := int64(0); i < ticks; i++ {
		select {
		case <-ctx.Done():
			logrus.Infof("[tick %07d] tick source halted: %v", d.Clock, ctx.Err())
			return i
		default:
		}
		d.Tick()
	}
	return ticks
}

// SetPolicy swaps the active scheduling policy at runtime without resetting
// server state. Unknown names are an error and leave the current policy in
// place.
func (d *Driver) SetPolicy(name string) error {
	policy, err := NewSchedulingPolicy(name, d.rng.ForSubsystem(SubsystemPolicy))
	if err != nil {
		return err
	}
	d.Policy = policy
	return nil
}

// SetServerCount discards the current servers and all derived state and
// creates n fresh servers with zero load and zero counters. The balance
// history is cleared because its samples were taken over a differently
// sized pool.
func (d *Driver) SetServerCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("invalid server count %d: must be positive", n)
	}
	servers := make([]*Server, n)
	for i := range servers {
		servers[i] = NewServer()
	}
	d.Servers = servers
	d.resetDerivedState()
	return nil
}

// Reset clears all servers' active requests and counters, zeroes the
// simulation-wide counters and the request ID counter, and clears the
// balance history.
func (d *Driver) Reset() {
	for _, srv := range d.Servers {
		srv.Reset()
	}
	d.resetDerivedState()
}

func (d *Driver) resetDerivedState() {
	d.Clock = 0
	d.cursor = 0
	d.arrivalCarry = 0
	d.TotalAdmitted = 0
	d.TotalRejected = 0
	d.TotalCompleted = 0
	d.Generator.Reset()
	d.Stats.Reset()
}

// ServerSnapshots returns the observable state of every server, in pool
// order. Idempotent between ticks.
func (d *Driver) ServerSnapshots() []ServerSnapshot {
	out := make([]ServerSnapshot, len(d.Servers))
	for i, srv := range d.Servers {
		out[i] = srv.Snapshot()
	}
	return out
}

// BalanceHistory returns the bounded balance-score history, oldest first.
func (d *Driver) BalanceHistory() []BalanceSample {
	return d.Stats.History()
}
