// Defines the Request struct that models a unit of work in the simulation,
// and the Generator that synthesizes arrivals from a finite type catalog.

package sim

import (
	"fmt"
	"math/rand"
)

// Request models a single unit of work. Demands are fixed at creation from a
// finite catalog of request types and never mutated afterwards. A request is
// owned by exactly one server while active; rejected or completed requests
// are owned by no one.
type Request struct {
	ID int64 // Unique, monotonically increasing, assigned at creation

	CPUDemand    float64 // CPU percentage in [0,100]
	MemoryDemand float64 // Memory percentage in [0,100]

	ServiceDuration int64 // How long the request occupies its server (in ticks)
	ArrivalTime     int64 // Clock value when the request was generated
}

// CompletedBy reports whether the request's service duration has elapsed at
// the given clock value.
func (r *Request) CompletedBy(now int64) bool {
	return now-r.ArrivalTime >= r.ServiceDuration
}

// This method returns a human-readable string representation of a Request.
func (r Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, CPU: %.1f, Mem: %.1f, Duration: %d, ArrivalTime: %d)",
		r.ID, r.CPUDemand, r.MemoryDemand, r.ServiceDuration, r.ArrivalTime)
}

// RequestType is a catalog entry describing the resource demands of one
// class of request.
type RequestType struct {
	Name   string
	CPU    float64
	Memory float64
}

// DefaultCatalog returns the built-in request type catalog. The CLI layer can
// override it from a YAML file.
func DefaultCatalog() []RequestType {
	return []RequestType{
		{Name: "light", CPU: 5, Memory: 4},
		{Name: "standard", CPU: 10, Memory: 8},
		{Name: "compute", CPU: 25, Memory: 10},
		{Name: "memory", CPU: 10, Memory: 25},
		{Name: "heavy", CPU: 30, Memory: 30},
	}
}

// Default service duration bounds: durations are drawn uniformly from
// (DefaultDurationMin, DefaultDurationMax] ticks.
const (
	DefaultDurationMin int64 = 0
	DefaultDurationMax int64 = 500
)

// Generator synthesizes requests. It owns the ID counter explicitly so that
// multiple independent simulations never share hidden global state.
type Generator struct {
	catalog     []RequestType
	durationMin int64
	durationMax int64
	rng         *rand.Rand
	nextID      int64
}

// NewGenerator creates a Generator drawing types uniformly from catalog and
// service durations uniformly from (durationMin, durationMax].
func NewGenerator(catalog []RequestType, durationMin, durationMax int64, rng *rand.Rand) *Generator {
	return &Generator{
		catalog:     catalog,
		durationMin: durationMin,
		durationMax: durationMax,
		rng:         rng,
	}
}

// Generate creates the next request with a fresh sequential ID.
func (g *Generator) Generate(now int64) *Request {
	rt := g.catalog[g.rng.Intn(len(g.catalog))]
	duration := g.durationMin + 1 + g.rng.Int63n(g.durationMax-g.durationMin)
	g.nextID++
	return &Request{
		ID:              g.nextID,
		CPUDemand:       rt.CPU,
		MemoryDemand:    rt.Memory,
		ServiceDuration: duration,
		ArrivalTime:     now,
	}
}

// Count returns the number of requests generated since creation or the last
// Reset.
func (g *Generator) Count() int64 {
	return g.nextID
}

// Reset zeroes the ID counter. The RNG stream is deliberately not rewound;
// a fully deterministic restart recreates the driver from its config.
func (g *Generator) Reset() {
	g.nextID = 0
}
