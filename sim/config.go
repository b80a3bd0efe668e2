package sim

import "fmt"

// Config groups everything needed to construct a Driver. Validation is
// strict: invalid explicit input fails fast, it is never silently replaced
// with a default.
type Config struct {
	ServerCount     int           // number of servers in the pool (must be > 0)
	Policy          string        // scheduling policy name (see AvailablePolicies)
	ArrivalRate     float64       // request arrivals per tick (may be fractional, must be >= 0)
	HistoryCapacity int           // balance history capacity (0 = DefaultHistoryCapacity)
	Catalog         []RequestType // request type catalog (must be non-empty)
	DurationMin     int64         // service durations drawn from (DurationMin, DurationMax]
	DurationMax     int64
	Seed            int64 // master seed for the partitioned RNG
}

// DefaultConfig returns a runnable baseline configuration.
func DefaultConfig() Config {
	return Config{
		ServerCount:     4,
		Policy:          PolicyRoundRobin,
		ArrivalRate:     0.5,
		HistoryCapacity: DefaultHistoryCapacity,
		Catalog:         DefaultCatalog(),
		DurationMin:     DefaultDurationMin,
		DurationMax:     DefaultDurationMax,
		Seed:            42,
	}
}

// Validate checks the configuration and returns a descriptive error for the
// first violation found.
func (c Config) Validate() error {
	if c.ServerCount <= 0 {
		return fmt.Errorf("invalid server count %d: must be positive", c.ServerCount)
	}
	if c.ArrivalRate < 0 {
		return fmt.Errorf("invalid arrival rate %v: must be non-negative", c.ArrivalRate)
	}
	if len(c.Catalog) == 0 {
		return fmt.Errorf("request type catalog must not be empty")
	}
	for _, rt := range c.Catalog {
		if rt.CPU < 0 || rt.CPU > 100 || rt.Memory < 0 || rt.Memory > 100 {
			return fmt.Errorf("request type %q demands (cpu=%v, memory=%v) out of range [0,100]", rt.Name, rt.CPU, rt.Memory)
		}
	}
	if c.DurationMin < 0 || c.DurationMax <= c.DurationMin {
		return fmt.Errorf("invalid service duration range (%d, %d]: need 0 <= min < max", c.DurationMin, c.DurationMax)
	}
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("invalid history capacity %d: must be non-negative", c.HistoryCapacity)
	}
	if _, err := NewSchedulingPolicy(c.Policy, nil); err != nil {
		return err
	}
	return nil
}
