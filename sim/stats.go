// Statistics engine: per-tick aggregate load statistics and the bounded
// balance-score history consumed by the rendering layer for trend display.

package sim

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds descriptive statistics over a set of per-server load values.
// Variance is the population variance (divide by N, not N-1).
type Stats struct {
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// ComputeStats computes Stats over values. An empty input yields the zero
// value.
func ComputeStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	mean, variance := stat.PopMeanVariance(values, nil)
	return Stats{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      floats.Min(values),
		Max:      floats.Max(values),
	}
}

// BalanceScore computes a 0-100 fairness score over per-server load values.
// It is a worst-case-deviation metric, not a dispersion measure: it penalizes
// the single most unbalanced server relative to the mean, so an observer sees
// the worst offender rather than overall spread.
//
// Empty input and all-zero input both score 100 (vacuously balanced).
func BalanceScore(values []float64) int {
	if len(values) == 0 {
		return 100
	}
	mean := stat.Mean(values, nil)
	if mean == 0 {
		return 100
	}
	var maxDeviation float64
	for _, v := range values {
		maxDeviation = math.Max(maxDeviation, math.Abs(v-mean))
	}
	score := 100 * (1 - maxDeviation/(2*mean))
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// BalanceSample is one timestamped balance-score pair in the history buffer.
type BalanceSample struct {
	Timestamp     int64
	CPUBalance    int
	MemoryBalance int
}

// SampleResult is the outcome of one statistics sample over the server pool.
type SampleResult struct {
	CPUStats      Stats
	MemoryStats   Stats
	CPUBalance    int
	MemoryBalance int
}

// DefaultHistoryCapacity bounds the balance history when no explicit
// capacity is configured.
const DefaultHistoryCapacity = 50

// StatsEngine samples server loads and keeps a bounded FIFO history of
// balance scores. The history is the only persisted trend data; everything
// else is recomputed per sample.
type StatsEngine struct {
	capacity int
	history  []BalanceSample
}

// NewStatsEngine creates a StatsEngine with the given history capacity.
// Non-positive capacities fall back to DefaultHistoryCapacity.
func NewStatsEngine(capacity int) *StatsEngine {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &StatsEngine{capacity: capacity}
}

// Capacity returns the history buffer capacity.
func (e *StatsEngine) Capacity() int {
	return e.capacity
}

// Sample computes load statistics and balance scores over the current server
// pool and appends the balance pair to the history, evicting the oldest
// sample when full.
func (e *StatsEngine) Sample(servers []*Server, now int64) SampleResult {
	cpu := make([]float64, len(servers))
	mem := make([]float64, len(servers))
	for i, s := range servers {
		cpu[i] = s.CPULoad()
		mem[i] = s.MemoryLoad()
	}

	res := SampleResult{
		CPUStats:      ComputeStats(cpu),
		MemoryStats:   ComputeStats(mem),
		CPUBalance:    BalanceScore(cpu),
		MemoryBalance: BalanceScore(mem),
	}

	e.history = append(e.history, BalanceSample{
		Timestamp:     now,
		CPUBalance:    res.CPUBalance,
		MemoryBalance: res.MemoryBalance,
	})
	if len(e.history) > e.capacity {
		e.history = e.history[1:]
	}
	return res
}

// History returns a copy of the balance history, oldest first.
func (e *StatsEngine) History() []BalanceSample {
	out := make([]BalanceSample, len(e.history))
	copy(out, e.history)
	return out
}

// Reset clears the history buffer.
func (e *StatsEngine) Reset() {
	e.history = nil
}
