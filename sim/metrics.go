// End-of-run summary reporting for the CLI.

package sim

import "fmt"

// Summary aggregates simulation-wide results for final reporting.
type Summary struct {
	Ticks     int64
	Generated int64
	Admitted  int64
	Rejected  int64
	Completed int64

	Servers       []ServerSnapshot
	CPUBalance    int
	MemoryBalance int
}

// Summary captures the driver's aggregate results at the current clock.
// Balance scores are computed over the current loads, not the history.
func (d *Driver) Summary() Summary {
	cpu := make([]float64, len(d.Servers))
	mem := make([]float64, len(d.Servers))
	for i, s := range d.Servers {
		cpu[i] = s.CPULoad()
		mem[i] = s.MemoryLoad()
	}
	return Summary{
		Ticks:         d.Clock,
		Generated:     d.Generator.Count(),
		Admitted:      d.TotalAdmitted,
		Rejected:      d.TotalRejected,
		Completed:     d.TotalCompleted,
		Servers:       d.ServerSnapshots(),
		CPUBalance:    BalanceScore(cpu),
		MemoryBalance: BalanceScore(mem),
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (s Summary) Print() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Ticks executed       : %d\n", s.Ticks)
	fmt.Printf("Requests generated   : %d\n", s.Generated)
	fmt.Printf("Requests admitted    : %d\n", s.Admitted)
	fmt.Printf("Requests rejected    : %d\n", s.Rejected)
	fmt.Printf("Requests completed   : %d\n", s.Completed)
	fmt.Printf("CPU balance score    : %d\n", s.CPUBalance)
	fmt.Printf("Memory balance score : %d\n", s.MemoryBalance)
	for i, srv := range s.Servers {
		fmt.Printf("Server %d: active=%d cpu=%.1f%% mem=%.1f%% avgResponse=%.1f rejected=%d\n",
			i, srv.ActiveCount, srv.CPULoad, srv.MemoryLoad, srv.AvgResponseTime, srv.RejectedCount)
	}
}
