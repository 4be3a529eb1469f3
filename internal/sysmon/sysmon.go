// Package sysmon samples host-wide CPU and memory usage for the benchmark
// report.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of host resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0, since the previous Sample or Prime
	MemPercent  float64 // 0.0 .. 100.0
	MemTotal    uint64  // bytes
	LogicalCPUs int
}

// Prime starts a CPU measurement window; the next Sample reports usage
// since this call.
func Prime() {
	_, _ = cpu.Percent(0, false)
}

// Sample collects a single host-wide snapshot. CPU uses interval=0 (delta
// since the last call). Fields it cannot read are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
	}
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}
	return s
}
