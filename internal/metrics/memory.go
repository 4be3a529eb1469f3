// Package metrics reads Go runtime statistics for the benchmark report.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time runtime reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by the application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from the OS
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Goroutines   int
}

// MemoryDelta describes runtime activity between two snapshots.
type MemoryDelta struct {
	Allocated uint64 // bytes allocated in between
	GCCycles  uint32 // GC cycles completed in between
	PauseNs   uint64 // GC pause accumulated in between
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current runtime statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Goroutines:   runtime.NumGoroutine(),
	}
}

// Since returns the activity between prev and s. Counters are monotonic, so
// prev must be the earlier snapshot.
func (s MemorySnapshot) Since(prev MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated: s.TotalAlloc - prev.TotalAlloc,
		GCCycles:  s.NumGC - prev.NumGC,
		PauseNs:   s.PauseTotalNs - prev.PauseTotalNs,
	}
}
