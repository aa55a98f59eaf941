package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of elapsed time and memory allocation at a
// given point in time.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Log logs the difference between the state now and as it was when the
// PerfStats object was created.  Allocation is reported in Mb, since circuits
// rarely reach into Gb.
func (p *PerfStats) Log(prefix string) {
	exectime, alloc, gcs := p.delta()

	log.Debugf("%s took %0.3fs using %0.2f Mb (%v GC events)", prefix, exectime, alloc, gcs)
}

// LogRate logs the same as Log, along with the rate at which some number of
// units (e.g. "ticks") were processed.
func (p *PerfStats) LogRate(prefix string, n uint, unit string) {
	exectime, alloc, gcs := p.delta()
	rate := float64(n)

	if exectime > 0 {
		rate = rate / exectime
	}

	log.Debugf("%s took %0.3fs using %0.2f Mb (%v GC events) [%0.0f %s/s]", prefix, exectime, alloc, gcs, rate, unit)
}

func (p *PerfStats) delta() (float64, float64, uint32) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := float64(m.TotalAlloc-p.startMem) / 1024 / 1024

	return time.Since(p.startTime).Seconds(), alloc, m.NumGC - p.startGc
}
