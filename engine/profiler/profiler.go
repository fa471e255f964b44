package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting interval's worth of measurements.
type Stats struct {
	FPS      float64
	AvgTick  time.Duration
	MaxTick  time.Duration
	HeapMB   float64
	NumGC    uint32
	Interval time.Duration
}

// Profiler tracks frame rate, tick cost and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	tickTotal      time.Duration
	tickMax        time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	last           Stats
}

// NewProfiler creates a new Profiler reporting once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return NewProfilerWithInterval(time.Second)
}

// NewProfilerWithInterval creates a Profiler reporting every interval.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfilerWithInterval(interval time.Duration) *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: interval,
	}
}

// Tick should be called once per frame with the time that frame's work took.
// Logs FPS, average and worst tick cost, heap usage and GC count when the update interval has
// elapsed.
//
// Parameters:
//   - cost: the duration of the frame's controller tick and presentation
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(cost time.Duration) bool {
	p.frameCount++
	p.tickTotal += cost
	p.tickMax = max(p.tickMax, cost)

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = 1e-9
	}
	p.last = Stats{
		FPS:      float64(p.frameCount) / seconds,
		AvgTick:  p.tickTotal / time.Duration(p.frameCount),
		MaxTick:  p.tickMax,
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		NumGC:    p.memStats.NumGC,
		Interval: elapsed,
	}

	log.Printf("[Profiler] FPS: %.2f | Tick: %.3f ms avg, %.3f ms max | Heap: %.2f MB | GC: %d",
		p.last.FPS, msec(p.last.AvgTick), msec(p.last.MaxTick), p.last.HeapMB, p.last.NumGC)

	p.frameCount = 0
	p.tickTotal = 0
	p.tickMax = 0
	p.lastTime = currentTime
	return true
}

// Last returns the most recently logged stats, zero before the first report.
func (p *Profiler) Last() Stats {
	return p.last
}

func msec(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
