package profiler

import (
	"testing"
	"time"
)

func TestTickReportsAfterInterval(t *testing.T) {
	p := NewProfilerWithInterval(time.Hour)
	for i := 0; i < 5; i++ {
		if p.Tick(time.Millisecond) {
			t.Fatalf("Expected no report before the interval, got one at tick %d", i)
		}
	}
	if p.Last().FPS != 0 {
		t.Errorf("Expected zero stats before the first report, got %+v", p.Last())
	}
}

func TestTickAveragesCost(t *testing.T) {
	p := NewProfilerWithInterval(0)
	p.lastTime = time.Now().Add(-time.Second)
	p.frameCount = 1
	p.tickTotal = 2 * time.Millisecond
	p.tickMax = 2 * time.Millisecond

	if !p.Tick(4 * time.Millisecond) {
		t.Fatalf("Expected a report once the interval elapsed")
	}
	s := p.Last()
	if s.AvgTick != 3*time.Millisecond {
		t.Errorf("Expected average tick 3ms, got %v", s.AvgTick)
	}
	if s.MaxTick != 4*time.Millisecond {
		t.Errorf("Expected max tick 4ms, got %v", s.MaxTick)
	}
	if s.FPS <= 0 || s.FPS > 2.1 {
		t.Errorf("Expected roughly 2 FPS over one second, got %.2f", s.FPS)
	}
	if p.frameCount != 0 || p.tickTotal != 0 || p.tickMax != 0 {
		t.Errorf("Expected counters reset after a report")
	}
}
