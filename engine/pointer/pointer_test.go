package pointer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAdvanceConvergesWithoutOvershoot(t *testing.T) {
	s := NewState()
	s.Update(mgl32.Vec2{1, -0.5})

	prev := s.Smoothed()
	for i := 0; i < 120; i++ {
		s.Advance(1.0 / 60.0)
		cur := s.Smoothed()
		if cur.X() > 1 || cur.Y() < -0.5 {
			t.Fatalf("Expected no overshoot at frame %d, got %v", i, cur)
		}
		if cur.X() < prev.X() || cur.Y() > prev.Y() {
			t.Fatalf("Expected monotonic approach at frame %d, got %v after %v", i, cur, prev)
		}
		prev = cur
	}

	final := s.Smoothed()
	if math.Abs(float64(final.X()-1)) > 1e-3 || math.Abs(float64(final.Y()+0.5)) > 1e-3 {
		t.Errorf("Expected smoothed to converge on (1, -0.5), got %v", final)
	}
}

func TestAdvanceFirstStepMatchesFactor(t *testing.T) {
	s := NewState(WithReferenceRate(0))
	s.Update(mgl32.Vec2{1, 0})
	s.Advance(0.5)

	if got := s.Smoothed().X(); math.Abs(float64(got-DefaultSmoothing)) > 1e-6 {
		t.Errorf("Expected %v after one step, got %v", DefaultSmoothing, got)
	}
}

func TestUpdateDoesNotMoveSmoothed(t *testing.T) {
	s := NewState()
	s.Update(mgl32.Vec2{0.8, 0.8})
	if s.Smoothed() != (mgl32.Vec2{}) {
		t.Errorf("Expected smoothed to stay put until Advance, got %v", s.Smoothed())
	}
	if s.Raw() != (mgl32.Vec2{0.8, 0.8}) {
		t.Errorf("Expected raw (0.8, 0.8), got %v", s.Raw())
	}
}

func TestSetSmoothingRejectsOutOfRange(t *testing.T) {
	s := NewState()
	s.SetSmoothing(0)
	s.SetSmoothing(1.5)
	if s.Smoothing() != DefaultSmoothing {
		t.Errorf("Expected %v, got %v", DefaultSmoothing, s.Smoothing())
	}
	s.SetSmoothing(0.3)
	if s.Smoothing() != 0.3 {
		t.Errorf("Expected 0.3, got %v", s.Smoothing())
	}
}

func TestFromWindow(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   mgl32.Vec2
	}{
		{"Center", 400, 300, mgl32.Vec2{0, 0}},
		{"Top left", 0, 0, mgl32.Vec2{-1, 1}},
		{"Bottom right", 800, 600, mgl32.Vec2{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromWindow(tt.px, tt.py, 800, 600)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := FromWindow(10, 10, 0, 0); got != (mgl32.Vec2{}) {
		t.Errorf("Expected center for empty viewport, got %v", got)
	}
}
