package swarm

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

func testModel() model.Model {
	return model.NewModel(
		model.WithName("eye"),
		model.WithGeometry([]model.Vertex{
			{Position: [3]float32{0, 0, 1}},
			{Position: [3]float32{1, 0, 0}},
			{Position: [3]float32{0, 1, 0}},
		}, []uint32{0, 1, 2}),
		model.WithScale(0.5),
	)
}

func TestBuildSymmetricLayouts(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		gap      float32
		wantSide int
	}{
		{"Two eyes", 2, 5, 2},
		{"Five eyes", 5, 5, 3},
		{"Six eyes", 6, 5, 3},
		{"Seven eyes", 7, 5, 3},
		{"Eight eyes", 8, 5, 3},
		{"Nine eyes", 9, 5, 3},
		{"Twenty-five eyes", 25, 5, 5},
		{"Ten eyes", 10, 6, 4},
		{"Twelve eyes", 12, 8, 4},
		{"Fourteen eyes", 14, 6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(testModel(), tt.count, tt.gap)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if s.Count() != tt.count {
				t.Errorf("Expected %d eyes, got %d", tt.count, s.Count())
			}
			if s.Side() != tt.wantSide {
				t.Errorf("Expected side %d, got %d", tt.wantSide, s.Side())
			}

			var sum mgl32.Vec3
			for _, p := range s.Positions() {
				sum = sum.Add(p)
				if p.Z() != 0 {
					t.Errorf("Expected z = 0, got %v", p)
				}
			}
			if sum.Len() > 1e-4 {
				t.Errorf("Expected positions centered on origin, got sum %v", sum)
			}
		})
	}
}

func TestBuildTwoEyesTakeOppositeCorners(t *testing.T) {
	s, err := Build(testModel(), 2, 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []mgl32.Vec3{{-2, 2, 0}, {2, -2, 0}}
	for i, p := range s.Positions() {
		if !closeVec3(p, want[i], 1e-5) {
			t.Errorf("Expected position %d to be %v, got %v", i, want[i], p)
		}
	}
}

func TestBuildEvenCountOnOddSideSkipsCenter(t *testing.T) {
	s, err := Build(testModel(), 6, 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, p := range s.Positions() {
		if p.Len() < 1e-6 {
			t.Errorf("Expected no eye at the origin for an even count, got %v", s.Positions())
		}
	}
}

// An odd count on an even side cannot be balanced: all but one eye pair up through the center
// and the last takes the nearest free cell.
func TestBuildOddCountOnEvenSide(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantSide int
	}{
		{"Three eyes", 3, 2},
		{"Eleven eyes", 11, 4},
		{"Fifteen eyes", 15, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(testModel(), tt.count, 6)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if s.Count() != tt.count || s.Side() != tt.wantSide {
				t.Fatalf("Expected %d eyes on side %d, got %d on side %d", tt.count, tt.wantSide, s.Count(), s.Side())
			}

			positions := s.Positions()
			unpaired := 0
			for i, p := range positions {
				paired := false
				for j, q := range positions {
					if i != j && p.Add(q).Len() < 1e-4 {
						paired = true
						break
					}
				}
				if !paired {
					unpaired++
				}
			}
			if unpaired != 1 {
				t.Errorf("Expected exactly one unpaired eye, got %d in %v", unpaired, positions)
			}
		})
	}
}

func TestBuildThreeEyesPositions(t *testing.T) {
	s, err := Build(testModel(), 3, 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []mgl32.Vec3{{-2, 2, 0}, {2, 2, 0}, {2, -2, 0}}
	for i, p := range s.Positions() {
		if !closeVec3(p, want[i], 1e-5) {
			t.Errorf("Expected position %d to be %v, got %v", i, want[i], p)
		}
	}
}

func TestBuildOddCountsHaveOneOriginEye(t *testing.T) {
	for _, count := range []int{5, 9, 25} {
		s, err := Build(testModel(), count, 5)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		origin := 0
		for _, p := range s.Positions() {
			if p.Len() < 1e-6 {
				origin++
			}
		}
		if origin != 1 {
			t.Errorf("Expected exactly one eye at origin for %d eyes, got %d", count, origin)
		}
	}
}

func TestBuildFivePlusShape(t *testing.T) {
	s, err := Build(testModel(), 5, 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []mgl32.Vec3{
		{0, 2, 0},
		{-2, 0, 0},
		{0, 0, 0},
		{2, 0, 0},
		{0, -2, 0},
	}
	got := s.Positions()
	for i := range want {
		if !closeVec3(got[i], want[i], 1e-5) {
			t.Errorf("Expected position %d to be %v, got %v", i, want[i], got[i])
		}
	}
}

func TestBuildSpacing(t *testing.T) {
	s, err := Build(testModel(), 25, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Spacing() != 1.25 {
		t.Errorf("Expected spacing 1.25, got %v", s.Spacing())
	}
	first := s.Positions()[0]
	if !closeVec3(first, mgl32.Vec3{-2.5, 2.5, 0}, 1e-5) {
		t.Errorf("Expected top-left eye at (-2.5, 2.5, 0), got %v", first)
	}
	row, col := s.Eyes()[0].Cell()
	if row != 0 || col != 0 {
		t.Errorf("Expected top-left cell (0, 0), got (%d, %d)", row, col)
	}
}

func TestBuildEyeInitialState(t *testing.T) {
	tmpl := testModel()
	s, err := Build(tmpl, 9, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	seen := map[any]bool{}
	for i, e := range s.Eyes() {
		if e.Scale() != (mgl32.Vec3{}) {
			t.Errorf("Expected eye %d collapsed, got scale %v", i, e.Scale())
		}
		if e.Offset() != (mgl32.Vec3{}) {
			t.Errorf("Expected eye %d zero offset, got %v", i, e.Offset())
		}
		if !closeVec3(e.Forward(), mgl32.Vec3{0, 0, 1}, 1e-5) {
			t.Errorf("Expected eye %d to look down +Z, got %v", i, e.Forward())
		}
		if e.Model() == tmpl {
			t.Errorf("Expected eye %d to own a clone, got the template", i)
		}
		if seen[e.Model()] {
			t.Errorf("Expected eye %d model to be unique", i)
		}
		seen[e.Model()] = true
		if e.ID() != uint64(i) {
			t.Errorf("Expected ID %d, got %d", i, e.ID())
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		model   model.Model
		count   int
		wantErr error
	}{
		{"Missing asset", nil, 25, ErrMissingAsset},
		{"Single eye", testModel(), 1, ErrInvalidCount},
		{"Zero eyes", testModel(), 0, ErrInvalidCount},
		{"Negative eyes", testModel(), -3, ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(tt.model, tt.count, 5)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if s != nil {
				t.Errorf("Expected nil swarm, got %v", s)
			}
		})
	}
}

// closeVec3 compares by absolute distance; mgl32's relative comparison rejects near-zero noise
// against an exact zero component.
func closeVec3(got, want mgl32.Vec3, tolerance float32) bool {
	return got.Sub(want).Len() <= tolerance
}
