package eye

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func TestNewEyeDefaults(t *testing.T) {
	e := NewEye(WithBasePosition(mgl32.Vec3{1, 2, 0}))

	if e.Position() != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("Expected render position at base, got %v", e.Position())
	}
	if !closeVec3(e.Forward(), mgl32.Vec3{0, 0, 1}, epsilon) {
		t.Errorf("Expected forward +Z, got %v", e.Forward())
	}
	if !e.Enabled() {
		t.Errorf("Expected eye to be enabled")
	}
}

func TestLookAtTurnsForward(t *testing.T) {
	tests := []struct {
		name   string
		base   mgl32.Vec3
		target mgl32.Vec3
	}{
		{"Straight ahead", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 5}},
		{"Up and right", mgl32.Vec3{2, 2, 0}, mgl32.Vec3{0, 0, 1.8}},
		{"Behind", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, -4}},
		{"Straight up", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 3, 0}},
		{"Straight down", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEye(WithBasePosition(tt.base))
			e.LookAt(tt.target)
			want := tt.target.Sub(tt.base).Normalize()
			if !closeVec3(e.Forward(), want, epsilon) {
				t.Errorf("Expected forward %v, got %v", want, e.Forward())
			}
			if e.LookTarget() != tt.target {
				t.Errorf("Expected look target %v, got %v", tt.target, e.LookTarget())
			}
		})
	}
}

func TestLookAtDegenerateKeepsOrientation(t *testing.T) {
	e := NewEye(WithBasePosition(mgl32.Vec3{1, 1, 1}))
	e.LookAt(mgl32.Vec3{4, 1, 1})
	before := e.Forward()

	e.LookAt(mgl32.Vec3{1, 1, 1})
	if !closeVec3(e.Forward(), before, epsilon) {
		t.Errorf("Expected orientation kept, got %v", e.Forward())
	}
}

func TestUpdateTransformAddsOffset(t *testing.T) {
	e := NewEye(WithBasePosition(mgl32.Vec3{2, -2, 0}))
	e.SetOffset(mgl32.Vec3{0.5, 0.5, -0.25})

	if e.Position() != (mgl32.Vec3{2, -2, 0}) {
		t.Errorf("Expected position unchanged before UpdateTransform, got %v", e.Position())
	}
	e.UpdateTransform()
	want := mgl32.Vec3{2.5, -1.5, -0.25}
	if e.Position() != want {
		t.Errorf("Expected %v, got %v", want, e.Position())
	}
	if e.BasePosition() != (mgl32.Vec3{2, -2, 0}) {
		t.Errorf("Expected base position untouched, got %v", e.BasePosition())
	}
}

func TestModelMatrixFoldsModelScale(t *testing.T) {
	m := model.NewModel(model.WithScale(0.5))
	e := NewEye(WithModel(m), WithScale(mgl32.Vec3{2, 2, 2}), WithBasePosition(mgl32.Vec3{1, 0, 0}))
	e.UpdateTransform()

	p := e.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	want := mgl32.Vec4{1, 0, 1, 1}
	if !closeVec4(p, want, epsilon) {
		t.Errorf("Expected %v, got %v", want, p)
	}
}

func TestZeroScaleCollapses(t *testing.T) {
	e := NewEye(WithScale(mgl32.Vec3{}))
	e.UpdateTransform()
	p := e.ModelMatrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	if !closeVec4(p, mgl32.Vec4{0, 0, 0, 1}, epsilon) {
		t.Errorf("Expected collapsed point at origin, got %v", p)
	}
}

// closeVec3 compares by absolute distance; mgl32's relative comparison rejects near-zero noise
// against an exact zero component.
func closeVec3(got, want mgl32.Vec3, tolerance float32) bool {
	return got.Sub(want).Len() <= tolerance
}

func closeVec4(got, want mgl32.Vec4, tolerance float32) bool {
	return got.Sub(want).Len() <= tolerance
}
