package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/gaze"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/Carmen-Shannon/oxy-eyes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/scene"
	"github.com/Carmen-Shannon/oxy-eyes/engine/swarm"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

type fixture struct {
	win  window.Window
	ctrl gaze.Controller
	scn  scene.Scene
	rend renderer.Renderer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	win, err := window.NewWindow(window.WithBackend(window.BackendHeadless), window.WithWidth(64), window.WithHeight(48))
	if err != nil {
		t.Fatalf("Expected no error creating window, got %v", err)
	}
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController(camera.WithRadius(12))))
	sw, err := swarm.Build(model.NewModel(model.WithName("eye"), model.WithBoundingRadius(1)), 9, 4)
	if err != nil {
		t.Fatalf("Expected no error building swarm, got %v", err)
	}
	ctrl, err := gaze.NewController(cam, sw)
	if err != nil {
		t.Fatalf("Expected no error creating controller, got %v", err)
	}
	rend, err := renderer.NewRenderer(renderer.BackendTypeHeadless, win)
	if err != nil {
		t.Fatalf("Expected no error creating renderer, got %v", err)
	}
	scn := scene.NewScene(scene.WithCamera(cam), scene.WithEyes(sw.Eyes()))
	return fixture{win: win, ctrl: ctrl, scn: scn, rend: rend}
}

func (f fixture) engine(options ...EngineBuilderOption) Engine {
	opts := append([]EngineBuilderOption{
		WithWindow(f.win),
		WithController(f.ctrl),
		WithScene(f.scn),
		WithRenderer(f.rend),
	}, options...)
	return NewEngine(opts...)
}

func TestRunHeadlessCompletesEntrance(t *testing.T) {
	f := newFixture(t)
	ticks := 0
	e := f.engine(WithFixedStep(1.0/60), WithFrameLimit(120))
	e.SetTickCallback(func(dt float32) {
		ticks++
		if dt != 1.0/60 {
			t.Errorf("Expected fixed step 1/60, got %v", dt)
		}
	})

	if err := e.Run(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if e.Frames() != 120 || f.rend.Frames() != 120 || ticks != 120 {
		t.Errorf("Expected 120 frames, got engine %d renderer %d ticks %d", e.Frames(), f.rend.Frames(), ticks)
	}
	if !f.ctrl.EntranceComplete() {
		t.Errorf("Expected entrance complete after 2s of ticks")
	}
	if f.win.IsRunning() {
		t.Errorf("Expected window closed at the frame limit")
	}
	for _, eye := range f.ctrl.Eyes() {
		if !closeVec3(eye.Scale(), mgl32.Vec3{1, 1, 1}, 1e-4) {
			t.Errorf("Expected eye %d at full scale, got %v", eye.ID(), eye.Scale())
		}
	}
}

func TestInputRouting(t *testing.T) {
	f := newFixture(t)
	e := f.engine()

	f.win.MoveMouse(64, 0)
	if raw := f.ctrl.Pointer().Raw(); raw != (mgl32.Vec2{1, 1}) {
		t.Errorf("Expected pointer at NDC (1, 1), got %v", raw)
	}

	f.win.PressKey(common.KeyP)
	if !e.ProfilerEnabled() {
		t.Errorf("Expected P to enable the profiler")
	}
	f.win.PressKey(common.KeyP)
	if e.ProfilerEnabled() {
		t.Errorf("Expected second P to disable the profiler")
	}

	f.win.SetSize(96, 48)
	if aspect := f.ctrl.Camera().Aspect(); aspect != 2 {
		t.Errorf("Expected aspect 2 after resize, got %v", aspect)
	}

	f.win.PressKey(common.KeyQ)
	if f.win.IsRunning() {
		t.Errorf("Expected Q to close the window")
	}
}

func TestRunFailsOnPresentError(t *testing.T) {
	f := newFixture(t)
	e := f.engine(WithFixedStep(1.0 / 60))
	f.rend.Close()

	if err := e.Run(); !errors.Is(err, renderer.ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if e.Frames() != 0 {
		t.Errorf("Expected no frames, got %d", e.Frames())
	}
}

func TestRunRequiresParts(t *testing.T) {
	if err := NewEngine().Run(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

// closeVec3 compares by absolute distance; mgl32's relative comparison rejects near-zero noise
// against an exact zero component.
func closeVec3(got, want mgl32.Vec3, tolerance float32) bool {
	return got.Sub(want).Len() <= tolerance
}
