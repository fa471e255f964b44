package gaze

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/entrance"
	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/Carmen-Shannon/oxy-eyes/engine/pointer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/projector"
	"github.com/Carmen-Shannon/oxy-eyes/engine/swarm"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultOffsetDamping is the per-frame fraction of the remaining distance each eye's offset
	// covers toward its desired offset during live tracking.
	DefaultOffsetDamping float32 = 0.45

	// DefaultOffsetFactor is the length k of every desired offset.
	DefaultOffsetFactor float32 = 0.8
)

// Controller drives the swarm once per frame: it smooths the pointer, projects it to a target
// point, plays the entrance and then keeps every eye looking at the target with a parallax offset
// pushed away from it.
type Controller interface {
	// Tick advances one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	Tick(deltaTime float32)

	// PointerMove records the latest pointer position. The last value before a tick wins.
	//
	// Parameters:
	//   - ndc: the pointer in normalized device coordinates
	PointerMove(ndc mgl32.Vec2)

	// Resize updates the camera aspect for a new viewport size. Zero sizes are ignored.
	//
	// Parameters:
	//   - width, height: the viewport size in pixels
	Resize(width, height int)

	// Target returns the current target point, the last successful projection.
	//
	// Returns:
	//   - mgl32.Vec3: the target
	Target() mgl32.Vec3

	// Eyes returns the swarm's eyes.
	Eyes() []eye.Eye

	// Swarm returns the tracked swarm.
	Swarm() swarm.Swarm

	// Camera returns the camera rays are cast from.
	Camera() camera.Camera

	// Pointer returns the pointer state.
	Pointer() pointer.State

	// Projector returns the target projector.
	Projector() projector.Projector

	// EntranceComplete reports whether live tracking has taken over.
	EntranceComplete() bool

	// SetTunables replaces the pointer smoothing and offset damping factors. Values outside
	// (0, 1] leave the corresponding factor unchanged.
	//
	// Parameters:
	//   - pointerSmoothing: per-frame pointer smoothing factor
	//   - offsetDamping: per-frame offset damping factor
	SetTunables(pointerSmoothing, offsetDamping float32)

	// OffsetDamping returns the per-frame offset damping factor.
	OffsetDamping() float32
}

type controllerImpl struct {
	mu *sync.Mutex

	camera        camera.Camera
	swarm         swarm.Swarm
	pointer       pointer.State
	projector     projector.Projector
	choreographer entrance.Choreographer

	target mgl32.Vec3

	offsetDamping float32
	offsetFactor  float32
	referenceRate float32

	entranceDone bool
	skipEntrance bool
}

var _ Controller = &controllerImpl{}

// NewController wires a pointer, projector and entrance around the swarm and starts the
// entrance. Components not supplied through options are created with their defaults; the
// entrance aims at the projector's plane point.
//
// Parameters:
//   - cam: the camera rays are cast from
//   - s: the swarm to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
//   - error: error if the entrance could not be started
func NewController(cam camera.Camera, s swarm.Swarm, options ...ControllerBuilderOption) (Controller, error) {
	c := &controllerImpl{
		mu:            &sync.Mutex{},
		camera:        cam,
		swarm:         s,
		offsetDamping: DefaultOffsetDamping,
		offsetFactor:  DefaultOffsetFactor,
		referenceRate: pointer.DefaultReferenceRate,
	}
	for _, option := range options {
		option(c)
	}

	if c.pointer == nil {
		c.pointer = pointer.NewState(pointer.WithReferenceRate(c.referenceRate))
	}
	if c.projector == nil {
		c.projector = projector.NewProjector(cam)
	}
	c.target = c.projector.PlanePoint()

	if c.skipEntrance {
		c.entranceDone = true
		for _, e := range s.Eyes() {
			e.SetScale(mgl32.Vec3{1, 1, 1})
			e.LookAt(c.target)
			e.UpdateTransform()
		}
		return c, nil
	}

	if c.choreographer == nil {
		c.choreographer = entrance.NewChoreographer(
			entrance.WithTarget(c.target),
			entrance.WithOffsetFactor(c.offsetFactor),
		)
	}
	if err := c.choreographer.Start(s.Eyes(), s.Positions()); err != nil {
		return nil, fmt.Errorf("failed to start entrance: %w", err)
	}
	return c, nil
}

func (c *controllerImpl) Tick(deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pointer.Advance(deltaTime)
	if hit, ok := c.projector.Project(c.pointer.Smoothed()); ok {
		c.target = hit
	}

	// live tracking starts on the tick after the entrance completes
	if !c.entranceDone {
		c.entranceDone = c.choreographer.Tick(deltaTime)
		return
	}

	alpha := common.FrameFactor(c.offsetDamping, deltaTime, c.referenceRate)
	for _, e := range c.swarm.Eyes() {
		e.LookAt(c.target)
		desired := common.SafeNormalize(e.BasePosition().Sub(c.target)).Mul(c.offsetFactor)
		e.SetOffset(common.LerpVec3(e.Offset(), desired, alpha))
		e.UpdateTransform()
	}
}

func (c *controllerImpl) PointerMove(ndc mgl32.Vec2) {
	c.pointer.Update(ndc)
}

func (c *controllerImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.camera.SetAspect(float32(width) / float32(height))
}

func (c *controllerImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *controllerImpl) Eyes() []eye.Eye {
	return c.swarm.Eyes()
}

func (c *controllerImpl) Swarm() swarm.Swarm {
	return c.swarm
}

func (c *controllerImpl) Camera() camera.Camera {
	return c.camera
}

func (c *controllerImpl) Pointer() pointer.State {
	return c.pointer
}

func (c *controllerImpl) Projector() projector.Projector {
	return c.projector
}

func (c *controllerImpl) EntranceComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entranceDone
}

func (c *controllerImpl) SetTunables(pointerSmoothing, offsetDamping float32) {
	c.pointer.SetSmoothing(pointerSmoothing)
	if offsetDamping <= 0 || offsetDamping > 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offsetDamping = offsetDamping
}

func (c *controllerImpl) OffsetDamping() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offsetDamping
}
