package entrance

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultDelay is the pause before any eye moves, in seconds.
	DefaultDelay float32 = 0.15

	// DefaultDuration is the length of each eye's tween, in seconds.
	DefaultDuration float32 = 0.8

	// DefaultStagger is the total spread of the per-eye scale delays, in seconds.
	DefaultStagger float32 = 0.35

	// DefaultOffsetFactor is the resting offset length k; eyes start at 2k.
	DefaultOffsetFactor float32 = 0.8
)

var (
	// ErrAlreadyStarted is returned when Start is called a second time.
	ErrAlreadyStarted = errors.New("entrance: already started")

	// ErrNoEyes is returned when Start is given nothing to animate.
	ErrNoEyes = errors.New("entrance: no eyes to animate")

	// ErrPositionMismatch is returned when eyes and positions differ in length.
	ErrPositionMismatch = errors.New("entrance: eyes and positions differ in length")
)

// Choreographer plays the one-shot entrance: every eye springs from twice its resting offset to
// its resting offset while its scale grows from zero, the scale staggered outward from the grid
// center. All eyes share one timeline, so each eye's state is a pure function of elapsed time.
type Choreographer interface {
	// Start captures the eyes, collapses them and begins the timeline.
	//
	// Parameters:
	//   - eyes: the eyes to animate
	//   - positions: the base position of each eye, used for directions and stagger
	//
	// Returns:
	//   - error: ErrAlreadyStarted on a second call, ErrNoEyes or ErrPositionMismatch on bad input
	Start(eyes []eye.Eye, positions []mgl32.Vec3) error

	// Tick advances the timeline and applies the resulting state to every eye.
	// Does nothing before Start or after completion.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick; negative values are treated as zero
	//
	// Returns:
	//   - bool: true once the entrance is complete
	Tick(deltaTime float32) bool

	// Evaluate returns eye i's offset and uniform scale at the given elapsed time without
	// touching any state.
	//
	// Parameters:
	//   - i: the eye index passed to Start
	//   - elapsed: seconds since Start
	//
	// Returns:
	//   - mgl32.Vec3: the offset
	//   - float32: the uniform scale
	Evaluate(i int, elapsed float32) (mgl32.Vec3, float32)

	// Progress returns elapsed time over total time, in [0, 1].
	Progress() float32

	// Complete reports whether the entrance has finished.
	Complete() bool

	// Started reports whether Start has succeeded.
	Started() bool

	// Total returns the full length of the timeline including delay and stagger.
	//
	// Returns:
	//   - float32: seconds
	Total() float32

	// StaggerDelay returns eye i's scale delay relative to the shared delay.
	//
	// Parameters:
	//   - i: the eye index passed to Start
	//
	// Returns:
	//   - float32: seconds
	StaggerDelay(i int) float32
}

type choreographerImpl struct {
	mu *sync.Mutex

	delay        float32
	duration     float32
	stagger      float32
	offsetFactor float32
	target       mgl32.Vec3
	ease         Ease
	onComplete   func()

	eyes       []eye.Eye
	directions []mgl32.Vec3
	delays     []float32

	elapsed  float32
	started  bool
	complete bool
}

var _ Choreographer = &choreographerImpl{}

// NewChoreographer creates a Choreographer with a 0.15 s delay, 0.8 s elastic tweens and a
// 0.35 s center-out stagger, aiming eyes at (0, 0, 1.8).
//
// Parameters:
//   - options: functional options to configure the choreographer
//
// Returns:
//   - Choreographer: the newly created choreographer
func NewChoreographer(options ...ChoreographerBuilderOption) Choreographer {
	c := &choreographerImpl{
		mu:           &sync.Mutex{},
		delay:        DefaultDelay,
		duration:     DefaultDuration,
		stagger:      DefaultStagger,
		offsetFactor: DefaultOffsetFactor,
		target:       mgl32.Vec3{0, 0, 1.8},
		ease:         ElasticOut(1, 1),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *choreographerImpl) Start(eyes []eye.Eye, positions []mgl32.Vec3) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}
	if len(eyes) == 0 {
		return ErrNoEyes
	}
	if len(eyes) != len(positions) {
		return fmt.Errorf("%w: %d eyes, %d positions", ErrPositionMismatch, len(eyes), len(positions))
	}

	c.eyes = eyes
	c.directions = make([]mgl32.Vec3, len(eyes))
	for i, p := range positions {
		c.directions[i] = common.SafeNormalize(p.Sub(c.target))
	}
	c.delays = staggerDelays(positions, c.stagger)

	c.started = true
	c.elapsed = 0
	c.apply()
	return nil
}

func (c *choreographerImpl) Tick(deltaTime float32) bool {
	c.mu.Lock()
	if !c.started || c.complete {
		done := c.complete
		c.mu.Unlock()
		return done
	}

	if deltaTime > 0 {
		c.elapsed += deltaTime
	}
	total := c.total()
	if c.elapsed >= total {
		c.elapsed = total
		c.complete = true
	}
	c.apply()

	done := c.complete
	onComplete := c.onComplete
	count := len(c.eyes)
	c.mu.Unlock()

	if done {
		log.Printf("[Entrance] complete: %d eyes in %.2fs", count, total)
		if onComplete != nil {
			onComplete()
		}
	}
	return done
}

func (c *choreographerImpl) Evaluate(i int, elapsed float32) (mgl32.Vec3, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.eyes) {
		return mgl32.Vec3{}, 0
	}
	return c.evaluate(i, elapsed)
}

func (c *choreographerImpl) Progress() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.complete {
		return 1
	}
	total := c.total()
	if total <= 0 {
		return 0
	}
	return common.Clamp01(c.elapsed / total)
}

func (c *choreographerImpl) Complete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.complete
}

func (c *choreographerImpl) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

func (c *choreographerImpl) Total() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

func (c *choreographerImpl) StaggerDelay(i int) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.delays) {
		return 0
	}
	return c.delays[i]
}

// total is the time at which the last eye settles. Caller must hold the mutex.
func (c *choreographerImpl) total() float32 {
	return c.delay + c.duration + c.stagger
}

// evaluate computes eye i's offset and scale at elapsed. Caller must hold the mutex.
func (c *choreographerImpl) evaluate(i int, elapsed float32) (mgl32.Vec3, float32) {
	k := c.offsetFactor
	offsetT := c.fraction(elapsed - c.delay)
	scaleT := c.fraction(elapsed - c.delay - c.delays[i])

	// offset length goes 2k -> k
	length := 2*k + (k-2*k)*c.ease(offsetT)
	return c.directions[i].Mul(length), c.ease(scaleT)
}

// fraction converts time into a tween's linear progress. Caller must hold the mutex.
func (c *choreographerImpl) fraction(t float32) float32 {
	if c.duration <= 0 {
		if t >= 0 {
			return 1
		}
		return 0
	}
	return common.Clamp01(t / c.duration)
}

// apply writes the current timeline state to every eye. Caller must hold the mutex.
func (c *choreographerImpl) apply() {
	for i, e := range c.eyes {
		offset, s := c.evaluate(i, c.elapsed)
		e.SetOffset(offset)
		e.SetScale(mgl32.Vec3{s, s, s})
		e.LookAt(c.target)
		e.UpdateTransform()
	}
}

// staggerDelays spreads amount seconds across the eyes by their distance from the center of the
// positions' bounding box. The center eye gets zero and the farthest eyes get the full amount.
func staggerDelays(positions []mgl32.Vec3, amount float32) []float32 {
	delays := make([]float32, len(positions))
	if len(positions) == 0 {
		return delays
	}

	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], p[a])
			hi[a] = max(hi[a], p[a])
		}
	}
	center := lo.Add(hi).Mul(0.5)

	var maxDist float32
	dists := make([]float32, len(positions))
	for i, p := range positions {
		dists[i] = p.Sub(center).Len()
		maxDist = max(maxDist, dists[i])
	}
	if maxDist == 0 {
		return delays
	}
	for i, d := range dists {
		delays[i] = amount * d / maxDist
	}
	return delays
}
