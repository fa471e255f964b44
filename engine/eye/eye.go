package eye

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// degenerateLength is the shortest look direction that still defines an orientation.
const degenerateLength = 1e-6

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	altUp      = mgl32.Vec3{0, 0, 1}
	restTarget = mgl32.Vec3{0, 0, 1}
)

type eyeImpl struct {
	id      uint64
	enabled atomic.Bool
	mdl     model.Model

	row, col int

	basePosition mgl32.Vec3
	offset       mgl32.Vec3
	scale        mgl32.Vec3
	lookTarget   mgl32.Vec3
	orientation  mgl32.Quat

	// derived by UpdateTransform
	position    mgl32.Vec3
	modelMatrix mgl32.Mat4
}

// Eye is a single member of the swarm. It sits at an immutable base position, is displaced by a
// dynamic offset, turns its +Z axis toward a look target and owns its own model clone.
//
// Setters only record state; UpdateTransform folds the state into the render position and model
// matrix once per tick.
type Eye interface {
	// ID returns the eye's identifier, its index in the swarm.
	ID() uint64

	// Enabled returns whether this eye is drawn.
	Enabled() bool

	// SetEnabled sets whether this eye is drawn.
	SetEnabled(enabled bool)

	// Model returns the model clone owned by this eye.
	//
	// Returns:
	//   - model.Model: the owned model, or nil
	Model() model.Model

	// Cell returns the eye's grid cell in the swarm layout, row 0 at the top.
	//
	// Returns:
	//   - row, col: the grid cell
	Cell() (row, col int)

	// BasePosition returns the resting position assigned at construction.
	//
	// Returns:
	//   - mgl32.Vec3: the base position
	BasePosition() mgl32.Vec3

	// Offset returns the dynamic displacement added to the base position.
	Offset() mgl32.Vec3

	// SetOffset sets the dynamic displacement added to the base position.
	//
	// Parameters:
	//   - offset: the displacement
	SetOffset(offset mgl32.Vec3)

	// Scale returns the per-axis scale.
	Scale() mgl32.Vec3

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - scale: the scale, (0, 0, 0) collapses the eye
	SetScale(scale mgl32.Vec3)

	// LookAt turns the eye so its +Z axis points from its base position toward target.
	// When target coincides with the base position the previous orientation is kept.
	//
	// Parameters:
	//   - target: the world-space point to look at
	LookAt(target mgl32.Vec3)

	// LookTarget returns the point most recently passed to LookAt.
	LookTarget() mgl32.Vec3

	// Orientation returns the rotation taking local +Z onto the look direction.
	//
	// Returns:
	//   - mgl32.Quat: the orientation
	Orientation() mgl32.Quat

	// Forward returns the unit look direction in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the look direction
	Forward() mgl32.Vec3

	// UpdateTransform recomputes the render position (base + offset) and the model matrix.
	UpdateTransform()

	// Position returns the render position computed by the last UpdateTransform.
	//
	// Returns:
	//   - mgl32.Vec3: base + offset as of the last update
	Position() mgl32.Vec3

	// ModelMatrix returns translation * rotation * scale as of the last UpdateTransform. The
	// model's own presentation scale is folded in.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4
}

var _ Eye = &eyeImpl{}

// NewEye creates an Eye looking down +Z with unit scale at the origin.
//
// Parameters:
//   - options: functional options to configure the eye
//
// Returns:
//   - Eye: the newly created eye
func NewEye(options ...EyeBuilderOption) Eye {
	e := &eyeImpl{
		scale:       mgl32.Vec3{1, 1, 1},
		orientation: mgl32.QuatIdent(),
	}
	e.enabled.Store(true)
	for _, option := range options {
		option(e)
	}
	e.lookTarget = e.basePosition.Add(restTarget)
	e.UpdateTransform()
	return e
}

func (e *eyeImpl) ID() uint64 {
	return e.id
}

func (e *eyeImpl) Enabled() bool {
	return e.enabled.Load()
}

func (e *eyeImpl) SetEnabled(enabled bool) {
	e.enabled.Store(enabled)
}

func (e *eyeImpl) Model() model.Model {
	return e.mdl
}

func (e *eyeImpl) Cell() (row, col int) {
	return e.row, e.col
}

func (e *eyeImpl) BasePosition() mgl32.Vec3 {
	return e.basePosition
}

func (e *eyeImpl) Offset() mgl32.Vec3 {
	return e.offset
}

func (e *eyeImpl) SetOffset(offset mgl32.Vec3) {
	e.offset = offset
}

func (e *eyeImpl) Scale() mgl32.Vec3 {
	return e.scale
}

func (e *eyeImpl) SetScale(scale mgl32.Vec3) {
	e.scale = scale
}

func (e *eyeImpl) LookAt(target mgl32.Vec3) {
	e.lookTarget = target
	if q, ok := lookRotation(target.Sub(e.basePosition)); ok {
		e.orientation = q
	}
}

func (e *eyeImpl) LookTarget() mgl32.Vec3 {
	return e.lookTarget
}

func (e *eyeImpl) Orientation() mgl32.Quat {
	return e.orientation
}

func (e *eyeImpl) Forward() mgl32.Vec3 {
	return e.orientation.Rotate(mgl32.Vec3{0, 0, 1})
}

func (e *eyeImpl) UpdateTransform() {
	e.position = e.basePosition.Add(e.offset)

	s := e.scale
	if e.mdl != nil {
		s = s.Mul(e.mdl.Scale())
	}
	e.modelMatrix = mgl32.Translate3D(e.position.X(), e.position.Y(), e.position.Z()).
		Mul4(e.orientation.Mat4()).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

func (e *eyeImpl) Position() mgl32.Vec3 {
	return e.position
}

func (e *eyeImpl) ModelMatrix() mgl32.Mat4 {
	return e.modelMatrix
}

// lookRotation builds the rotation whose +Z axis is dir and whose +Y axis leans toward world up.
// ok is false for a direction too short to define an orientation.
func lookRotation(dir mgl32.Vec3) (mgl32.Quat, bool) {
	if dir.Len() < degenerateLength {
		return mgl32.Quat{}, false
	}
	z := dir.Normalize()

	up := worldUp
	if abs(z.Dot(up)) > 0.9999 {
		up = altUp
	}
	x := common.SafeNormalize(up.Cross(z))
	y := z.Cross(x)

	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(x, y, z).Mat4()).Normalize(), true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
