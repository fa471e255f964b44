package swarm

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidCount is returned by Build when fewer than two eyes are requested.
	ErrInvalidCount = errors.New("swarm: eye count must be at least 2")

	// ErrMissingAsset is returned by Build when no model template is supplied.
	ErrMissingAsset = errors.New("swarm: model asset is missing")
)

// Swarm is the ordered set of eyes laid out on a square grid centered at the origin.
// The swarm owns every eye, and every eye owns its own clone of the model template.
type Swarm interface {
	// Eyes returns the eyes in layout order (row-major, top row first).
	//
	// Returns:
	//   - []eye.Eye: the eyes
	Eyes() []eye.Eye

	// Positions returns the base position of every eye, in the same order as Eyes.
	//
	// Returns:
	//   - []mgl32.Vec3: the base positions
	Positions() []mgl32.Vec3

	// Count returns the number of eyes.
	Count() int

	// Side returns the number of grid cells per axis.
	Side() int

	// Gap returns the distance between the outermost rows and columns.
	Gap() float32

	// Spacing returns the distance between neighboring cells.
	Spacing() float32

	// Template returns the model every eye was cloned from.
	//
	// Returns:
	//   - model.Model: the template
	Template() model.Model
}

type swarmImpl struct {
	eyes      []eye.Eye
	positions []mgl32.Vec3
	side      int
	gap       float32
	spacing   float32
	template  model.Model
}

var _ Swarm = &swarmImpl{}

// cell is one grid slot considered during layout.
type cell struct {
	row, col int
	index    int
	dist     float64
}

// Build lays count eyes out on a ceil(sqrt(count)) square grid spanning gap in both axes.
// When count is not a perfect square the cells closest to the grid center are used in mirrored
// pairs, so the layout stays centered on the origin unless an odd count lands on an even side. Every eye starts with zero offset, looks down +Z and is
// collapsed to scale zero.
//
// Parameters:
//   - template: the model cloned into every eye
//   - count: the number of eyes, at least 2
//   - gap: the extent of the grid along each axis
//
// Returns:
//   - Swarm: the laid out swarm
//   - error: ErrMissingAsset or ErrInvalidCount
func Build(template model.Model, count int, gap float32) (Swarm, error) {
	if template == nil {
		return nil, ErrMissingAsset
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	cells := layout(count)
	side := Side(count)
	spacing := gap / float32(side-1)
	half := float32(side-1) / 2

	s := &swarmImpl{
		eyes:      make([]eye.Eye, 0, count),
		positions: make([]mgl32.Vec3, 0, count),
		side:      side,
		gap:       gap,
		spacing:   spacing,
		template:  template,
	}
	for i, c := range cells {
		pos := mgl32.Vec3{
			(float32(c.col) - half) * spacing,
			(half - float32(c.row)) * spacing,
			0,
		}
		s.positions = append(s.positions, pos)
		s.eyes = append(s.eyes, eye.NewEye(
			eye.WithID(uint64(i)),
			eye.WithModel(template.Clone()),
			eye.WithBasePosition(pos),
			eye.WithCell(c.row, c.col),
			eye.WithScale(mgl32.Vec3{}),
		))
	}
	return s, nil
}

// Side returns the number of grid cells per axis needed to hold count eyes.
func Side(count int) int {
	if count <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(count))))
}

// layout picks count grid cells nearest the grid center in pairs mirrored through the center,
// so the chosen cells sum to the origin. An odd side has one self-mirrored center cell, used only
// when count is odd. An odd count on an even side cannot balance; the unpaired eye takes the
// nearest remaining cell, first in row-major order. Cells are returned in row-major order.
func layout(count int) []cell {
	side := Side(count)
	center := float64(side-1) / 2

	cells := make([]cell, 0, side*side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			dr, dc := float64(row)-center, float64(col)-center
			cells = append(cells, cell{row: row, col: col, index: row*side + col, dist: dr*dr + dc*dc})
		}
	}
	byIndex := slices.Clone(cells)

	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].dist < cells[j].dist
	})

	picked := make([]cell, 0, count)
	used := make([]bool, len(cells))
	var leftover []cell
	for _, c := range cells {
		if used[c.index] {
			continue
		}
		mirror := byIndex[(side-1-c.row)*side+(side-1-c.col)]
		used[c.index], used[mirror.index] = true, true

		if mirror.index == c.index {
			if count%2 == 1 {
				picked = append(picked, c)
			}
			continue
		}
		if count-len(picked) >= 2 {
			picked = append(picked, c, mirror)
		} else if count-len(picked) == 1 && leftover == nil {
			leftover = []cell{c}
		}
	}
	if len(picked) < count {
		picked = append(picked, leftover...)
	}

	sort.Slice(picked, func(i, j int) bool {
		return picked[i].index < picked[j].index
	})
	return picked
}

func (s *swarmImpl) Eyes() []eye.Eye {
	return s.eyes
}

func (s *swarmImpl) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(s.positions))
	copy(out, s.positions)
	return out
}

func (s *swarmImpl) Count() int {
	return len(s.eyes)
}

func (s *swarmImpl) Side() int {
	return s.side
}

func (s *swarmImpl) Gap() float32 {
	return s.gap
}

func (s *swarmImpl) Spacing() float32 {
	return s.spacing
}

func (s *swarmImpl) Template() model.Model {
	return s.template
}
