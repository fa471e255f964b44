package renderer

import (
	"math"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// halfBlock draws the top pixel of a cell in the foreground color and the bottom pixel in the
// background color, giving two square-ish pixels per terminal cell.
const halfBlock = '▀'

// surfaceSample is one direction on a mesh's bounding sphere and the vertex color found there.
type surfaceSample struct {
	dir   mgl32.Vec3
	color common.Color
}

// terminalRendererBackend ray-casts each eye as a shaded sphere into a pixel buffer and writes
// it to a tcell screen. Eyes are painted far to near.
type terminalRendererBackend struct {
	screen        tcell.Screen
	width, height int
	pixels        []common.Color
	samples       map[string][]surfaceSample
}

func newTerminalRendererBackend(scr tcell.Screen) *terminalRendererBackend {
	return &terminalRendererBackend{
		screen:  scr,
		samples: make(map[string][]surfaceSample),
	}
}

func (t *terminalRendererBackend) ConfigureSurface(width, height int) {
	t.width, t.height = width, height
	t.pixels = make([]common.Color, width*height)
}

func (t *terminalRendererBackend) Draw(f *Frame) error {
	if f.Width != t.width || f.Height != t.height {
		t.ConfigureSurface(f.Width, f.Height)
	}
	for i := range t.pixels {
		t.pixels[i] = f.Background
	}

	invView := f.View.Mat3().Transpose()
	for _, item := range depthSorted(f) {
		t.drawSphere(f, item, invView)
	}

	t.flush()
	return nil
}

// drawSphere paints one eye as the screen-space disc covering its bounding sphere.
func (t *terminalRendererBackend) drawSphere(f *Frame, item drawItem, invView mgl32.Mat3) {
	inst := item.instance
	radius := item.batch.Mesh.BoundingRadius() * max(abs32(inst.Scale[0]), abs32(inst.Scale[1]), abs32(inst.Scale[2]))
	if radius <= 0 {
		return
	}

	clip := f.ViewProjection.Mul4x1(inst.Position.Vec4(1))
	if clip[3] <= 0 {
		return
	}
	cx := (clip[0]/clip[3] + 1) * 0.5 * float32(t.width)
	cy := (1 - clip[1]/clip[3]) * 0.5 * float32(t.height)
	rx := radius * f.Projection[0] / clip[3] * 0.5 * float32(t.width)
	ry := radius * f.Projection[5] / clip[3] * 0.5 * float32(t.height)
	if rx <= 0 || ry <= 0 {
		return
	}

	samples := t.samplesFor(item.batch.Mesh)
	inverse := inst.Rotation.Inverse()

	x0 := max(int(cx-rx), 0)
	x1 := min(int(cx+rx)+1, t.width)
	y0 := max(int(cy-ry), 0)
	y1 := min(int(cy+ry)+1, t.height)
	for y := y0; y < y1; y++ {
		dy := (cy - (float32(y) + 0.5)) / ry
		for x := x0; x < x1; x++ {
			dx := (float32(x) + 0.5 - cx) / rx
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			dz := float32(math.Sqrt(float64(1 - d2)))
			normal := invView.Mul3x1(mgl32.Vec3{dx, dy, dz}).Normalize()
			albedo := sampleColor(samples, inverse.Rotate(normal))
			surface := inst.Position.Add(normal.Mul(radius))
			t.pixels[y*t.width+x] = Shade(albedo, normal, surface, f)
		}
	}
}

// samplesFor returns the per-vertex surface samples of a mesh, built once per mesh name.
func (t *terminalRendererBackend) samplesFor(m model.Model) []surfaceSample {
	if s, ok := t.samples[m.Name()]; ok {
		return s
	}
	vertices := m.Vertices()
	s := make([]surfaceSample, 0, len(vertices))
	for _, v := range vertices {
		dir := common.SafeNormalize(mgl32.Vec3(v.Position))
		if dir.Len() == 0 {
			continue
		}
		s = append(s, surfaceSample{dir: dir, color: common.Color{v.Color[0], v.Color[1], v.Color[2]}})
	}
	t.samples[m.Name()] = s
	return s
}

// sampleColor returns the color of the sample pointing closest to dir, white without samples.
func sampleColor(samples []surfaceSample, dir mgl32.Vec3) common.Color {
	best := common.Color{1, 1, 1}
	bestDot := float32(-2)
	for _, s := range samples {
		if d := s.dir.Dot(dir); d > bestDot {
			bestDot = d
			best = s.color
		}
	}
	return best
}

func (t *terminalRendererBackend) flush() {
	rows := t.height / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < t.width; col++ {
			top := t.pixels[(2*row)*t.width+col]
			bottom := t.pixels[(2*row+1)*t.width+col]
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func (t *terminalRendererBackend) Release() {
	t.pixels = nil
	clear(t.samples)
}

func toTcell(c common.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
