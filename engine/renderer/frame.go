package renderer

import (
	"math"
	"sort"

	"github.com/Carmen-Shannon/oxy-eyes/common"
	"github.com/Carmen-Shannon/oxy-eyes/engine/eye"
	"github.com/Carmen-Shannon/oxy-eyes/engine/light"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/Carmen-Shannon/oxy-eyes/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of non-ambient lights a frame carries. Extra lights are dropped.
const MaxLights = 4

// lightScale converts light intensities into diffuse radiance the way a Lambertian BRDF does
// (albedo / pi), so an intensity of pi lights a surface facing the light at full albedo.
const lightScale = 1 / math.Pi

// FrameLight is a non-ambient light flattened for shading.
type FrameLight struct {
	// Point is true for point lights. Directional lights store the unit vector toward the
	// light in Vector; point lights store their position.
	Point  bool
	Vector mgl32.Vec3

	// Radiance is color * intensity * lightScale.
	Radiance common.Color
}

// Instance is one eye to draw.
type Instance struct {
	ID       uint64
	Model    mgl32.Mat4
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Batch is every instance sharing one mesh.
type Batch struct {
	Mesh      model.Model
	Instances []Instance
}

// Frame is an immutable snapshot of a scene taken at Present time. Backends only read frames.
type Frame struct {
	Index          uint64
	Width, Height  int
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	CameraPosition mgl32.Vec3
	Background     common.Color
	Ambient        common.Color
	Lights         []FrameLight
	Batches        []Batch
}

// InstanceCount returns the number of instances across all batches.
func (f *Frame) InstanceCount() int {
	n := 0
	for _, b := range f.Batches {
		n += len(b.Instances)
	}
	return n
}

// BuildFrame snapshots the visible part of s.
//
// Parameters:
//   - s: the scene to snapshot
//   - width, height: the target size in pixels
//
// Returns:
//   - Frame: the snapshot
func BuildFrame(s scene.Scene, width, height int) Frame {
	f := Frame{
		Width:          width,
		Height:         height,
		View:           mgl32.Ident4(),
		Projection:     mgl32.Ident4(),
		ViewProjection: mgl32.Ident4(),
		Background:     s.Background(),
		Ambient:        s.AmbientColor().Scale(lightScale),
	}
	if cam := s.Camera(); cam != nil {
		f.View = mgl32.Mat4(cam.ViewMatrix())
		f.Projection = mgl32.Mat4(cam.ProjectionMatrix())
		f.ViewProjection = mgl32.Mat4(cam.ViewProjectionMatrix())
		f.CameraPosition = cam.Position()
	}

	for _, l := range s.Lights() {
		if !l.Enabled() || l.Type() == light.LightTypeAmbient {
			continue
		}
		if len(f.Lights) == MaxLights {
			break
		}
		p := l.Position()
		fl := FrameLight{Radiance: l.Color().Scale(l.Intensity() * lightScale)}
		if l.Type() == light.LightTypePoint {
			fl.Point = true
			fl.Vector = mgl32.Vec3{p[0], p[1], p[2]}
		} else {
			d := l.Direction()
			fl.Vector = mgl32.Vec3{-d[0], -d[1], -d[2]}
		}
		f.Lights = append(f.Lights, fl)
	}

	f.Batches = batch(s.Visible())
	return f
}

// batch groups eyes by mesh name, keeping first-seen order.
func batch(eyes []eye.Eye) []Batch {
	var batches []Batch
	index := map[string]int{}
	for _, e := range eyes {
		m := e.Model()
		if m == nil {
			continue
		}
		i, ok := index[m.Name()]
		if !ok {
			i = len(batches)
			index[m.Name()] = i
			batches = append(batches, Batch{Mesh: m})
		}
		batches[i].Instances = append(batches[i].Instances, Instance{
			ID:       e.ID(),
			Model:    e.ModelMatrix(),
			Position: e.Position(),
			Rotation: e.Orientation(),
			Scale:    e.Scale().Mul(m.Scale()),
		})
	}
	return batches
}

// Shade applies ambient and Lambert diffuse lighting to a surface color. The wgpu fragment
// shader implements the same model.
//
// Parameters:
//   - albedo: the surface color
//   - normal: the unit surface normal
//   - position: the world-space surface position
//   - f: the frame carrying the lights
//
// Returns:
//   - common.Color: the lit color, unclamped
func Shade(albedo common.Color, normal, position mgl32.Vec3, f *Frame) common.Color {
	lit := f.Ambient
	for _, l := range f.Lights {
		dir := l.Vector
		atten := float32(1)
		if l.Point {
			d := l.Vector.Sub(position)
			atten = 1 / max(d.Dot(d), pointFalloffFloor)
			dir = common.SafeNormalize(d)
		}
		ndl := max(normal.Dot(dir), 0) * atten
		for c := range lit {
			lit[c] += l.Radiance[c] * ndl
		}
	}
	return common.Color{albedo[0] * lit[0], albedo[1] * lit[1], albedo[2] * lit[2]}
}

// pointFalloffFloor keeps inverse-square falloff finite next to a point light.
const pointFalloffFloor = 0.01

// drawItem is one instance with the batch it belongs to.
type drawItem struct {
	batch    *Batch
	instance *Instance
}

// depthSorted returns every instance ordered far to near as seen from the camera.
func depthSorted(f *Frame) []drawItem {
	var items []drawItem
	for bi := range f.Batches {
		b := &f.Batches[bi]
		for ii := range b.Instances {
			items = append(items, drawItem{b, &b.Instances[ii]})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		di := items[i].instance.Position.Sub(f.CameraPosition).LenSqr()
		dj := items[j].instance.Position.Sub(f.CameraPosition).LenSqr()
		return di > dj
	})
	return items
}
