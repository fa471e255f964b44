package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
)

// EyeShaderSource is the WGSL program drawing lit, instanced eyes. Its Frame struct matches
// GPUFrameUniform and its per-instance attributes match GPUInstance.
//
//go:embed assets/eye.wgsl
var EyeShaderSource string

// GPUFrameUniformSize is the byte size of a marshaled GPUFrameUniform.
const GPUFrameUniformSize = 64 + 16 + 16 + MaxLights*32

// GPUInstanceSize is the byte size of a marshaled GPUInstance.
const GPUInstanceSize = 64

// GPULightData is one light slot of the frame uniform.
type GPULightData struct {
	Position [4]float32 // offset  0: xyz direction toward light (w = 0) or position (w = 1)
	Color    [4]float32 // offset 16: rgb radiance, w unused
}

// GPUFrameUniform is the per-frame uniform buffer bound at group 0 binding 0.
type GPUFrameUniform struct {
	ViewProj [16]float32             // offset   0: column-major view-projection
	Camera   [4]float32              // offset  64: camera position, w unused
	Ambient  [4]float32              // offset  80: rgb ambient radiance, w light count
	Lights   [MaxLights]GPULightData // offset  96
}

// NewGPUFrameUniform flattens a frame's camera and lighting into the uniform layout.
//
// Parameters:
//   - f: the frame
//
// Returns:
//   - GPUFrameUniform: the uniform ready to marshal
func NewGPUFrameUniform(f *Frame) GPUFrameUniform {
	u := GPUFrameUniform{
		ViewProj: f.ViewProjection,
		Camera:   [4]float32{f.CameraPosition[0], f.CameraPosition[1], f.CameraPosition[2], 1},
		Ambient:  [4]float32{f.Ambient[0], f.Ambient[1], f.Ambient[2], float32(len(f.Lights))},
	}
	for i, l := range f.Lights {
		if i == MaxLights {
			break
		}
		var w float32
		if l.Point {
			w = 1
		}
		u.Lights[i] = GPULightData{
			Position: [4]float32{l.Vector[0], l.Vector[1], l.Vector[2], w},
			Color:    [4]float32{l.Radiance[0], l.Radiance[1], l.Radiance[2], 0},
		}
	}
	return u
}

// Marshal serializes the uniform into a GPUFrameUniformSize byte buffer.
//
// Returns:
//   - []byte: the buffer ready for GPU upload
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, GPUFrameUniformSize)
	off := putFloats(buf, 0, g.ViewProj[:])
	off = putFloats(buf, off, g.Camera[:])
	off = putFloats(buf, off, g.Ambient[:])
	for i := range g.Lights {
		off = putFloats(buf, off, g.Lights[i].Position[:])
		off = putFloats(buf, off, g.Lights[i].Color[:])
	}
	return buf
}

// GPUInstance is one per-instance vertex buffer entry: the model matrix as four columns
// bound to locations 3 to 6.
type GPUInstance struct {
	Model [16]float32
}

// Marshal serializes the instance into a GPUInstanceSize byte buffer.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, GPUInstanceSize)
	putFloats(buf, 0, g.Model[:])
	return buf
}

// marshalInstances packs every instance of a batch back to back.
func marshalInstances(instances []Instance) []byte {
	buf := make([]byte, 0, len(instances)*GPUInstanceSize)
	for _, inst := range instances {
		g := GPUInstance{Model: inst.Model}
		buf = append(buf, g.Marshal()...)
	}
	return buf
}

func putFloats(buf []byte, off int, vals []float32) int {
	for _, v := range vals {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
		off += 4
	}
	return off
}
