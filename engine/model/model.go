package model

import (
	"math"
	"slices"

	"github.com/Carmen-Shannon/oxy-eyes/common"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	vertices     []Vertex
	indices      []uint32
	materials    []Material
	scale        float32
	castsShadows bool

	boundingRadius float32
}

// Model defines the interface for a loaded 3D model.
// A Model holds merged triangle geometry, imported materials and per-instance presentation
// settings. Every eye owns its own Model obtained through Clone, so per-instance settings on one
// clone never leak into another.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the merged vertex list of every mesh in the model.
	//
	// Returns:
	//   - []Vertex: the vertices
	Vertices() []Vertex

	// Indices returns triangle-list indices into Vertices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData returns Vertices as raw bytes ready for a GPU vertex buffer.
	VertexData() []byte

	// IndexData returns Indices as raw bytes ready for a GPU index buffer.
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	IndexCount() int

	// Materials returns the imported materials.
	//
	// Returns:
	//   - []Material: the materials
	Materials() []Material

	// BoundingRadius returns the bounding sphere radius around the model origin, in model
	// units before Scale is applied.
	//
	// Returns:
	//   - float32: the radius
	BoundingRadius() float32

	// Scale returns the uniform presentation scale applied on top of the owning entity's scale.
	Scale() float32

	// SetScale sets the uniform presentation scale.
	//
	// Parameters:
	//   - s: the scale factor
	SetScale(s float32)

	// CastsShadows reports whether the model is drawn into shadow maps.
	CastsShadows() bool

	// SetCastsShadows sets whether the model is drawn into shadow maps.
	//
	// Parameters:
	//   - cast: true to cast shadows
	SetCastsShadows(cast bool)

	// Clone returns an independent deep copy of the model.
	//
	// Returns:
	//   - Model: the copy
	Clone() Model
}

var _ Model = &model{}

// NewModel creates a new Model instance with the provided options applied.
// The bounding radius is computed from the vertices unless WithBoundingRadius sets it.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		scale:          1,
		boundingRadius: -1,
	}
	for _, option := range options {
		option(m)
	}
	if m.boundingRadius < 0 {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	return m
}

// FromImported merges every mesh of an ImportedModel into one Model. Indices are rebased onto the
// merged vertex list and each vertex color is multiplied by its mesh's material base color.
//
// Parameters:
//   - imported: the CPU-side imported model
//   - options: additional options applied after the geometry
//
// Returns:
//   - Model: the merged model
func FromImported(imported *ImportedModel, options ...ModelBuilderOption) Model {
	var vertices []Vertex
	var indices []uint32

	for _, mesh := range imported.Meshes {
		mat := DefaultMaterial
		if mesh.MaterialIndex >= 0 && mesh.MaterialIndex < len(imported.Materials) {
			mat = imported.Materials[mesh.MaterialIndex]
		}

		base := uint32(len(vertices))
		for _, v := range mesh.Vertices {
			for c := 0; c < 4; c++ {
				v.Color[c] *= mat.BaseColor[c]
			}
			vertices = append(vertices, v)
		}
		for _, idx := range mesh.Indices {
			indices = append(indices, idx+base)
		}
	}

	opts := append([]ModelBuilderOption{
		WithName(imported.Name),
		WithGeometry(vertices, indices),
		WithMaterials(imported.Materials...),
	}, options...)
	return NewModel(opts...)
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []Vertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) Materials() []Material {
	return m.materials
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Scale() float32 {
	return m.scale
}

func (m *model) SetScale(s float32) {
	m.scale = s
}

func (m *model) CastsShadows() bool {
	return m.castsShadows
}

func (m *model) SetCastsShadows(cast bool) {
	m.castsShadows = cast
}

func (m *model) Clone() Model {
	return &model{
		name:           m.name,
		vertices:       slices.Clone(m.vertices),
		indices:        slices.Clone(m.indices),
		materials:      slices.Clone(m.materials),
		scale:          m.scale,
		castsShadows:   m.castsShadows,
		boundingRadius: m.boundingRadius,
	}
}

// ComputeBoundingRadius returns the largest distance from the origin to any vertex.
//
// Parameters:
//   - vertices: the vertices to measure
//
// Returns:
//   - float32: the radius, 0 for no vertices
func ComputeBoundingRadius(vertices []Vertex) float32 {
	var maxSq float32
	for _, v := range vertices {
		p := v.Position
		if d := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]; d > maxSq {
			maxSq = d
		}
	}
	return float32(math.Sqrt(float64(maxSq)))
}
