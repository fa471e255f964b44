package model

// Vertex is the interleaved vertex layout shared by the importer and the GPU renderer.
// 40 bytes: position (12), normal (12), color (16).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]float32
}

// Material holds the scalar surface properties imported with a mesh.
type Material struct {
	Name string

	// BaseColor is multiplied with the vertex color (RGBA).
	BaseColor [4]float32

	Metallic  float32
	Roughness float32
}

// DefaultMaterial is used for primitives that reference no material.
var DefaultMaterial = Material{
	Name:      "default",
	BaseColor: [4]float32{1, 1, 1, 1},
	Metallic:  0,
	Roughness: 1,
}

// ImportedModel represents a 3D model loaded from an external format.
// This is the universal format that importers produce.
type ImportedModel struct {
	// Name is the model identifier.
	Name string

	// Meshes contains one entry per glTF primitive.
	Meshes []ImportedMesh

	// Materials are indexed by ImportedMesh.MaterialIndex.
	Materials []Material
}

// ImportedMesh represents a single mesh within an imported model.
type ImportedMesh struct {
	Name string

	Vertices []Vertex

	// Indices are triangle-list indices into Vertices.
	Indices []uint32

	// MaterialIndex references ImportedModel.Materials; -1 means DefaultMaterial.
	MaterialIndex int

	// BoundingMin is the minimum corner of the axis-aligned bounding box.
	BoundingMin [3]float32

	// BoundingMax is the maximum corner of the axis-aligned bounding box.
	BoundingMax [3]float32
}
