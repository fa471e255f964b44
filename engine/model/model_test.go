package model

import (
	"testing"
)

func triangle() ([]Vertex, []uint32) {
	return []Vertex{
		{Position: [3]float32{1, 0, 0}, Color: [4]float32{1, 1, 1, 1}},
		{Position: [3]float32{0, 2, 0}, Color: [4]float32{1, 1, 1, 1}},
		{Position: [3]float32{0, 0, 0}, Color: [4]float32{1, 1, 1, 1}},
	}, []uint32{0, 1, 2}
}

func TestNewModelComputesBoundingRadius(t *testing.T) {
	v, i := triangle()
	m := NewModel(WithGeometry(v, i))
	if m.BoundingRadius() != 2 {
		t.Errorf("Expected bounding radius 2, got %v", m.BoundingRadius())
	}
	if m.IndexCount() != 3 {
		t.Errorf("Expected 3 indices, got %d", m.IndexCount())
	}
	if len(m.VertexData()) != 3*40 {
		t.Errorf("Expected 120 bytes of vertex data, got %d", len(m.VertexData()))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v, i := triangle()
	original := NewModel(WithName("eye"), WithGeometry(v, i), WithScale(0.5), WithCastsShadows(true))
	clone := original.Clone()

	clone.SetScale(2)
	clone.SetCastsShadows(false)
	clone.Vertices()[0].Position[0] = 99

	if original.Scale() != 0.5 {
		t.Errorf("Expected original scale 0.5, got %v", original.Scale())
	}
	if !original.CastsShadows() {
		t.Errorf("Expected original to keep casting shadows")
	}
	if original.Vertices()[0].Position[0] != 1 {
		t.Errorf("Expected original geometry untouched, got %v", original.Vertices()[0].Position)
	}
	if clone.Name() != "eye" {
		t.Errorf("Expected clone name eye, got %s", clone.Name())
	}
}

func TestFromImportedMergesMeshes(t *testing.T) {
	v, i := triangle()
	imported := &ImportedModel{
		Name: "pair",
		Meshes: []ImportedMesh{
			{Vertices: v, Indices: i, MaterialIndex: 0},
			{Vertices: v, Indices: i, MaterialIndex: -1},
		},
		Materials: []Material{{Name: "red", BaseColor: [4]float32{1, 0, 0, 1}}},
	}

	m := FromImported(imported, WithScale(0.5))

	if len(m.Vertices()) != 6 {
		t.Fatalf("Expected 6 vertices, got %d", len(m.Vertices()))
	}
	if got := m.Indices()[3]; got != 3 {
		t.Errorf("Expected second mesh indices rebased to 3, got %d", got)
	}
	if got := m.Vertices()[0].Color; got != [4]float32{1, 0, 0, 1} {
		t.Errorf("Expected red tint from material, got %v", got)
	}
	if got := m.Vertices()[3].Color; got != [4]float32{1, 1, 1, 1} {
		t.Errorf("Expected default material to keep white, got %v", got)
	}
	if m.Scale() != 0.5 {
		t.Errorf("Expected scale 0.5, got %v", m.Scale())
	}
}
