package assets

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-eyes/engine/loader"
)

func TestEyeModelLoads(t *testing.T) {
	l := loader.NewLoader(loader.BackendTypeGLTF, loader.WithFS(FS))
	defer l.Close()

	m, err := l.Load(EyeModel)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.Name() != "eye" {
		t.Errorf("Expected model name eye, got %q", m.Name())
	}
	if m.IndexCount() != 1216*3 {
		t.Errorf("Expected %d indices, got %d", 1216*3, m.IndexCount())
	}
	if r := m.BoundingRadius(); r < 0.999 || r > 1.001 {
		t.Errorf("Expected unit bounding radius, got %v", r)
	}

	// The vertex straight down +Z is the pupil, the one down -Z is sclera.
	var front, back [4]float32
	for _, v := range m.Vertices() {
		if v.Position[2] > 0.9999 {
			front = v.Color
		}
		if v.Position[2] < -0.9999 {
			back = v.Color
		}
	}
	if front[0] > 0.1 {
		t.Errorf("Expected a dark pupil at +Z, got %v", front)
	}
	if back[0] < 0.9 {
		t.Errorf("Expected white sclera at -Z, got %v", back)
	}
}
