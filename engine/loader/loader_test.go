package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// triangleBuffer packs three positions followed by three RGBA8 colors and three uint16 indices.
func triangleBuffer() []byte {
	var buf bytes.Buffer
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	binary.Write(&buf, binary.LittleEndian, positions)
	buf.Write([]byte{255, 0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255})
	binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 2})
	return buf.Bytes()
}

func triangleDocument(uri string, byteLength int) []byte {
	doc := map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"name": "tri", "nodes": []int{0}}},
		"nodes":  []any{map[string]any{"mesh": 0}},
		"meshes": []any{map[string]any{
			"name": "tri",
			"primitives": []any{map[string]any{
				"attributes": map[string]int{"POSITION": 0, "COLOR_0": 1},
				"indices":    2,
				"material":   0,
			}},
		}},
		"materials": []any{map[string]any{
			"name":                 "half",
			"pbrMetallicRoughness": map[string]any{"baseColorFactor": []float32{0.5, 0.5, 0.5, 1}},
		}},
		"accessors": []any{
			map[string]any{"bufferView": 0, "componentType": gltfComponentTypeFloat, "count": 3, "type": "VEC3"},
			map[string]any{"bufferView": 1, "componentType": gltfComponentTypeUnsignedByte, "normalized": true, "count": 3, "type": "VEC4"},
			map[string]any{"bufferView": 2, "componentType": gltfComponentTypeUnsignedShort, "count": 3, "type": "SCALAR"},
		},
		"bufferViews": []any{
			map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": 36},
			map[string]any{"buffer": 0, "byteOffset": 36, "byteLength": 12},
			map[string]any{"buffer": 0, "byteOffset": 48, "byteLength": 6},
		},
	}
	buffer := map[string]any{"byteLength": byteLength}
	if uri != "" {
		buffer["uri"] = uri
	}
	doc["buffers"] = []any{buffer}
	data, _ := json.Marshal(doc)
	return data
}

func testFS() fstest.MapFS {
	buf := triangleBuffer()
	embedded := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf)
	return fstest.MapFS{
		"models/tri.gltf":      {Data: triangleDocument(embedded, len(buf))},
		"models/external.gltf": {Data: triangleDocument("tri.bin", len(buf))},
		"models/tri.bin":       {Data: buf},
		"models/short.gltf":    {Data: triangleDocument("tri.bin", len(buf)+100)},
		"models/tri.obj":       {Data: []byte("o tri")},
	}
}

func TestLoadEmbeddedBuffer(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithFS(testFS()))

	m, err := l.Load("models/tri.gltf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.Name() != "tri" {
		t.Errorf("Expected scene name tri, got %s", m.Name())
	}
	if m.IndexCount() != 3 {
		t.Errorf("Expected 3 indices, got %d", m.IndexCount())
	}

	v := m.Vertices()
	if len(v) != 3 {
		t.Fatalf("Expected 3 vertices, got %d", len(v))
	}
	// Red vertex color tinted by the 0.5 base color.
	if got := v[0].Color; math.Abs(float64(got[0]-0.5)) > 1e-6 || got[1] != 0 || got[3] != 1 {
		t.Errorf("Expected (0.5, 0, 0, 1), got %v", got)
	}
	// Normals are generated for a counter-clockwise triangle in the XY plane.
	if got := v[1].Normal; got != [3]float32{0, 0, 1} {
		t.Errorf("Expected generated normal (0, 0, 1), got %v", got)
	}
}

func TestLoadExternalBuffer(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithFS(testFS()))
	m, err := l.Load("models/external.gltf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(m.Vertices()) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(m.Vertices()))
	}
}

func TestLoadCachesByName(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithFS(testFS()))
	a, err := l.Load("models/tri.gltf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, _ := l.Load("models/tri.gltf")
	if a != b {
		t.Errorf("Expected cached model on second load")
	}
	if l.Get("models/tri.gltf") != a {
		t.Errorf("Expected Get to return the cached model")
	}
	if len(l.Models()) != 1 {
		t.Errorf("Expected 1 cached model, got %d", len(l.Models()))
	}
}

func TestLoadAppliesModelOptions(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithFS(testFS()), WithModelOptions(model.WithScale(0.5), model.WithCastsShadows(true)))
	m, err := l.Load("models/tri.gltf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.Scale() != 0.5 || !m.CastsShadows() {
		t.Errorf("Expected scale 0.5 with shadows, got %v / %v", m.Scale(), m.CastsShadows())
	}
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithFS(testFS()))

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"Missing file", "models/missing.gltf", fs.ErrNotExist},
		{"Unsupported format", "models/tri.obj", ErrUnsupportedFormat},
		{"Short buffer", "models/short.gltf", errBufferSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(tt.path)
			if err == nil {
				t.Fatalf("Expected an error")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Expected *LoadError, got %T", err)
			}
			if le.URL != tt.path {
				t.Errorf("Expected URL %s, got %s", tt.path, le.URL)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected error wrapping %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoadAsync(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithFS(testFS()), WithWorkers(1))
	defer l.Close()

	select {
	case res := <-l.LoadAsync("models/tri.gltf"):
		if res.Err != nil {
			t.Fatalf("Expected no error, got %v", res.Err)
		}
		if res.Model == nil {
			t.Fatalf("Expected a model")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Expected LoadAsync to resolve")
	}

	select {
	case res := <-l.LoadAsync("models/missing.gltf"):
		var le *LoadError
		if !errors.As(res.Err, &le) {
			t.Errorf("Expected *LoadError, got %v", res.Err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Expected failing LoadAsync to resolve")
	}
}

func TestLoadAsyncCached(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithModel("eye", model.NewModel(model.WithName("eye"))))
	res, ok := <-l.LoadAsync("eye")
	if !ok || res.Model == nil || res.Model.Name() != "eye" {
		t.Errorf("Expected cached model to resolve immediately, got %+v", res)
	}
	if _, ok := <-l.LoadAsync("eye"); !ok {
		t.Errorf("Expected a value before close")
	}
}

func TestParseGLB(t *testing.T) {
	buf := triangleBuffer()
	// No uri: the buffer binds to the BIN chunk.
	jsonChunk := triangleDocument("", len(buf))
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}

	var glb bytes.Buffer
	binary.Write(&glb, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(12 + 8 + len(jsonChunk) + 8 + len(buf))})
	binary.Write(&glb, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(jsonChunk)), ChunkType: gltfGLBChunkJSON})
	glb.Write(jsonChunk)
	binary.Write(&glb, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(buf)), ChunkType: gltfGLBChunkBIN})
	glb.Write(buf)

	l := NewLoader(BackendTypeGLTF)
	m, err := l.LoadReader("tri.glb", &glb, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(m.Vertices()) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(m.Vertices()))
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	if _, err := l.LoadReader("v1", strings.NewReader(`{"asset":{"version":"1.0"}}`), false); !errors.Is(err, errInvalidGLTFVersion) {
		t.Errorf("Expected version error, got %v", err)
	}
	if _, err := l.LoadReader("magic", bytes.NewReader(make([]byte, 20)), true); !errors.Is(err, errInvalidGLBMagic) {
		t.Errorf("Expected magic error, got %v", err)
	}
}
