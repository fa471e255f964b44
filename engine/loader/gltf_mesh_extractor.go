package loader

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// gltfMeshExtractorImpl is the implementation of the gltfMeshExtractor interface.
type gltfMeshExtractorImpl struct {
	parser gltfParser
}

// gltfMeshExtractor converts glTF mesh primitives into ImportedMesh values.
type gltfMeshExtractor interface {
	// ExtractMesh extracts a single mesh by index, one ImportedMesh per primitive.
	//
	// Parameters:
	//   - meshIndex: the index of the mesh to extract
	//
	// Returns:
	//   - []model.ImportedMesh: one ImportedMesh per primitive
	//   - error: error if extraction fails
	ExtractMesh(meshIndex int) ([]model.ImportedMesh, error)

	// ExtractAllMeshes extracts every primitive of every mesh, flattened.
	ExtractAllMeshes() ([]model.ImportedMesh, error)
}

var _ gltfMeshExtractor = &gltfMeshExtractorImpl{}

// newGLTFMeshExtractor creates a new mesh extractor for a parsed document.
func newGLTFMeshExtractor(parser gltfParser) gltfMeshExtractor {
	return &gltfMeshExtractorImpl{parser: parser}
}

func (e *gltfMeshExtractorImpl) ExtractMesh(meshIndex int) ([]model.ImportedMesh, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, errNoDocument
	}
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", meshIndex)
	}

	mesh := &doc.Meshes[meshIndex]
	result := make([]model.ImportedMesh, 0, len(mesh.Primitives))
	for primIdx := range mesh.Primitives {
		imported, err := e.extractPrimitive(&mesh.Primitives[primIdx], mesh.Name, primIdx)
		if err != nil {
			return nil, fmt.Errorf("mesh %d primitive %d: %w", meshIndex, primIdx, err)
		}
		result = append(result, imported)
	}
	return result, nil
}

func (e *gltfMeshExtractorImpl) ExtractAllMeshes() ([]model.ImportedMesh, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, errNoDocument
	}

	var all []model.ImportedMesh
	for i := range doc.Meshes {
		meshes, err := e.ExtractMesh(i)
		if err != nil {
			return nil, err
		}
		all = append(all, meshes...)
	}
	return all, nil
}

// extractPrimitive reads positions, normals, vertex colors and indices of one triangle primitive.
func (e *gltfMeshExtractorImpl) extractPrimitive(prim *gltfPrimitive, meshName string, primIndex int) (model.ImportedMesh, error) {
	if prim.Mode != nil && *prim.Mode != gltfPrimitiveModeTriangles {
		return model.ImportedMesh{}, fmt.Errorf("unsupported primitive mode: %d (only triangles supported)", *prim.Mode)
	}

	posAccessor, ok := prim.Attributes["POSITION"]
	if !ok {
		return model.ImportedMesh{}, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := e.parser.ReadVec3Accessor(posAccessor)
	if err != nil {
		return model.ImportedMesh{}, fmt.Errorf("failed to read positions: %w", err)
	}

	vertices := make([]model.Vertex, len(positions))
	for i, pos := range positions {
		vertices[i].Position = pos
		vertices[i].Color = [4]float32{1, 1, 1, 1}
	}

	hasNormals := false
	if acc, ok := prim.Attributes["NORMAL"]; ok {
		normals, err := e.parser.ReadVec3Accessor(acc)
		if err != nil {
			return model.ImportedMesh{}, fmt.Errorf("failed to read normals: %w", err)
		}
		for i := 0; i < len(normals) && i < len(vertices); i++ {
			vertices[i].Normal = normals[i]
		}
		hasNormals = true
	}

	if acc, ok := prim.Attributes["COLOR_0"]; ok {
		colors, err := e.readColorAccessor(acc)
		if err != nil {
			return model.ImportedMesh{}, fmt.Errorf("failed to read colors: %w", err)
		}
		for i := 0; i < len(colors) && i < len(vertices); i++ {
			vertices[i].Color = colors[i]
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = e.parser.ReadIndicesAccessor(*prim.Indices)
		if err != nil {
			return model.ImportedMesh{}, fmt.Errorf("failed to read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return model.ImportedMesh{}, fmt.Errorf("index %d out of range for %d vertices", idx, len(vertices))
		}
	}

	if !hasNormals && len(indices) >= 3 {
		generateNormals(vertices, indices)
	}

	bmin, bmax := gltfCalculateBoundingBox(positions)

	materialIndex := -1
	if prim.Material != nil {
		materialIndex = *prim.Material
	}

	name := meshName
	if name == "" {
		name = "mesh"
	}
	if primIndex > 0 {
		name = fmt.Sprintf("%s_prim%d", name, primIndex)
	}

	return model.ImportedMesh{
		Name:          name,
		Vertices:      vertices,
		Indices:       indices,
		MaterialIndex: materialIndex,
		BoundingMin:   bmin,
		BoundingMax:   bmax,
	}, nil
}

// readColorAccessor reads COLOR_0 as RGBA floats. glTF allows VEC3 or VEC4 with float or
// normalized unsigned byte/short components.
func (e *gltfMeshExtractorImpl) readColorAccessor(accessorIndex int) ([][4]float32, error) {
	doc := e.parser.Document()
	if accessorIndex < 0 || accessorIndex >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", accessorIndex)
	}
	acc := &doc.Accessors[accessorIndex]

	if acc.ComponentType == gltfComponentTypeFloat {
		switch acc.Type {
		case gltfAccessorTypeVec4:
			return e.parser.ReadVec4Accessor(accessorIndex)
		case gltfAccessorTypeVec3:
			rgb, err := e.parser.ReadVec3Accessor(accessorIndex)
			if err != nil {
				return nil, err
			}
			out := make([][4]float32, len(rgb))
			for i, c := range rgb {
				out[i] = [4]float32{c[0], c[1], c[2], 1}
			}
			return out, nil
		}
	}

	var size int
	var maxValue float32
	switch acc.ComponentType {
	case gltfComponentTypeUnsignedByte:
		size, maxValue = 1, 255
	case gltfComponentTypeUnsignedShort:
		size, maxValue = 2, 65535
	default:
		return nil, fmt.Errorf("unsupported color format: type=%s, componentType=%d", acc.Type, acc.ComponentType)
	}
	components := gltfAccessorTypeComponentCount(acc.Type)
	if components != 3 && components != 4 {
		return nil, fmt.Errorf("unsupported color type: %s", acc.Type)
	}

	data, err := e.parser.ReadAccessorData(accessorIndex)
	if err != nil {
		return nil, err
	}
	out := make([][4]float32, acc.Count)
	for i := range out {
		out[i][3] = 1
		for c := 0; c < components; c++ {
			off := (i*components + c) * size
			var raw uint32
			if size == 1 {
				raw = uint32(data[off])
			} else {
				raw = uint32(data[off]) | uint32(data[off+1])<<8
			}
			out[i][c] = float32(raw) / maxValue
		}
	}
	return out, nil
}

// gltfCalculateBoundingBox computes the axis-aligned bounding box for positions.
func gltfCalculateBoundingBox(positions [][3]float32) ([3]float32, [3]float32) {
	if len(positions) == 0 {
		return [3]float32{}, [3]float32{}
	}
	bmin, bmax := positions[0], positions[0]
	for _, pos := range positions[1:] {
		for j := 0; j < 3; j++ {
			bmin[j] = min(bmin[j], pos[j])
			bmax[j] = max(bmax[j], pos[j])
		}
	}
	return bmin, bmax
}

// generateNormals computes smooth vertex normals by accumulating area-weighted face normals
// onto each triangle's vertices. Vertices touched by no triangle point +Z.
func generateNormals(vertices []model.Vertex, indices []uint32) {
	accum := make([][3]float32, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := vertices[i0].Position, vertices[i1].Position, vertices[i2].Position

		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		face := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		for _, idx := range [3]uint32{i0, i1, i2} {
			accum[idx][0] += face[0]
			accum[idx][1] += face[1]
			accum[idx][2] += face[2]
		}
	}

	for i, n := range accum {
		length := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
		if length < 1e-6 {
			vertices[i].Normal = [3]float32{0, 0, 1}
			continue
		}
		vertices[i].Normal = [3]float32{n[0] / length, n[1] / length, n[2] / length}
	}
}
