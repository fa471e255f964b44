package model

// ModelBuilderOption is a function that configures a Model instance during construction.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithGeometry is an option builder that sets the triangle geometry.
//
// Parameters:
//   - vertices: the vertex list
//   - indices: triangle-list indices into vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry option to a model
func WithGeometry(vertices []Vertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
		m.indices = indices
	}
}

// WithMaterials is an option builder that sets the imported materials.
func WithMaterials(mats ...Material) ModelBuilderOption {
	return func(m *model) {
		m.materials = mats
	}
}

// WithScale is an option builder that sets the uniform presentation scale.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - ModelBuilderOption: a function that applies the scale option to a model
func WithScale(s float32) ModelBuilderOption {
	return func(m *model) {
		m.scale = s
	}
}

// WithCastsShadows is an option builder that sets whether the model is drawn into shadow maps.
func WithCastsShadows(cast bool) ModelBuilderOption {
	return func(m *model) {
		m.castsShadows = cast
	}
}

// WithBoundingRadius is an option builder that overrides the computed bounding sphere radius.
//
// Parameters:
//   - radius: the bounding radius to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the bounding radius option to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}
