package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// loaderBackend defines the format-specific half of the Loader.
type loaderBackend interface {
	// Load imports a model file.
	//
	// Parameters:
	//   - name: the slash-separated path of the file in the backend's file system
	//
	// Returns:
	//   - *model.ImportedModel: the imported model data
	//   - error: error if loading fails
	Load(name string) (*model.ImportedModel, error)

	// LoadReader imports a model from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - *model.ImportedModel: the imported model data
	//   - error: error if loading fails
	LoadReader(r io.Reader, isGLB bool) (*model.ImportedModel, error)
}
