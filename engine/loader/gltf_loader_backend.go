package loader

import (
	"io"
	"io/fs"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct {
	importer gltfImporter
}

// gltfLoaderBackend is a loaderBackend implementation for glTF/GLB files.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a glTF backend reading from fsys.
func newGLTFLoaderBackend(fsys fs.FS) gltfLoaderBackend {
	return &gltfLoaderBackendImpl{
		importer: newGLTFImporter(fsys),
	}
}

func (b *gltfLoaderBackendImpl) Load(name string) (*model.ImportedModel, error) {
	return b.importer.Import(name)
}

func (b *gltfLoaderBackendImpl) LoadReader(r io.Reader, isGLB bool) (*model.ImportedModel, error) {
	return b.importer.ImportReader(r, isGLB)
}
