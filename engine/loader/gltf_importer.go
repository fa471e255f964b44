package loader

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct {
	fsys fs.FS
}

// gltfImporter combines the parser and extractors to produce an ImportedModel.
type gltfImporter interface {
	// Import loads a glTF/GLB file from the importer's file system.
	//
	// Parameters:
	//   - name: the slash-separated path of the file
	//
	// Returns:
	//   - *model.ImportedModel: the imported meshes and materials
	//   - error: error if import fails
	Import(name string) (*model.ImportedModel, error)

	// ImportReader loads a glTF JSON or GLB stream.
	//
	// Parameters:
	//   - r: the reader providing glTF/GLB data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - *model.ImportedModel: the imported meshes and materials
	//   - error: error if import fails
	ImportReader(r io.Reader, isGLB bool) (*model.ImportedModel, error)
}

var _ gltfImporter = &gltfImporterImpl{}

// newGLTFImporter creates an importer reading files from fsys.
func newGLTFImporter(fsys fs.FS) gltfImporter {
	return &gltfImporterImpl{fsys: fsys}
}

func (imp *gltfImporterImpl) Import(name string) (*model.ImportedModel, error) {
	parser := newGLTFParser(imp.fsys)
	if err := parser.Parse(name); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return imp.importFromParser(parser, name)
}

func (imp *gltfImporterImpl) ImportReader(r io.Reader, isGLB bool) (*model.ImportedModel, error) {
	parser := newGLTFParser(imp.fsys)
	if err := parser.ParseReader(r, isGLB); err != nil {
		return nil, fmt.Errorf("failed to parse from reader: %w", err)
	}
	return imp.importFromParser(parser, "")
}

// importFromParser extracts meshes and materials from a parser holding a document.
func (imp *gltfImporterImpl) importFromParser(parser gltfParser, fallbackPath string) (*model.ImportedModel, error) {
	doc := parser.Document()
	if doc == nil {
		return nil, errNoDocument
	}
	if len(doc.ExtensionsRequired) > 0 {
		return nil, fmt.Errorf("unsupported required extensions: %s", strings.Join(doc.ExtensionsRequired, ", "))
	}

	meshes, err := newGLTFMeshExtractor(parser).ExtractAllMeshes()
	if err != nil {
		return nil, fmt.Errorf("mesh extraction failed: %w", err)
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("document contains no meshes")
	}

	materials, err := newGLTFMaterialExtractor(parser).ExtractAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("material extraction failed: %w", err)
	}

	return &model.ImportedModel{
		Name:      gltfExtractModelName(doc, fallbackPath),
		Meshes:    meshes,
		Materials: materials,
	}, nil
}

// gltfExtractModelName prefers the default scene name, then the file stem.
func gltfExtractModelName(doc *gltfDocument, fallbackPath string) string {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		if name := doc.Scenes[*doc.Scene].Name; name != "" {
			return name
		}
	}
	if fallbackPath != "" {
		base := path.Base(fallbackPath)
		return strings.TrimSuffix(base, path.Ext(base))
	}
	return "unnamed_model"
}
