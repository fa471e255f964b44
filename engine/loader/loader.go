package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// ErrUnsupportedFormat is returned for files whose extension no backend handles.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// LoadError reports a failed model load together with the source it was loaded from.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadResult is the value delivered by LoadAsync. Exactly one of Model and Err is set.
type LoadResult struct {
	Model model.Model
	Err   error
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	fsys         fs.FS
	workers      int
	pool         worker.DynamicWorkerPool
	poolOnce     sync.Once
	nextTaskID   atomic.Int64
	modelOptions []model.ModelBuilderOption

	modelCache map[string]model.Model

	backend loaderBackend
}

// Loader loads and caches 3D models. It abstracts the file format behind a backend and can load
// either synchronously or on a worker pool.
type Loader interface {
	// Load imports a model file and caches the result by name.
	// If the model is already cached, the cached version is returned.
	//
	// Parameters:
	//   - name: the path of the model file (.gltf or .glb)
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: a *LoadError if loading fails
	Load(name string) (model.Model, error)

	// LoadAsync imports a model file on the loader's worker pool. The returned channel receives
	// exactly one LoadResult and is then closed.
	//
	// Parameters:
	//   - name: the path of the model file (.gltf or .glb)
	//
	// Returns:
	//   - <-chan LoadResult: resolves once the load finishes
	LoadAsync(name string) <-chan LoadResult

	// LoadReader imports a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded model
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: a *LoadError if loading fails
	LoadReader(name string, r io.Reader, isGLB bool) (model.Model, error)

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns a copy of the model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model

	// Close stops the worker pool. Pending LoadAsync calls may never resolve after Close.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
// Without WithFS, files are read from the host file system.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		fsys:       hostFS{},
		workers:    2,
		modelCache: make(map[string]model.Model),
	}
	for _, option := range options {
		option(l)
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend(l.fsys)
	}
	return l
}

func (l *loader) Load(name string) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(name)
	if err != nil {
		return nil, &LoadError{URL: name, Err: err}
	}

	start := time.Now()
	imported, err := backend.Load(filepath.ToSlash(name))
	if err != nil {
		return nil, &LoadError{URL: name, Err: err}
	}
	return l.store(name, imported, start), nil
}

func (l *loader) LoadAsync(name string) <-chan LoadResult {
	out := make(chan LoadResult, 1)

	l.mu.RLock()
	cached, ok := l.modelCache[name]
	l.mu.RUnlock()
	if ok {
		out <- LoadResult{Model: cached}
		close(out)
		return out
	}

	l.poolOnce.Do(func() {
		l.mu.Lock()
		l.pool = worker.NewDynamicWorkerPool(l.workers, 16, time.Second)
		l.mu.Unlock()
	})
	l.pool.SubmitTask(worker.Task{
		ID:      int(l.nextTaskID.Add(1)),
		Payload: name,
		Do: func() (any, error) {
			defer close(out)
			m, err := l.Load(name)
			out <- LoadResult{Model: m, Err: err}
			return m, err
		},
	})
	return out
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	start := time.Now()
	imported, err := l.backend.LoadReader(r, isGLB)
	if err != nil {
		return nil, &LoadError{URL: name, Err: err}
	}
	return l.store(name, imported, start), nil
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

func (l *loader) Close() {
	l.mu.Lock()
	pool := l.pool
	l.mu.Unlock()
	if pool != nil {
		pool.Stop()
	}
}

// store converts imported data into a Model, applies the loader's model options and caches it.
// A concurrent load of the same name keeps the first stored model.
func (l *loader) store(name string, imported *model.ImportedModel, start time.Time) model.Model {
	m := model.FromImported(imported, l.modelOptions...)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.modelCache[name]; ok {
		return existing
	}
	l.modelCache[name] = m
	log.Printf("[Loader] loaded %q: %d meshes, %d vertices in %v", name, len(imported.Meshes), len(m.Vertices()), time.Since(start).Round(time.Microsecond))
	return m
}

// resolveBackend selects an appropriate loader backend based on the file extension.
func (l *loader) resolveBackend(name string) (loaderBackend, error) {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(name)))
	switch ext {
	case ".gltf", ".glb":
		if l.backend == nil {
			return nil, fmt.Errorf("%w: no backend configured", ErrUnsupportedFormat)
		}
		return l.backend, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// hostFS reads slash-separated paths, relative or absolute, from the operating system.
type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.FromSlash(name))
}
