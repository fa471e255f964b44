package loader

import (
	"io/fs"

	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithFS is an option builder that reads model files and their external buffers from fsys
// instead of the host file system. Use it with an embed.FS to ship default assets.
//
// Parameters:
//   - fsys: the file system to read from
//
// Returns:
//   - LoaderBuilderOption: a function that applies the file system option to a loader
func WithFS(fsys fs.FS) LoaderBuilderOption {
	return func(l *loader) {
		if fsys != nil {
			l.fsys = fsys
		}
	}
}

// WithWorkers is an option builder that sets the number of workers LoadAsync uses.
//
// Parameters:
//   - n: the number of workers, at least 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithModelOptions is an option builder that applies model options (scale, shadow casting) to
// every model this loader produces.
func WithModelOptions(options ...model.ModelBuilderOption) LoaderBuilderOption {
	return func(l *loader) {
		l.modelOptions = append(l.modelOptions, options...)
	}
}

// WithModel is an option builder that pre-populates the model cache with a model.
//
// Parameters:
//   - key: the cache key for the model
//   - model: the model to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the model option to a loader
func WithModel(key string, model model.Model) LoaderBuilderOption {
	return func(l *loader) {
		l.modelCache[key] = model
	}
}
