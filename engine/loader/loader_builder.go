package loader

import (
	"strings"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderOption is a functional option for configuring a Loader via NewLoader.
type LoaderOption func(l *loader, workers *int)

// WithWorkers is an option builder that sets the size of the fetch worker pool.
//
// Parameters:
//   - n: number of workers (values below 1 are ignored)
//
// Returns:
//   - LoaderOption: a function that applies the worker count option to a loader
func WithWorkers(n int) LoaderOption {
	return func(_ *loader, workers *int) {
		if n >= 1 {
			*workers = n
		}
	}
}

// WithPool is an option builder that supplies an existing worker pool instead
// of creating one.
//
// Parameters:
//   - pool: the pool to use
//
// Returns:
//   - LoaderOption: a function that applies the pool option to a loader
func WithPool(pool worker.DynamicWorkerPool) LoaderOption {
	return func(l *loader, _ *int) {
		l.pool = pool
	}
}

// WithBackend is an option builder that registers or overrides the backend
// for a file extension.
//
// Parameters:
//   - ext: the extension including the dot (e.g. ".gltf"), matched
//     case-insensitively
//   - backend: the backend to register
//
// Returns:
//   - LoaderOption: a function that applies the backend option to a loader
func WithBackend(ext string, backend Backend) LoaderOption {
	return func(l *loader, _ *int) {
		l.backends[strings.ToLower(ext)] = backend
	}
}
