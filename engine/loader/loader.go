// package loader provides deduplicated, keyed asynchronous loading of
// external mesh, texture, and environment assets. Every load completes on a
// worker goroutine, never within the caller's turn, so callers see a uniform
// always-asynchronous contract whether or not the asset was already cached.
package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Callback receives the loaded asset, or the load error. Exactly one of the
// two is non-nil.
type Callback func(asset *Asset, err error)

// Backend loads one asset format. Implementations are selected by file
// extension and must be safe for concurrent use.
type Backend interface {
	// Load reads and decodes the resource at path.
	//
	// Parameters:
	//   - path: the resource location
	//
	// Returns:
	//   - *Asset: the decoded asset
	//   - error: error if reading or decoding fails
	Load(path string) (*Asset, error)
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.Mutex

	cache   map[string]*Asset
	pending map[string][]Callback

	// outstanding counts external fetches in flight. Clamped at zero on
	// decrement so a stray failure can never wedge IsLoading.
	outstanding int

	pool     worker.DynamicWorkerPool
	taskID   atomic.Int64
	backends map[string]Backend
}

// Loader is the public-facing interface for asynchronous asset loading.
// A loader instance belongs to one session; create it alongside the
// orchestrator and discard it with it.
type Loader interface {
	// Load requests the resource at path and invokes onReady when it is
	// available or has failed. The callback always runs on a worker
	// goroutine, even on a cache hit. Concurrent requests for the same
	// in-flight path share a single external fetch.
	//
	// Parameters:
	//   - path: the resource location; also the cache key
	//   - onReady: completion callback (nil is ignored)
	Load(path string, onReady Callback)

	// IsLoading reports whether any external fetch is still outstanding.
	//
	// Returns:
	//   - bool: true while the outstanding-fetch counter is above zero
	IsLoading() bool

	// Get returns the cached asset for path without triggering a load.
	//
	// Returns:
	//   - *Asset: the cached asset, or nil
	//   - bool: true if the asset is cached
	Get(path string) (*Asset, bool)

	// Clear empties the asset cache. In-flight loads complete and re-populate
	// the cache afterward.
	Clear()
}

var _ Loader = &loader{}

// NewLoader creates a loader with the default format backends (.gltf/.glb
// meshes, .png/.jpg/.jpeg textures, .hdr environments) and a dynamic worker
// pool for fetch fan-out.
//
// Parameters:
//   - opts: optional configuration (worker count, backend overrides)
//
// Returns:
//   - Loader: the new loader
func NewLoader(opts ...LoaderOption) Loader {
	l := &loader{
		cache:   make(map[string]*Asset),
		pending: make(map[string][]Callback),
		backends: map[string]Backend{
			".gltf": &gltfBackend{},
			".glb":  &gltfBackend{},
			".png":  &textureBackend{},
			".jpg":  &textureBackend{},
			".jpeg": &textureBackend{},
			".hdr":  &hdrBackend{},
		},
	}
	workers := 4
	for _, opt := range opts {
		opt(l, &workers)
	}
	if l.pool == nil {
		l.pool = worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
	}
	return l
}

func (l *loader) Load(path string, onReady Callback) {
	if onReady == nil {
		onReady = func(*Asset, error) {}
	}

	l.mu.Lock()

	if asset, ok := l.cache[path]; ok {
		// Hit: still deferred to a worker so the callback never runs inside
		// the caller's turn.
		l.submit(func() {
			onReady(asset, nil)
		})
		l.mu.Unlock()
		return
	}

	if _, inFlight := l.pending[path]; inFlight {
		// Someone is already fetching this path; ride along.
		l.pending[path] = append(l.pending[path], onReady)
		l.mu.Unlock()
		return
	}

	l.pending[path] = []Callback{onReady}
	l.outstanding++
	backend, ok := l.backends[strings.ToLower(filepath.Ext(path))]
	l.mu.Unlock()

	l.submit(func() {
		var asset *Asset
		var err error
		if !ok {
			err = fmt.Errorf("loader: unsupported asset extension %q", filepath.Ext(path))
		} else {
			asset, err = backend.Load(path)
		}
		l.finish(path, asset, err)
	})
}

// finish records the fetch result and fires every callback queued for path.
func (l *loader) finish(path string, asset *Asset, err error) {
	l.mu.Lock()
	callbacks := l.pending[path]
	delete(l.pending, path)
	if err == nil && asset != nil {
		l.cache[path] = asset
	}
	if l.outstanding > 0 {
		l.outstanding--
	}
	l.mu.Unlock()

	if err != nil {
		log.Printf("loader: failed to load %q: %v", path, err)
	}
	for _, cb := range callbacks {
		cb(asset, err)
	}
}

// submit queues fn on the worker pool.
func (l *loader) submit(fn func()) {
	id := int(l.taskID.Add(1))
	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			fn()
			return nil, nil
		},
	})
}

func (l *loader) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outstanding > 0
}

func (l *loader) Get(path string) (*Asset, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	asset, ok := l.cache[path]
	return asset, ok
}

func (l *loader) Clear() {
	l.mu.Lock()
	l.cache = make(map[string]*Asset)
	l.mu.Unlock()
}
