// package engine exposes the Experience orchestrator: one live session over
// an imported scene document, owning the runtime graph, the selected camera,
// the asset loader, the frame cache, and the renderer.
package engine

import (
	"image"
	"log"
	"sync"
	"time"

	"github.com/NitaCristianu/thrash-motion-canvas/engine/camera"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/framecache"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/geometry"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/importer"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/loader"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/mesh"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/profiler"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/renderer"
)

// experience is the implementation of the Experience interface.
type experience struct {
	scene  *object.Group
	camera *camera.Camera

	geometries map[string]geometry.Geometry
	materials  map[string]*material.Material

	loader   loader.Loader
	frames   *framecache.Cache
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool
	profilerMu       sync.Mutex
}

// Experience is one scene session: import a document, animate it, render it.
// The animation layer is cooperatively single-threaded; drive it from one
// goroutine. Asset loading is the only asynchronous boundary.
type Experience interface {
	// Scene returns the root of the runtime object graph.
	//
	// Returns:
	//   - *object.Group: the scene root, never nil
	Scene() *object.Group

	// Camera returns the selected scene camera, or nil when the document
	// carried none.
	//
	// Returns:
	//   - *camera.Camera: the camera, or nil
	Camera() *camera.Camera

	// GeometryTable returns a copy of the uuid-keyed geometry table built at
	// import.
	//
	// Returns:
	//   - map[string]geometry.Geometry: uuid to geometry
	GeometryTable() map[string]geometry.Geometry

	// MaterialTable returns a copy of the uuid-keyed material table built at
	// import.
	//
	// Returns:
	//   - map[string]*material.Material: uuid to material
	MaterialTable() map[string]*material.Material

	// Find returns the first object named name in depth-first order, or nil
	// with a logged warning when no match exists.
	//
	// Parameters:
	//   - name: the name to match exactly
	//
	// Returns:
	//   - object.Object: the first match, or nil
	Find(name string) object.Object

	// LoadAsset requests an external asset through the session loader. The
	// callback fires on a worker goroutine once the asset is available or
	// has failed.
	//
	// Parameters:
	//   - path: the asset location
	//   - onReady: completion callback
	LoadAsset(path string, onReady loader.Callback)

	// IsLoading reports whether any asset fetch is still outstanding.
	//
	// Returns:
	//   - bool: true while loads are in flight
	IsLoading() bool

	// Instantiate clones template once per named target already present in
	// the scene, copies the target's transform onto the clone, applies the
	// configured deltas, and replaces the target in-place. Targets with no
	// match are skipped with a logged warning.
	//
	// Parameters:
	//   - template: the object to clone, typically a loaded mesh asset
	//   - targets: names of scene nodes to replace
	//   - opts: optional transform deltas
	//
	// Returns:
	//   - int: how many targets were replaced
	Instantiate(template object.Object, targets []string, opts ...InstantiateOption) int

	// SetBackground loads the texture at path and installs it as the render
	// background once the load completes.
	//
	// Parameters:
	//   - path: the texture location
	SetBackground(path string)

	// SetEnvironment loads the environment image at path and installs it as
	// the render background once the load completes.
	//
	// Parameters:
	//   - path: the environment location
	SetEnvironment(path string)

	// Render draws the current scene through the scene camera at the given
	// extent. Called once per output frame by the host.
	//
	// Parameters:
	//   - width: output width in pixels
	//   - height: output height in pixels
	//
	// Returns:
	//   - *image.RGBA: the rendered frame
	//   - error: error if the scene cannot be rendered
	Render(width, height int) (*image.RGBA, error)

	// Snapshot captures a flat-shaded silhouette of the current scene:
	// every mesh is drawn with an unlit material (gray when the original
	// material was transparent, white otherwise) on a black background, and
	// the result is stored in the frame cache. Returns nil with a logged
	// warning when the session has no camera, no scene, or a zero extent.
	//
	// Parameters:
	//   - width: output width in pixels
	//   - height: output height in pixels
	//   - id: frame cache key; a fresh "snapshot" id is generated when empty
	//
	// Returns:
	//   - *framecache.Entry: the stored entry, or nil
	Snapshot(width, height int, id string) *framecache.Entry

	// Frames returns the session frame cache.
	//
	// Returns:
	//   - *framecache.Cache: the frame cache
	Frames() *framecache.Cache

	// EnableProfiler enables frame timing output to the log around the
	// render hook.
	EnableProfiler()

	// DisableProfiler disables frame timing output.
	DisableProfiler()
}

var _ Experience = &experience{}

// NewExperience imports a scene document and builds a session around it.
// Import is lenient: unsupported node kinds degrade to containers and bad
// references are skipped, so only undecodable JSON fails construction.
//
// Parameters:
//   - documentJSON: the scene document
//   - opts: optional configuration (loader, renderer, frame cache overrides)
//
// Returns:
//   - Experience: the new session
//   - error: error if the document cannot be decoded
func NewExperience(documentJSON []byte, opts ...ExperienceOption) (Experience, error) {
	result, err := importer.Import(documentJSON)
	if err != nil {
		return nil, err
	}

	e := &experience{
		scene:      result.Scene,
		camera:     result.Camera,
		geometries: result.Geometries,
		materials:  result.Materials,
		profiler:   profiler.NewProfiler(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.loader == nil {
		e.loader = loader.NewLoader()
	}
	if e.frames == nil {
		e.frames = framecache.NewCache()
	}
	if e.renderer == nil {
		e.renderer = renderer.NewRenderer(renderer.BackendTypeSoftware)
	}
	return e, nil
}

func (e *experience) Scene() *object.Group {
	return e.scene
}

func (e *experience) Camera() *camera.Camera {
	return e.camera
}

func (e *experience) GeometryTable() map[string]geometry.Geometry {
	table := make(map[string]geometry.Geometry, len(e.geometries))
	for k, v := range e.geometries {
		table[k] = v
	}
	return table
}

func (e *experience) MaterialTable() map[string]*material.Material {
	table := make(map[string]*material.Material, len(e.materials))
	for k, v := range e.materials {
		table[k] = v
	}
	return table
}

func (e *experience) Find(name string) object.Object {
	found := object.Find(e.scene, name)
	if found == nil {
		log.Printf("engine: no object named %q in scene", name)
	}
	return found
}

func (e *experience) LoadAsset(path string, onReady loader.Callback) {
	e.loader.Load(path, onReady)
}

func (e *experience) IsLoading() bool {
	return e.loader.IsLoading()
}

func (e *experience) Instantiate(template object.Object, targets []string, opts ...InstantiateOption) int {
	if template == nil {
		log.Printf("engine: instantiate called with nil template")
		return 0
	}
	var cfg instantiateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	replaced := 0
	for _, name := range targets {
		target := object.Find(e.scene, name)
		if target == nil {
			log.Printf("engine: instantiate target %q not found", name)
			continue
		}
		parent := target.Base().Parent()
		if parent == nil {
			log.Printf("engine: instantiate target %q has no parent", name)
			continue
		}

		clone := template.Clone(true)
		clone.Base().CopyTransform(target.Base())
		clone.Base().SetName(name)
		applyInstantiateDeltas(clone.Base(), cfg)
		parent.Replace(target, clone)
		replaced++
	}
	return replaced
}

// applyInstantiateDeltas applies the optional per-instance transform deltas:
// additive position, post-multiplied rotation, multiplicative scale.
func applyInstantiateDeltas(base *object.Node, cfg instantiateConfig) {
	if cfg.positionDelta != nil {
		base.SetPosition(base.Position().Add(*cfg.positionDelta))
	}
	if cfg.rotationDelta != nil {
		base.SetQuaternion(base.Quaternion().Mul(*cfg.rotationDelta).Normalize())
	}
	if cfg.scaleDelta != nil {
		base.SetScale(base.Scale().Mul(*cfg.scaleDelta))
	}
}

func (e *experience) SetBackground(path string) {
	e.applyBackground(path, "background")
}

func (e *experience) SetEnvironment(path string) {
	e.applyBackground(path, "environment")
}

// applyBackground defers the renderer update until the image is loaded.
func (e *experience) applyBackground(path, role string) {
	e.loader.Load(path, func(asset *loader.Asset, err error) {
		if err != nil {
			log.Printf("engine: %s %q failed to load: %v", role, path, err)
			return
		}
		if asset.Image == nil {
			log.Printf("engine: %s %q carries no image data", role, path)
			return
		}
		e.renderer.SetBackgroundImage(asset.Image)
	})
}

func (e *experience) Render(width, height int) (*image.RGBA, error) {
	start := time.Now()
	img, err := e.renderer.Render(e.scene, e.camera, width, height)
	if err != nil {
		return nil, err
	}

	e.profilerMu.Lock()
	if e.profilingEnabled {
		e.profiler.Observe(time.Since(start))
	}
	e.profilerMu.Unlock()
	return img, nil
}

func (e *experience) Snapshot(width, height int, id string) *framecache.Entry {
	if e.camera == nil {
		log.Printf("engine: snapshot skipped, session has no camera")
		return nil
	}
	if e.scene == nil || len(e.scene.Base().Children()) == 0 {
		log.Printf("engine: snapshot skipped, scene is empty")
		return nil
	}
	if width <= 0 || height <= 0 {
		log.Printf("engine: snapshot skipped, extent %dx%d is not drawable", width, height)
		return nil
	}

	silhouette := e.scene.Clone(true)
	flattenMaterials(silhouette)

	snapCam := findCamera(silhouette)
	if snapCam == nil {
		snapCam = e.camera.Clone(false).(*camera.Camera)
	}

	// A fresh renderer keeps the silhouette free of the session background.
	offscreen := renderer.NewRenderer(renderer.BackendTypeSoftware)
	img, err := offscreen.Render(silhouette, snapCam, width, height)
	if err != nil {
		log.Printf("engine: snapshot render failed: %v", err)
		return nil
	}

	if id == "" {
		id = e.frames.CreateID("snapshot")
	}
	entry := e.frames.Set(id, img)
	return &entry
}

// flattenMaterials swaps every mesh material for a flat unlit one: gray for
// transparent originals, white otherwise.
func flattenMaterials(root object.Object) {
	object.Traverse(root, func(o object.Object) bool {
		m, ok := o.(*mesh.Mesh)
		if !ok {
			return true
		}
		if mat := m.Material(); mat != nil && mat.Transparent() {
			m.SetMaterial(material.NewFlat(0.5, 0.5, 0.5))
		} else {
			m.SetMaterial(material.NewFlat(1, 1, 1))
		}
		return true
	})
}

// findCamera returns the first camera in the subtree, or nil.
func findCamera(root object.Object) *camera.Camera {
	var found *camera.Camera
	object.Traverse(root, func(o object.Object) bool {
		if c, ok := o.(*camera.Camera); ok {
			found = c
			return false
		}
		return true
	})
	return found
}

func (e *experience) Frames() *framecache.Cache {
	return e.frames
}

func (e *experience) EnableProfiler() {
	e.profilerMu.Lock()
	defer e.profilerMu.Unlock()
	e.profilingEnabled = true
}

func (e *experience) DisableProfiler() {
	e.profilerMu.Lock()
	defer e.profilerMu.Unlock()
	e.profilingEnabled = false
}
