// package renderer draws a scene graph through a camera into an RGBA
// surface. The renderer is a boundary: callers depend on the Renderer
// interface and the bundled software backend, and can swap in a GPU-backed
// implementation without touching the scene layer.
package renderer

import (
	"errors"
	"image"
	"sync"

	"github.com/NitaCristianu/thrash-motion-canvas/engine/camera"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

var (
	errNilRoot    = errors.New("renderer: scene root is required")
	errNilCamera  = errors.New("renderer: camera is required")
	errZeroExtent = errors.New("renderer: render extent must be positive")
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	backgroundColor [3]float32
	backgroundImage *image.RGBA
}

// Renderer turns a scene graph and camera into pixels.
type Renderer interface {
	// Render draws the subtree under root as seen by cam into a fresh
	// width x height surface.
	//
	// Parameters:
	//   - root: the scene root to draw
	//   - cam: the viewing camera (its aspect and matrices are refreshed)
	//   - width: output width in pixels
	//   - height: output height in pixels
	//
	// Returns:
	//   - *image.RGBA: the rendered surface
	//   - error: error if a precondition fails or the backend rejects the frame
	Render(root object.Object, cam *camera.Camera, width, height int) (*image.RGBA, error)

	// SetBackgroundColor sets the clear color used behind the scene.
	//
	// Parameters:
	//   - r, g, b: clear color channels in [0, 1]
	SetBackgroundColor(r, g, b float32)

	// SetBackgroundImage sets an image drawn behind the scene, stretched to
	// the render extent. Overrides the clear color while set.
	//
	// Parameters:
	//   - img: the background image, or nil to fall back to the clear color
	SetBackgroundImage(img *image.RGBA)

	// ClearBackground removes any background image and resets the clear
	// color to black.
	ClearBackground()
}

var _ Renderer = &renderer{}

// NewRenderer creates a renderer over the given backend type.
//
// Parameters:
//   - backendType: which backend implementation to construct
//   - opts: optional configuration
//
// Returns:
//   - Renderer: the new renderer
func NewRenderer(backendType RendererBackendType, opts ...RendererOption) Renderer {
	r := &renderer{backendType: backendType}
	for _, opt := range opts {
		opt(r)
	}
	if r.backend == nil {
		switch backendType {
		case BackendTypeSoftware:
			r.backend = newSoftwareRendererBackend()
		default:
			panic("renderer: unknown backend type")
		}
	}
	return r
}

func (r *renderer) Render(root object.Object, cam *camera.Camera, width, height int) (*image.RGBA, error) {
	if root == nil {
		return nil, errNilRoot
	}
	if cam == nil {
		return nil, errNilCamera
	}
	if width <= 0 || height <= 0 {
		return nil, errZeroExtent
	}

	r.mu.Lock()
	view := View{
		Root:            root,
		Camera:          cam,
		Width:           width,
		Height:          height,
		BackgroundColor: r.backgroundColor,
		BackgroundImage: r.backgroundImage,
	}
	backend := r.backend
	r.mu.Unlock()

	cam.SetAspect(float32(width) / float32(height))
	cam.UpdateProjection()
	return backend.Render(view)
}

func (r *renderer) SetBackgroundColor(red, green, blue float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgroundColor = [3]float32{red, green, blue}
}

func (r *renderer) SetBackgroundImage(img *image.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgroundImage = img
}

func (r *renderer) ClearBackground() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgroundImage = nil
	r.backgroundColor = [3]float32{}
}
