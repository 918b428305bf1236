package renderer

import (
	"image"

	"github.com/NitaCristianu/thrash-motion-canvas/engine/camera"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

// RendererBackendType selects which backend implementation a renderer uses.
type RendererBackendType int

const (
	// BackendTypeSoftware is the bundled CPU rasterizer.
	BackendTypeSoftware RendererBackendType = iota
)

// View is the per-frame input handed to a backend: the scene, the camera
// with refreshed matrices, the output extent, and the background.
type View struct {
	// Root is the scene subtree to draw.
	Root object.Object

	// Camera is the viewing camera. Its view and projection matrices are
	// current when the backend receives the View.
	Camera *camera.Camera

	// Width and Height are the output extent in pixels.
	Width  int
	Height int

	// BackgroundColor is the clear color, used when BackgroundImage is nil.
	BackgroundColor [3]float32

	// BackgroundImage, when non-nil, is stretched behind the scene.
	BackgroundImage *image.RGBA
}

// RendererBackend rasterizes one frame. Implementations may keep scratch
// buffers between frames; the renderer serializes access.
type RendererBackend interface {
	// Render draws one frame.
	//
	// Parameters:
	//   - view: the frame input
	//
	// Returns:
	//   - *image.RGBA: the rendered surface
	//   - error: error if the frame cannot be drawn
	Render(view View) (*image.RGBA, error)
}
