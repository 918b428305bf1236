// package window provides the preview window for rendered frames: a GLFW
// window with a WebGPU surface that RGBA frames are uploaded onto. Used by
// the example programs; the scene layer itself never depends on it.
package window

import (
	"fmt"
	"image"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a native preview window that frames can be presented to.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized, with pixel dimensions.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// Present uploads a rendered frame onto the window surface and displays
	// it. The frame is expected at the window's current pixel size; other
	// sizes are letterboxed by the surface copy being clipped.
	//
	// Parameters:
	//   - frame: the frame to display
	//
	// Returns:
	//   - error: error if the surface rejects the frame
	Present(frame *image.RGBA) error

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor for the underlying
	// native window, or nil before initialization.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true while the window is open.
	//
	// Returns:
	//   - bool: true if the window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close fails
	Close() error

	// ProcessMessages runs the window message loop. Blocks until the window
	// is closed, calling the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// previewWindow is the implementation of the Window interface.
type previewWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// presenter owns the WebGPU surface state, created lazily on the first
	// Present call.
	presenter *surfacePresenter

	onUpdate  func()
	onResize  func(width, height int)
	onScroll  func(delta float32)
	onKeyDown func(keyCode uint32)
}

var _ Window = &previewWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &previewWindow{
		title:  "Scene Preview",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("window: failed to create platform window: %v", err))
	}
	return w
}

func (w *previewWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *previewWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *previewWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *previewWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *previewWindow) Present(frame *image.RGBA) error {
	if frame == nil {
		return fmt.Errorf("window: nil frame")
	}
	if w.presenter == nil {
		descriptor := w.SurfaceDescriptor()
		if descriptor == nil {
			return fmt.Errorf("window: surface is not available")
		}
		p, err := newSurfacePresenter(descriptor)
		if err != nil {
			return err
		}
		w.presenter = p
	}
	return w.presenter.present(frame, w.width, w.height)
}

func (w *previewWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *previewWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *previewWindow) Close() error {
	if w.presenter != nil {
		w.presenter.release()
		w.presenter = nil
	}
	return platformCloseWindow(w)
}

func (w *previewWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *previewWindow) Width() int {
	return w.width
}

func (w *previewWindow) Height() int {
	return w.height
}
