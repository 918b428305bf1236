package window

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// surfacePresenter owns the WebGPU objects needed to blit RGBA frames onto a
// window surface: instance, adapter, device, queue, and the configured
// surface itself.
type surfacePresenter struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	format wgpu.TextureFormat

	configuredWidth  int
	configuredHeight int
}

// newSurfacePresenter brings up the WebGPU stack over a native surface.
//
// Parameters:
//   - descriptor: the platform surface descriptor
//
// Returns:
//   - *surfacePresenter: the presenter
//   - error: error if adapter or device acquisition fails
func newSurfacePresenter(descriptor *wgpu.SurfaceDescriptor) (*surfacePresenter, error) {
	p := &surfacePresenter{
		instance: wgpu.CreateInstance(nil),
	}
	p.surface = p.instance.CreateSurface(descriptor)

	adapter, err := p.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: p.surface,
	})
	if err != nil {
		p.release()
		return nil, fmt.Errorf("window: failed to acquire adapter: %w", err)
	}
	p.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Preview Device",
	})
	if err != nil {
		p.release()
		return nil, fmt.Errorf("window: failed to acquire device: %w", err)
	}
	p.device = device
	p.queue = device.GetQueue()
	return p, nil
}

// configure (re)configures the surface for the given pixel size. CopyDst
// usage lets frames be written straight onto the surface texture without a
// render pass.
func (p *surfacePresenter) configure(width, height int) {
	capabilities := p.surface.GetCapabilities(p.adapter)
	p.format = capabilities.Formats[0]

	p.surface.Configure(p.adapter, p.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopyDst,
		Format:      p.format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	p.configuredWidth = width
	p.configuredHeight = height
}

// present writes one frame onto the current surface texture and presents it.
func (p *surfacePresenter) present(frame *image.RGBA, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("window: surface size %dx%d is not drawable", width, height)
	}
	if width != p.configuredWidth || height != p.configuredHeight {
		p.configure(width, height)
	}

	surfaceTexture, err := p.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("window: failed to acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	// Clip the copy to the overlap of frame and surface.
	copyWidth := frame.Bounds().Dx()
	if copyWidth > width {
		copyWidth = width
	}
	copyHeight := frame.Bounds().Dy()
	if copyHeight > height {
		copyHeight = height
	}
	if copyWidth <= 0 || copyHeight <= 0 {
		return fmt.Errorf("window: empty frame")
	}

	pixels := packFramePixels(frame, copyWidth, copyHeight, p.format)

	p.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  surfaceTexture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(copyWidth * 4),
			RowsPerImage: uint32(copyHeight),
		},
		&wgpu.Extent3D{
			Width:              uint32(copyWidth),
			Height:             uint32(copyHeight),
			DepthOrArrayLayers: 1,
		},
	)

	p.surface.Present()
	return nil
}

// packFramePixels tightly packs the frame's pixel rows, swapping to BGRA
// when the surface format requires it.
func packFramePixels(frame *image.RGBA, width, height int, format wgpu.TextureFormat) []byte {
	swapRB := format == wgpu.TextureFormatBGRA8Unorm || format == wgpu.TextureFormatBGRA8UnormSrgb

	out := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		src := frame.Pix[y*frame.Stride : y*frame.Stride+width*4]
		dst := out[y*width*4:]
		if swapRB {
			for x := 0; x < width*4; x += 4 {
				dst[x] = src[x+2]
				dst[x+1] = src[x+1]
				dst[x+2] = src[x]
				dst[x+3] = src[x+3]
			}
		} else {
			copy(dst, src)
		}
	}
	return out
}

// release tears down the WebGPU objects in reverse acquisition order.
func (p *surfacePresenter) release() {
	if p.device != nil {
		p.device.Release()
		p.device = nil
		p.queue = nil
	}
	if p.adapter != nil {
		p.adapter.Release()
		p.adapter = nil
	}
	if p.surface != nil {
		p.surface.Release()
		p.surface = nil
	}
	if p.instance != nil {
		p.instance.Release()
		p.instance = nil
	}
}
