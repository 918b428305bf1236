package loader

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
)

var _ Backend = &hdrBackend{}

// hdrBackend loads Radiance RGBE (.hdr) environment images. Scanlines are
// decoded from either the new-style RLE encoding or flat RGBE pixels, then
// tone mapped to 8-bit with a gamma of 1/2.2.
type hdrBackend struct{}

var errNotRadiance = errors.New("loader: not a Radiance HDR file")

// Load reads and decodes the environment image at path.
//
// Parameters:
//   - path: the .hdr file location
//
// Returns:
//   - *Asset: a KindEnvironment asset with the tone-mapped image
//   - error: error if reading or decoding fails
func (b *hdrBackend) Load(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to open %q: %w", path, err)
	}
	defer f.Close()

	img, err := decodeHDR(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("loader: failed to decode environment %q: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	return &Asset{
		Path: path,
		Kind: KindEnvironment,
		Texture: &common.Texture{
			Name:   strings.TrimSuffix(filepath.Base(path), ext),
			Path:   path,
			Width:  img.Bounds().Dx(),
			Height: img.Bounds().Dy(),
		},
		Image: img,
	}, nil
}

// decodeHDR parses the Radiance header and scanlines into an 8-bit image.
func decodeHDR(r *bufio.Reader) (*image.RGBA, error) {
	magic, err := readHDRLine(r)
	if err != nil {
		return nil, err
	}
	if magic != "#?RADIANCE" && magic != "#?RGBE" {
		return nil, errNotRadiance
	}

	// Header variables end at the first blank line. Only the format variable
	// is validated; exposure and color correction are ignored.
	for {
		line, err := readHDRLine(r)
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "FORMAT=") && line != "FORMAT=32-bit_rle_rgbe" {
			return nil, fmt.Errorf("loader: unsupported HDR format %q", strings.TrimPrefix(line, "FORMAT="))
		}
	}

	resolution, err := readHDRLine(r)
	if err != nil {
		return nil, err
	}
	var height, width int
	if _, err := fmt.Sscanf(resolution, "-Y %d +X %d", &height, &width); err != nil {
		return nil, fmt.Errorf("loader: unsupported HDR resolution line %q", resolution)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("loader: invalid HDR dimensions %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanline := make([]byte, width*4)
	for y := 0; y < height; y++ {
		if err := readHDRScanline(r, scanline, width); err != nil {
			return nil, err
		}
		for x := 0; x < width; x++ {
			r8, g8, b8 := rgbeToRGB8(scanline[x*4], scanline[x*4+1], scanline[x*4+2], scanline[x*4+3])
			off := img.PixOffset(x, y)
			img.Pix[off] = r8
			img.Pix[off+1] = g8
			img.Pix[off+2] = b8
			img.Pix[off+3] = 0xFF
		}
	}
	return img, nil
}

// readHDRLine reads one newline-terminated header line.
func readHDRLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readHDRScanline fills out with width RGBE pixels, handling both the
// new-style RLE encoding (component-planar with run/dump packets) and flat
// pixel streams.
func readHDRScanline(r *bufio.Reader, out []byte, width int) error {
	header := make([]byte, 4)
	if _, err := io.ReadFull(r, header); err != nil {
		return err
	}

	// New-style RLE scanlines start with 0x02 0x02 followed by the width.
	if header[0] == 2 && header[1] == 2 && int(header[2])<<8|int(header[3]) == width {
		for component := 0; component < 4; component++ {
			x := 0
			for x < width {
				count, err := r.ReadByte()
				if err != nil {
					return err
				}
				if count > 128 {
					// Run: one value repeated count-128 times.
					value, err := r.ReadByte()
					if err != nil {
						return err
					}
					n := int(count) - 128
					if x+n > width {
						return errors.New("loader: HDR run overflows scanline")
					}
					for i := 0; i < n; i++ {
						out[(x+i)*4+component] = value
					}
					x += n
				} else {
					// Dump: count literal values.
					n := int(count)
					if x+n > width {
						return errors.New("loader: HDR dump overflows scanline")
					}
					for i := 0; i < n; i++ {
						value, err := r.ReadByte()
						if err != nil {
							return err
						}
						out[(x+i)*4+component] = value
					}
					x += n
				}
			}
		}
		return nil
	}

	// Flat scanline: the four header bytes are the first pixel.
	copy(out[0:4], header)
	_, err := io.ReadFull(r, out[4:width*4])
	return err
}

// rgbeToRGB8 converts one shared-exponent RGBE pixel to gamma-corrected
// 8-bit channels.
func rgbeToRGB8(r, g, b, e byte) (byte, byte, byte) {
	if e == 0 {
		return 0, 0, 0
	}
	scale := math.Ldexp(1, int(e)-136) // 2^(e-128) / 256
	return toneMapChannel(float64(r) * scale),
		toneMapChannel(float64(g) * scale),
		toneMapChannel(float64(b) * scale)
}

// toneMapChannel applies gamma 1/2.2 and clamps to [0, 255].
func toneMapChannel(v float64) byte {
	if v <= 0 {
		return 0
	}
	mapped := math.Pow(v, 1/2.2) * 255
	if mapped >= 255 {
		return 255
	}
	return byte(mapped)
}
