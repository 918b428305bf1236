package loader

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
)

var _ Backend = &textureBackend{}

// textureBackend loads standard image files (.png, .jpg) as textures.
type textureBackend struct{}

// Load reads and decodes the image at path.
//
// Parameters:
//   - path: the image file location
//
// Returns:
//   - *Asset: a KindTexture asset with the decoded image
//   - error: error if reading or decoding fails
func (b *textureBackend) Load(path string) (*Asset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	tex := &common.Texture{
		Name:     strings.TrimSuffix(filepath.Base(path), ext),
		Path:     path,
		MimeType: mime.TypeByExtension(ext),
	}
	img, err := tex.Decode()
	if err != nil {
		return nil, fmt.Errorf("loader: failed to decode texture %q: %w", path, err)
	}
	tex.Width = img.Bounds().Dx()
	tex.Height = img.Bounds().Dy()
	return &Asset{
		Path:    path,
		Kind:    KindTexture,
		Texture: tex,
		Image:   img,
	}, nil
}
