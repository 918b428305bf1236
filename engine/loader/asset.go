package loader

import (
	"image"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

// Kind identifies what a loaded asset contains.
type Kind int

const (
	// KindMesh is a scene graph template imported from a model file.
	KindMesh Kind = iota

	// KindTexture is a decoded image usable as a background or surface map.
	KindTexture

	// KindEnvironment is a decoded high-dynamic-range environment image.
	KindEnvironment
)

// Asset is one loaded resource. Immutable once stored in the cache; every
// caller for a path receives the same instance.
type Asset struct {
	// Path is the source location, also the cache key.
	Path string

	// Kind selects which payload fields are populated.
	Kind Kind

	// Object is the mesh template for KindMesh assets. Callers clone it
	// before splicing it into a live scene.
	Object object.Object

	// Texture carries the source metadata for image-based assets.
	Texture *common.Texture

	// Image is the decoded surface for KindTexture and KindEnvironment assets.
	Image *image.RGBA
}
