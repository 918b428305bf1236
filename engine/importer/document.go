package importer

import "encoding/json"

// documentRoot is the top level of a scene document. The scene block may
// appear under a "scene" wrapper or at the root itself.
type documentRoot struct {
	// Scene is the optional wrapper block. When present it takes precedence
	// over the root-level fields.
	Scene *sceneBlock `json:"scene"`

	// Geometries, Materials, and Object mirror sceneBlock for documents that
	// omit the wrapper.
	Geometries []geometryEntry `json:"geometries"`
	Materials  []materialEntry `json:"materials"`
	Object     *docNode        `json:"object"`
}

// block resolves the working scene block: the wrapper when present, otherwise
// the root-level fields.
func (d *documentRoot) block() sceneBlock {
	if d.Scene != nil {
		return *d.Scene
	}
	return sceneBlock{
		Geometries: d.Geometries,
		Materials:  d.Materials,
		Object:     d.Object,
	}
}

// sceneBlock holds the geometry table, material table, and root object tree.
type sceneBlock struct {
	Geometries []geometryEntry `json:"geometries"`
	Materials  []materialEntry `json:"materials"`
	Object     *docNode        `json:"object"`
}

// geometryEntry is one element of the document's geometries array. Fields not
// meaningful for the entry's type are simply absent.
type geometryEntry struct {
	UUID string `json:"uuid"`
	Type string `json:"type"`

	// Box-like fields.
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Depth         float64 `json:"depth"`
	WidthSegments int     `json:"widthSegments"`
	HeightSegments int    `json:"heightSegments"`
	DepthSegments int     `json:"depthSegments"`

	// Sphere-like fields.
	Radius      float64 `json:"radius"`
	PhiStart    float64 `json:"phiStart"`
	PhiLength   float64 `json:"phiLength"`
	ThetaStart  float64 `json:"thetaStart"`
	ThetaLength float64 `json:"thetaLength"`
}

// materialEntry is one element of the document's materials array. Color and
// emissive accept either a packed number or a component array, so they decode
// as loose values.
type materialEntry struct {
	UUID string `json:"uuid"`
	Type string `json:"type"`
	Name string `json:"name"`

	Color             any      `json:"color"`
	Roughness         *float64 `json:"roughness"`
	Metalness         *float64 `json:"metalness"`
	Emissive          any      `json:"emissive"`
	EmissiveIntensity *float64 `json:"emissiveIntensity"`
	Wireframe         bool     `json:"wireframe"`
	FlatShading       bool     `json:"flatShading"`
	Opacity           *float64 `json:"opacity"`
	Transparent       bool     `json:"transparent"`
	Side              *int     `json:"side"`
}

// docNode is one node of the document's object tree. The type tag selects
// which of the optional fields are meaningful.
type docNode struct {
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	UUID     string    `json:"uuid"`
	Matrix   []float32 `json:"matrix"`
	Children []docNode `json:"children"`

	// Mesh fields: uuid references into the geometry/material tables.
	Geometry string `json:"geometry"`
	Material string `json:"material"`

	// Light fields.
	Color     any             `json:"color"`
	Intensity *float64        `json:"intensity"`
	Distance  float64         `json:"distance"`
	Decay     *float64        `json:"decay"`
	Angle     *float64        `json:"angle"`
	Penumbra  float64         `json:"penumbra"`
	Shadow    json.RawMessage `json:"shadow"`
	Target    string          `json:"target"`

	// Camera fields.
	Fov    *float64 `json:"fov"`
	Aspect *float64 `json:"aspect"`
	Near   *float64 `json:"near"`
	Far    *float64 `json:"far"`
}

// nodeKind is the closed set of node variants the importer materializes.
// Anything outside the enumerated set decodes to kindUnsupported and becomes
// a named empty container, so unknown schema extensions never abort an import.
type nodeKind int

const (
	kindGroup nodeKind = iota
	kindMesh
	kindCamera
	kindAmbientLight
	kindDirectionalLight
	kindPointLight
	kindSpotLight
	kindUnsupported
)

// kindOf classifies a document node's type tag.
func kindOf(docType string) nodeKind {
	switch docType {
	case "Group", "Object3D", "Scene":
		return kindGroup
	case "Mesh":
		return kindMesh
	case "PerspectiveCamera":
		return kindCamera
	case "AmbientLight":
		return kindAmbientLight
	case "DirectionalLight":
		return kindDirectionalLight
	case "PointLight":
		return kindPointLight
	case "SpotLight":
		return kindSpotLight
	default:
		return kindUnsupported
	}
}
