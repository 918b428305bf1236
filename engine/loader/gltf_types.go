// gltf_types.go contains the subset of glTF 2.0 spec data structures this
// loader deserializes: scene/node hierarchy, meshes, accessors, buffers, and
// base-color materials. Skeletal and animation data is out of scope here.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package loader

// gltfDocument represents the root of a glTF JSON document.
type gltfDocument struct {
	// Asset contains metadata about the glTF asset.
	Asset gltfAsset `json:"asset"`

	// Scene is the index of the default scene.
	Scene *int `json:"scene,omitempty"`

	// Scenes is an array of scenes.
	Scenes []gltfScene `json:"scenes,omitempty"`

	// Nodes is an array of nodes (transform hierarchy).
	Nodes []gltfNode `json:"nodes,omitempty"`

	// Meshes is an array of meshes.
	Meshes []gltfMesh `json:"meshes,omitempty"`

	// Accessors define how to interpret buffer data.
	Accessors []gltfAccessor `json:"accessors,omitempty"`

	// BufferViews define portions of buffers.
	BufferViews []gltfBufferView `json:"bufferViews,omitempty"`

	// Buffers reference binary data blobs.
	Buffers []gltfBuffer `json:"buffers,omitempty"`

	// Materials define surface shading parameters.
	Materials []gltfMaterial `json:"materials,omitempty"`
}

// gltfAsset holds document metadata; only the version is checked.
type gltfAsset struct {
	Version string `json:"version"`
}

// gltfScene lists the root node indices of one scene.
type gltfScene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

// gltfNode is one element of the transform hierarchy. Either Matrix or the
// TRS fields describe the local transform.
type gltfNode struct {
	Name        string     `json:"name,omitempty"`
	Mesh        *int       `json:"mesh,omitempty"`
	Children    []int      `json:"children,omitempty"`
	Matrix      []float32  `json:"matrix,omitempty"`
	Translation *[3]float32 `json:"translation,omitempty"`
	Rotation    *[4]float32 `json:"rotation,omitempty"` // x, y, z, w
	Scale       *[3]float32 `json:"scale,omitempty"`
}

// gltfMesh groups primitives sharing a node transform.
type gltfMesh struct {
	Name       string          `json:"name,omitempty"`
	Primitives []gltfPrimitive `json:"primitives"`
}

// gltfPrimitive is one drawable: attribute accessors plus optional indices
// and material.
type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Material   *int           `json:"material,omitempty"`
}

// gltfAccessor describes typed access into a buffer view.
type gltfAccessor struct {
	// BufferView is the index of the buffer view holding the data.
	BufferView *int `json:"bufferView,omitempty"`

	// ByteOffset is the offset into the buffer view.
	ByteOffset int `json:"byteOffset,omitempty"`

	// ComponentType is the data type of components.
	ComponentType int `json:"componentType"`

	// Count is the number of elements.
	Count int `json:"count"`

	// Type is the element shape ("SCALAR", "VEC3", ...).
	Type string `json:"type"`
}

// gltfBufferView describes a byte range of a buffer.
type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset,omitempty"`
	ByteLength int `json:"byteLength"`
	ByteStride int `json:"byteStride,omitempty"`
}

// gltfBuffer references a binary blob: a data URI, an external file, or (when
// the URI is empty in a GLB) the embedded binary chunk.
type gltfBuffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}

// gltfMaterial carries the PBR parameters this loader keeps: base color,
// metallic, roughness.
type gltfMaterial struct {
	Name                 string                    `json:"name,omitempty"`
	PBRMetallicRoughness *gltfPBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
}

// gltfPBRMetallicRoughness is the metallic-roughness parameter block.
type gltfPBRMetallicRoughness struct {
	BaseColorFactor []float64 `json:"baseColorFactor,omitempty"`
	MetallicFactor  *float64  `json:"metallicFactor,omitempty"`
	RoughnessFactor *float64  `json:"roughnessFactor,omitempty"`
}

// ComponentType constants
const (
	gltfComponentTypeUnsignedByte  = 5121
	gltfComponentTypeUnsignedShort = 5123
	gltfComponentTypeUnsignedInt   = 5125
	gltfComponentTypeFloat         = 5126
)

// glbHeader is the fixed-size GLB file header.
type glbHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// glbChunkHeader precedes each GLB chunk.
type glbChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32 // 0x4E4F534A for JSON, 0x004E4942 for BIN
}

// GLB magic number and chunk type constants
const (
	gltfGLBMagic     = 0x46546C67 // "glTF" in little-endian ASCII
	gltfGLBVersion   = 2
	gltfGLBChunkJSON = 0x4E4F534A // "JSON" in little-endian ASCII
	gltfGLBChunkBIN  = 0x004E4942 // "BIN\0" in little-endian ASCII
)
