package loader

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/geometry"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/mesh"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

var (
	errInvalidGLBMagic    = errors.New("loader: invalid GLB magic number")
	errUnsupportedVersion = errors.New("loader: unsupported glTF version")
	errMissingJSONChunk   = errors.New("loader: GLB file missing JSON chunk")
)

var _ Backend = &gltfBackend{}

// gltfBackend imports .gltf and .glb model files into scene graph templates.
type gltfBackend struct{}

// Load reads the model file at path and builds a group of meshes mirroring
// its default scene hierarchy.
//
// Parameters:
//   - path: the model file location
//
// Returns:
//   - *Asset: a KindMesh asset whose Object is the imported template
//   - error: error if the file cannot be read or parsed
func (b *gltfBackend) Load(path string) (*Asset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read %q: %w", path, err)
	}

	var jsonData []byte
	var binChunk []byte
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		jsonData, binChunk, err = parseGLB(raw)
		if err != nil {
			return nil, err
		}
	} else {
		jsonData = raw
	}

	var doc gltfDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("loader: failed to decode glTF JSON: %w", err)
	}

	buffers, err := resolveBuffers(&doc, filepath.Dir(path), binChunk)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	root, err := buildSceneGraph(&doc, buffers, name)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Path:   path,
		Kind:   KindMesh,
		Object: root,
	}, nil
}

// parseGLB splits a binary glTF container into its JSON and BIN chunks.
func parseGLB(data []byte) (jsonChunk, binChunk []byte, err error) {
	if len(data) < 12 {
		return nil, nil, errInvalidGLBMagic
	}
	var header glbHeader
	header.Magic = binary.LittleEndian.Uint32(data[0:4])
	header.Version = binary.LittleEndian.Uint32(data[4:8])
	header.Length = binary.LittleEndian.Uint32(data[8:12])

	if header.Magic != gltfGLBMagic {
		return nil, nil, errInvalidGLBMagic
	}
	if header.Version != gltfGLBVersion {
		return nil, nil, errUnsupportedVersion
	}

	offset := 12
	for offset+8 <= len(data) {
		chunkLength := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8
		if offset+chunkLength > len(data) {
			return nil, nil, fmt.Errorf("loader: GLB chunk exceeds file length")
		}
		switch chunkType {
		case gltfGLBChunkJSON:
			jsonChunk = data[offset : offset+chunkLength]
		case gltfGLBChunkBIN:
			binChunk = data[offset : offset+chunkLength]
		}
		// Chunks are 4-byte aligned.
		offset += (chunkLength + 3) &^ 3
	}

	if jsonChunk == nil {
		return nil, nil, errMissingJSONChunk
	}
	return jsonChunk, binChunk, nil
}

// resolveBuffers materializes every buffer in the document: embedded data
// URIs, files relative to baseDir, or the GLB binary chunk for a URI-less
// buffer.
func resolveBuffers(doc *gltfDocument, baseDir string, binChunk []byte) ([][]byte, error) {
	buffers := make([][]byte, len(doc.Buffers))
	for i, buf := range doc.Buffers {
		switch {
		case buf.URI == "":
			if binChunk == nil {
				return nil, fmt.Errorf("loader: buffer %d has no URI and no binary chunk is present", i)
			}
			buffers[i] = binChunk
		case strings.HasPrefix(buf.URI, "data:"):
			comma := strings.IndexByte(buf.URI, ',')
			if comma < 0 {
				return nil, fmt.Errorf("loader: buffer %d has a malformed data URI", i)
			}
			decoded, err := base64.StdEncoding.DecodeString(buf.URI[comma+1:])
			if err != nil {
				return nil, fmt.Errorf("loader: failed to decode buffer %d data URI: %w", i, err)
			}
			buffers[i] = decoded
		default:
			data, err := os.ReadFile(filepath.Join(baseDir, buf.URI))
			if err != nil {
				return nil, fmt.Errorf("loader: failed to read buffer %d from %q: %w", i, buf.URI, err)
			}
			buffers[i] = data
		}
		if buf.ByteLength > 0 && len(buffers[i]) < buf.ByteLength {
			return nil, fmt.Errorf("loader: buffer %d is shorter than its declared byte length", i)
		}
	}
	return buffers, nil
}

// buildSceneGraph walks the default scene and produces a group hierarchy with
// one mesh per primitive.
func buildSceneGraph(doc *gltfDocument, buffers [][]byte, name string) (*object.Group, error) {
	root := object.NewGroup(object.WithGroupName(name))

	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
		// No scenes at all is a valid (if empty) document.
		if len(doc.Scenes) == 0 {
			return root, nil
		}
		return nil, fmt.Errorf("loader: default scene index %d out of range", sceneIdx)
	}

	materials := buildMaterials(doc)
	for _, nodeIdx := range doc.Scenes[sceneIdx].Nodes {
		child, err := buildNode(doc, buffers, materials, nodeIdx)
		if err != nil {
			return nil, err
		}
		if child != nil {
			root.Add(child)
		}
	}
	return root, nil
}

// buildMaterials converts every document material up front so primitives
// sharing a material index share the converted instance.
func buildMaterials(doc *gltfDocument) []*material.Material {
	materials := make([]*material.Material, len(doc.Materials))
	for i, m := range doc.Materials {
		opts := []material.MaterialOption{material.WithName(m.Name)}
		if pbr := m.PBRMetallicRoughness; pbr != nil {
			if len(pbr.BaseColorFactor) >= 3 {
				opts = append(opts, material.WithColor(
					float32(pbr.BaseColorFactor[0]),
					float32(pbr.BaseColorFactor[1]),
					float32(pbr.BaseColorFactor[2]),
				))
				if len(pbr.BaseColorFactor) >= 4 && pbr.BaseColorFactor[3] < 1 {
					opts = append(opts, material.WithOpacity(float32(pbr.BaseColorFactor[3]), true))
				}
			}
			if pbr.MetallicFactor != nil {
				opts = append(opts, material.WithMetalness(float32(*pbr.MetallicFactor)))
			}
			if pbr.RoughnessFactor != nil {
				opts = append(opts, material.WithRoughness(float32(*pbr.RoughnessFactor)))
			}
		}
		materials[i] = material.NewStandard(opts...)
	}
	return materials
}

// buildNode converts one document node and its subtree.
func buildNode(doc *gltfDocument, buffers [][]byte, materials []*material.Material, idx int) (object.Object, error) {
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("loader: node index %d out of range", idx)
	}
	node := doc.Nodes[idx]

	container := object.NewGroup(object.WithGroupName(node.Name))
	applyNodeTransform(container.Base(), node)

	if node.Mesh != nil {
		if *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) {
			return nil, fmt.Errorf("loader: node %d references mesh %d out of range", idx, *node.Mesh)
		}
		gm := doc.Meshes[*node.Mesh]
		for pi, prim := range gm.Primitives {
			tris, err := buildPrimitive(doc, buffers, prim)
			if err != nil {
				return nil, fmt.Errorf("loader: mesh %q primitive %d: %w", gm.Name, pi, err)
			}
			var mat *material.Material
			if prim.Material != nil && *prim.Material >= 0 && *prim.Material < len(materials) {
				mat = materials[*prim.Material]
			}
			container.Add(mesh.NewMesh(geometry.NewRaw(tris), mat, mesh.WithMeshName(gm.Name)))
		}
	}

	for _, childIdx := range node.Children {
		child, err := buildNode(doc, buffers, materials, childIdx)
		if err != nil {
			return nil, err
		}
		if child != nil {
			container.Add(child)
		}
	}
	return container, nil
}

// applyNodeTransform applies either the node's matrix or its TRS fields.
func applyNodeTransform(base *object.Node, node gltfNode) {
	if len(node.Matrix) == 16 {
		pos, q, scale := common.Decompose(node.Matrix)
		base.SetPosition(pos)
		base.SetQuaternion(q)
		base.SetScale(scale)
		return
	}
	if node.Translation != nil {
		base.SetPosition(common.Vec3{X: node.Translation[0], Y: node.Translation[1], Z: node.Translation[2]})
	}
	if node.Rotation != nil {
		base.SetQuaternion(common.Quat{X: node.Rotation[0], Y: node.Rotation[1], Z: node.Rotation[2], W: node.Rotation[3]})
	}
	if node.Scale != nil {
		base.SetScale(common.Vec3{X: node.Scale[0], Y: node.Scale[1], Z: node.Scale[2]})
	}
}

// buildPrimitive reads one primitive's attribute and index accessors into
// triangle data, computing smooth normals when the file carries none.
func buildPrimitive(doc *gltfDocument, buffers [][]byte, prim gltfPrimitive) (*geometry.Triangles, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, errors.New("primitive has no POSITION attribute")
	}
	positions, err := readVec3Accessor(doc, buffers, posIdx)
	if err != nil {
		return nil, err
	}

	tris := &geometry.Triangles{Positions: positions}

	if normIdx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err := readVec3Accessor(doc, buffers, normIdx)
		if err != nil {
			return nil, err
		}
		tris.Normals = normals
	}

	if prim.Indices != nil {
		indices, err := readIndexAccessor(doc, buffers, *prim.Indices)
		if err != nil {
			return nil, err
		}
		tris.Indices = indices
	} else {
		tris.Indices = make([]uint32, len(positions))
		for i := range tris.Indices {
			tris.Indices[i] = uint32(i)
		}
	}

	if tris.Normals == nil {
		tris.Normals = computeSmoothNormals(tris.Positions, tris.Indices)
	}
	return tris, nil
}

// accessorData locates an accessor's backing bytes and element stride.
func accessorData(doc *gltfDocument, buffers [][]byte, idx, elementSize int) (data []byte, stride int, count int, componentType int, err error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, 0, 0, 0, fmt.Errorf("accessor index %d out of range", idx)
	}
	acc := doc.Accessors[idx]
	if acc.BufferView == nil {
		return nil, 0, 0, 0, fmt.Errorf("accessor %d has no buffer view", idx)
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews) {
		return nil, 0, 0, 0, fmt.Errorf("accessor %d references buffer view out of range", idx)
	}
	view := doc.BufferViews[*acc.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(buffers) {
		return nil, 0, 0, 0, fmt.Errorf("buffer view references buffer %d out of range", view.Buffer)
	}

	stride = view.ByteStride
	if stride == 0 {
		stride = elementSize
	}
	start := view.ByteOffset + acc.ByteOffset
	need := start + (acc.Count-1)*stride + elementSize
	buf := buffers[view.Buffer]
	if acc.Count > 0 && need > len(buf) {
		return nil, 0, 0, 0, fmt.Errorf("accessor %d reads past end of buffer", idx)
	}
	return buf[start:], stride, acc.Count, acc.ComponentType, nil
}

// readVec3Accessor reads a float VEC3 accessor.
func readVec3Accessor(doc *gltfDocument, buffers [][]byte, idx int) ([]common.Vec3, error) {
	data, stride, count, componentType, err := accessorData(doc, buffers, idx, 12)
	if err != nil {
		return nil, err
	}
	if componentType != gltfComponentTypeFloat {
		return nil, fmt.Errorf("accessor %d has unsupported vec3 component type %d", idx, componentType)
	}
	out := make([]common.Vec3, count)
	for i := 0; i < count; i++ {
		off := i * stride
		out[i] = common.Vec3{
			X: math.Float32frombits(binary.LittleEndian.Uint32(data[off:])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(data[off+8:])),
		}
	}
	return out, nil
}

// readIndexAccessor reads a scalar index accessor of any supported width.
func readIndexAccessor(doc *gltfDocument, buffers [][]byte, idx int) ([]uint32, error) {
	acc := doc.Accessors[idx]
	var elementSize int
	switch acc.ComponentType {
	case gltfComponentTypeUnsignedByte:
		elementSize = 1
	case gltfComponentTypeUnsignedShort:
		elementSize = 2
	case gltfComponentTypeUnsignedInt:
		elementSize = 4
	default:
		return nil, fmt.Errorf("accessor %d has unsupported index component type %d", idx, acc.ComponentType)
	}
	data, stride, count, componentType, err := accessorData(doc, buffers, idx, elementSize)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	for i := 0; i < count; i++ {
		off := i * stride
		switch componentType {
		case gltfComponentTypeUnsignedByte:
			out[i] = uint32(data[off])
		case gltfComponentTypeUnsignedShort:
			out[i] = uint32(binary.LittleEndian.Uint16(data[off:]))
		case gltfComponentTypeUnsignedInt:
			out[i] = binary.LittleEndian.Uint32(data[off:])
		}
	}
	return out, nil
}

// computeSmoothNormals derives per-vertex normals by accumulating face
// normals, weighted by face area via the un-normalized cross product.
func computeSmoothNormals(positions []common.Vec3, indices []uint32) []common.Vec3 {
	normals := make([]common.Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			continue
		}
		face := positions[b].Sub(positions[a]).Cross(positions[c].Sub(positions[a]))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
