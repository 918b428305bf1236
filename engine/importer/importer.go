// package importer turns a declarative JSON scene document into the typed
// runtime object graph. Import is deterministic and performs no I/O; malformed
// or partially-unsupported documents degrade to a partially-populated scene
// rather than aborting.
package importer

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/camera"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/geometry"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/light"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/mesh"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/chewxy/math32"
)

// Result is the materialized form of a scene document.
type Result struct {
	// Scene is the root of the runtime object graph. Never nil; an empty or
	// missing document block yields an empty scene.
	Scene *object.Group

	// Camera is the selected scene camera, or nil when the document's root
	// has no direct camera child. When present it is also the first child of
	// Scene.
	Camera *camera.Camera

	// Geometries and Materials are the uuid-keyed tables built during import.
	// Read-only after Import returns.
	Geometries map[string]geometry.Geometry
	Materials  map[string]*material.Material
}

// pendingTarget is a deferred light-to-target binding, resolved only after
// the whole graph exists because targets may be declared anywhere.
type pendingTarget struct {
	light *light.Light
	uuid  string
}

// Import parses and materializes a scene document.
//
// Parameters:
//   - data: the JSON scene document
//
// Returns:
//   - *Result: the materialized graph and tables (never nil on nil error)
//   - error: only when the document is not valid JSON
func Import(data []byte) (*Result, error) {
	var root documentRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("importer: failed to decode scene document: %w", err)
	}
	return importBlock(root.block()), nil
}

func importBlock(block sceneBlock) *Result {
	res := &Result{
		Geometries: make(map[string]geometry.Geometry),
		Materials:  make(map[string]*material.Material),
	}

	for _, entry := range block.Geometries {
		if geo := buildGeometry(entry); geo != nil {
			res.Geometries[entry.UUID] = geo
		}
	}
	for _, entry := range block.Materials {
		if mat := buildMaterial(entry); mat != nil {
			res.Materials[entry.UUID] = mat
		}
	}

	sceneName := "Scene"
	if block.Object != nil && block.Object.Name != "" {
		sceneName = block.Object.Name
	}
	res.Scene = object.NewGroup(object.WithGroupName(sceneName))

	byUUID := make(map[string]object.Object)
	var pending []pendingTarget

	if block.Object != nil {
		if block.Object.UUID != "" {
			byUUID[block.Object.UUID] = res.Scene
		}
		applyTransform(res.Scene.Base(), *block.Object)

		for _, child := range block.Object.Children {
			if kindOf(child.Type) == kindCamera {
				if res.Camera == nil {
					res.Camera = buildCamera(child)
					if child.UUID != "" {
						byUUID[child.UUID] = res.Camera
					}
				}
				// Later camera siblings are dropped.
				continue
			}
			if obj := materialize(child, res, byUUID, &pending); obj != nil {
				res.Scene.Add(obj)
			}
		}
	}

	// The selected camera is always the first child of the output scene.
	if res.Camera != nil {
		res.Scene.AddFront(res.Camera)
	}

	resolveTargets(res.Scene, pending, byUUID)

	return res
}

// materialize builds the runtime node for one document node below the root
// level. Cameras at this depth are dropped; unsupported kinds become named
// empty containers with their children preserved.
func materialize(n docNode, res *Result, byUUID map[string]object.Object, pending *[]pendingTarget) object.Object {
	var obj object.Object

	switch kindOf(n.Type) {
	case kindMesh:
		geo, ok := res.Geometries[n.Geometry]
		if !ok {
			log.Printf("importer: mesh %q references unknown geometry %q, skipping", n.Name, n.Geometry)
			return nil
		}
		mat := res.Materials[n.Material] // nil falls back to the default material
		obj = mesh.NewMesh(geo, mat)

	case kindCamera:
		// Only direct children of the root are considered for the scene camera.
		return nil

	case kindAmbientLight:
		obj = light.NewAmbient(lightOptions(n)...)

	case kindDirectionalLight:
		l := light.NewDirectional(lightOptions(n)...)
		if n.Target != "" {
			*pending = append(*pending, pendingTarget{light: l, uuid: n.Target})
		}
		obj = l

	case kindPointLight:
		obj = light.NewPoint(lightOptions(n)...)

	case kindSpotLight:
		l := light.NewSpot(lightOptions(n)...)
		if n.Target != "" {
			*pending = append(*pending, pendingTarget{light: l, uuid: n.Target})
		}
		obj = l

	default:
		// kindGroup and kindUnsupported both materialize as containers; the
		// unsupported case keeps the document's name so the tree shape survives.
		obj = object.NewGroup()
	}

	applyTransform(obj.Base(), n)
	if n.UUID != "" {
		byUUID[n.UUID] = obj
	}

	for _, child := range n.Children {
		if c := materialize(child, res, byUUID, pending); c != nil {
			obj.Base().Add(c)
		}
	}

	return obj
}

// applyTransform sets identity and decomposes the optional 16-element
// column-major matrix, the only rotation representation accepted at import.
func applyTransform(base *object.Node, n docNode) {
	if n.Name != "" {
		base.SetName(n.Name)
	}
	if n.UUID != "" {
		base.SetUUID(n.UUID)
	}
	if len(n.Matrix) == 16 {
		pos, q, scale := common.Decompose(n.Matrix)
		base.SetPosition(pos)
		base.SetQuaternion(q)
		base.SetScale(scale)
	}
}

func buildCamera(n docNode) *camera.Camera {
	opts := []camera.CameraOption{}
	if n.Fov != nil {
		opts = append(opts, camera.WithFov(float32(*n.Fov)))
	}
	if n.Aspect != nil {
		opts = append(opts, camera.WithAspect(float32(*n.Aspect)))
	}
	if n.Near != nil {
		opts = append(opts, camera.WithNear(float32(*n.Near)))
	}
	if n.Far != nil {
		opts = append(opts, camera.WithFar(float32(*n.Far)))
	}
	cam := camera.NewCamera(opts...)
	applyTransform(cam.Base(), n)
	cam.UpdateProjection()
	return cam
}

func lightOptions(n docNode) []light.LightOption {
	color := common.CoerceColor(n.Color)
	opts := []light.LightOption{
		light.WithLightColor(color[0], color[1], color[2]),
	}
	if n.Intensity != nil {
		opts = append(opts, light.WithIntensity(float32(*n.Intensity)))
	}
	if n.Distance != 0 {
		opts = append(opts, light.WithDistance(float32(n.Distance)))
	}
	if n.Decay != nil {
		opts = append(opts, light.WithDecay(float32(*n.Decay)))
	}
	if n.Angle != nil {
		opts = append(opts, light.WithAngle(float32(*n.Angle)))
	}
	if n.Penumbra != 0 {
		opts = append(opts, light.WithPenumbra(float32(n.Penumbra)))
	}
	if len(n.Shadow) > 0 {
		opts = append(opts, light.WithCastShadow(true))
	}
	return opts
}

// resolveTargets binds each pending light target against the uuid map; a
// binding that never resolves gets a synthetic placeholder anchor attached to
// the scene root so the light keeps a stable orientation.
func resolveTargets(scene *object.Group, pending []pendingTarget, byUUID map[string]object.Object) {
	for _, p := range pending {
		if target, ok := byUUID[p.uuid]; ok {
			p.light.SetTarget(target)
			continue
		}
		placeholder := object.NewGroup(object.WithGroupName(p.light.Name() + "-target"))
		scene.Add(placeholder)
		p.light.SetTarget(placeholder)
	}
}

func buildGeometry(entry geometryEntry) geometry.Geometry {
	switch entry.Type {
	case "BoxGeometry", "BoxBufferGeometry":
		return geometry.NewBox(
			geometry.WithBoxSize(
				common.Coalesce(float32(entry.Width), 1),
				common.Coalesce(float32(entry.Height), 1),
				common.Coalesce(float32(entry.Depth), 1),
			),
			geometry.WithBoxSegments(
				common.Coalesce(entry.WidthSegments, 1),
				common.Coalesce(entry.HeightSegments, 1),
				common.Coalesce(entry.DepthSegments, 1),
			),
		)
	case "SphereGeometry", "SphereBufferGeometry":
		return geometry.NewSphere(
			geometry.WithSphereRadius(common.Coalesce(float32(entry.Radius), 1)),
			geometry.WithSphereSegments(
				common.Coalesce(entry.WidthSegments, 32),
				common.Coalesce(entry.HeightSegments, 16),
			),
			geometry.WithSpherePhiRange(
				float32(entry.PhiStart),
				common.Coalesce(float32(entry.PhiLength), 2*math32.Pi),
			),
			geometry.WithSphereThetaRange(
				float32(entry.ThetaStart),
				common.Coalesce(float32(entry.ThetaLength), math32.Pi),
			),
		)
	default:
		// Unknown geometry types are skipped, not inserted.
		return nil
	}
}

func buildMaterial(entry materialEntry) *material.Material {
	opts := []material.MaterialOption{
		material.WithName(entry.Name),
	}
	if entry.Color != nil {
		c := common.CoerceColor(entry.Color)
		opts = append(opts, material.WithColor(c[0], c[1], c[2]))
	}
	if entry.Opacity != nil {
		opts = append(opts, material.WithOpacity(float32(*entry.Opacity), entry.Transparent))
	} else if entry.Transparent {
		opts = append(opts, material.WithOpacity(1, true))
	}
	if entry.Wireframe {
		opts = append(opts, material.WithWireframe(true))
	}
	if entry.Side != nil {
		opts = append(opts, material.WithSide(material.SideFromIndex(*entry.Side)))
	}

	switch entry.Type {
	case "MeshStandardMaterial", "MeshPhysicalMaterial":
		if entry.Roughness != nil {
			opts = append(opts, material.WithRoughness(float32(*entry.Roughness)))
		}
		if entry.Metalness != nil {
			opts = append(opts, material.WithMetalness(float32(*entry.Metalness)))
		}
		if entry.Emissive != nil {
			e := common.CoerceColor(entry.Emissive)
			intensity := float32(1)
			if entry.EmissiveIntensity != nil {
				intensity = float32(*entry.EmissiveIntensity)
			}
			opts = append(opts, material.WithEmissive(e[0], e[1], e[2], intensity))
		}
		if entry.FlatShading {
			opts = append(opts, material.WithFlatShading(true))
		}
		return material.NewStandard(opts...)
	case "MeshBasicMaterial":
		return material.NewBasic(opts...)
	default:
		// Unknown material types are skipped, not inserted.
		return nil
	}
}
