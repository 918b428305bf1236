package importer

import (
	"testing"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/camera"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/light"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/mesh"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicDocument = `{
  "scene": {
    "geometries": [
      {"uuid": "geo-box", "type": "BoxGeometry", "width": 2, "height": 2, "depth": 2},
      {"uuid": "geo-sphere", "type": "SphereGeometry", "radius": 3},
      {"uuid": "geo-weird", "type": "TorusKnotGeometry", "radius": 1}
    ],
    "materials": [
      {"uuid": "mat-red", "type": "MeshStandardMaterial", "color": 16711680, "roughness": 0.4},
      {"uuid": "mat-glass", "type": "MeshBasicMaterial", "color": [0.5, 0.5, 1], "opacity": 0.3, "transparent": true},
      {"uuid": "mat-shader", "type": "ShaderMaterial"}
    ],
    "object": {
      "type": "Scene",
      "name": "demo",
      "children": [
        {"type": "Mesh", "name": "cube", "uuid": "node-cube", "geometry": "geo-box", "material": "mat-red"},
        {"type": "Mesh", "name": "ball", "geometry": "geo-sphere", "material": "mat-missing"},
        {"type": "Mesh", "name": "ghost", "geometry": "geo-missing", "material": "mat-red"},
        {"type": "PerspectiveCamera", "name": "main-cam", "fov": 60, "near": 0.5, "far": 500},
        {"type": "PerspectiveCamera", "name": "second-cam", "fov": 20},
        {"type": "DirectionalLight", "name": "sun", "color": 16777215, "intensity": 2, "target": "node-cube", "shadow": {"mapSize": 1024}},
        {"type": "SpotLight", "name": "spot", "target": "nowhere", "angle": 0.5},
        {"type": "FancyEffectNode", "name": "sparkles", "children": [
          {"type": "Mesh", "name": "inner", "geometry": "geo-box"}
        ]}
      ]
    }
  }
}`

func importBasic(t *testing.T) *Result {
	t.Helper()
	res, err := Import([]byte(basicDocument))
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestImportTablesExposeSupportedUUIDsOnly(t *testing.T) {
	res := importBasic(t)

	assert.Len(t, res.Geometries, 2)
	assert.Contains(t, res.Geometries, "geo-box")
	assert.Contains(t, res.Geometries, "geo-sphere")
	assert.NotContains(t, res.Geometries, "geo-weird")

	assert.Len(t, res.Materials, 2)
	assert.Contains(t, res.Materials, "mat-red")
	assert.Contains(t, res.Materials, "mat-glass")
	assert.NotContains(t, res.Materials, "mat-shader")
}

func TestImportSelectsFirstCameraAsFirstChild(t *testing.T) {
	res := importBasic(t)

	require.NotNil(t, res.Camera)
	assert.Equal(t, "main-cam", res.Camera.Name())
	assert.Equal(t, float32(60), res.Camera.Fov())
	assert.Equal(t, float32(0.5), res.Camera.Near())

	children := res.Scene.Children()
	require.NotEmpty(t, children)
	first, ok := children[0].(*camera.Camera)
	require.True(t, ok)
	assert.Same(t, res.Camera, first)
	assert.Nil(t, object.Find(res.Scene, "second-cam"))
}

func TestImportSkipsMeshWithUnresolvedGeometry(t *testing.T) {
	res := importBasic(t)
	assert.Nil(t, object.Find(res.Scene, "ghost"))
	assert.NotNil(t, object.Find(res.Scene, "cube"))
}

func TestImportDefaultsUnresolvedMaterial(t *testing.T) {
	res := importBasic(t)
	ball, ok := object.Find(res.Scene, "ball").(*mesh.Mesh)
	require.True(t, ok)
	assert.Equal(t, material.ModelStandard, ball.Material().Model())
	assert.Equal(t, [3]float32{1, 1, 1}, ball.Material().Color())
}

func TestImportResolvesLightTargets(t *testing.T) {
	res := importBasic(t)

	sun, ok := object.Find(res.Scene, "sun").(*light.Light)
	require.True(t, ok)
	require.NotNil(t, sun.Target())
	assert.Equal(t, "cube", sun.Target().Base().Name())
	assert.True(t, sun.CastsShadow())
	assert.Equal(t, float32(2), sun.Intensity())

	spot, ok := object.Find(res.Scene, "spot").(*light.Light)
	require.True(t, ok)
	require.NotNil(t, spot.Target(), "unresolved target still gets an anchor")
	assert.Equal(t, "spot-target", spot.Target().Base().Name())
	// The placeholder hangs off the scene root.
	assert.Equal(t, res.Scene.Base(), spot.Target().Base().Parent())
}

func TestImportUnsupportedNodeBecomesContainer(t *testing.T) {
	res := importBasic(t)

	sparkles := object.Find(res.Scene, "sparkles")
	require.NotNil(t, sparkles)
	_, isGroup := sparkles.(*object.Group)
	assert.True(t, isGroup)

	// Children of unsupported nodes survive.
	assert.NotNil(t, object.Find(sparkles, "inner"))
}

func TestImportWithoutSceneWrapper(t *testing.T) {
	doc := `{
	  "geometries": [{"uuid": "g", "type": "BoxGeometry"}],
	  "materials": [],
	  "object": {"type": "Scene", "children": [
	    {"type": "Mesh", "name": "m", "geometry": "g"}
	  ]}
	}`
	res, err := Import([]byte(doc))
	require.NoError(t, err)
	assert.NotNil(t, object.Find(res.Scene, "m"))
	assert.Nil(t, res.Camera)
}

func TestImportEmptyDocumentYieldsEmptyScene(t *testing.T) {
	res, err := Import([]byte(`{}`))
	require.NoError(t, err)
	require.NotNil(t, res.Scene)
	assert.Empty(t, res.Scene.Children())
	assert.Nil(t, res.Camera)
}

func TestImportInvalidJSON(t *testing.T) {
	_, err := Import([]byte(`{nope`))
	assert.Error(t, err)
}

func TestImportDecomposesMatrix(t *testing.T) {
	// Translation (1,2,3) with scale 2 on X, column-major.
	doc := `{
	  "object": {"type": "Scene", "children": [
	    {"type": "Group", "name": "posed", "matrix": [2,0,0,0, 0,1,0,0, 0,0,1,0, 1,2,3,1]}
	  ]}
	}`
	res, err := Import([]byte(doc))
	require.NoError(t, err)

	posed := object.Find(res.Scene, "posed")
	require.NotNil(t, posed)
	assert.Equal(t, common.Vec3{X: 1, Y: 2, Z: 3}, posed.Base().Position())
	assert.InDelta(t, 2.0, posed.Base().Scale().X, 1e-4)
	assert.Equal(t, common.QuatIdentity(), posed.Base().Quaternion())
}

func TestImportMaterialProperties(t *testing.T) {
	res := importBasic(t)

	red := res.Materials["mat-red"]
	require.NotNil(t, red)
	assert.Equal(t, material.ModelStandard, red.Model())
	assert.InDelta(t, 1.0, red.Color()[0], 1e-4)
	assert.InDelta(t, 0.0, red.Color()[1], 1e-4)
	assert.InDelta(t, 0.4, red.Roughness(), 1e-4)

	glass := res.Materials["mat-glass"]
	require.NotNil(t, glass)
	assert.Equal(t, material.ModelBasic, glass.Model())
	assert.True(t, glass.Transparent())
	assert.InDelta(t, 0.3, glass.Opacity(), 1e-4)
}
