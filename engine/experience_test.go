package engine

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/geometry"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/loader"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/mesh"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

// sessionDocument places a camera at z = 5 looking down -Z at a unit-ish
// cube, with a plain light rig.
const sessionDocument = `{
  "scene": {
    "geometries": [
      {"uuid": "geo-box", "type": "BoxGeometry", "width": 2, "height": 2, "depth": 2}
    ],
    "materials": [
      {"uuid": "mat-red", "type": "MeshStandardMaterial", "color": 16711680},
      {"uuid": "mat-glass", "type": "MeshStandardMaterial", "color": 16711680, "opacity": 0.4, "transparent": true}
    ],
    "object": {
      "type": "Scene",
      "name": "session",
      "children": [
        {"type": "PerspectiveCamera", "name": "cam", "fov": 50,
         "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,5,1]},
        {"type": "Mesh", "name": "cube", "geometry": "geo-box", "material": "mat-red"},
        {"type": "Mesh", "name": "slot-a", "geometry": "geo-box", "material": "mat-red",
         "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 2,0,0,1]},
        {"type": "Mesh", "name": "slot-b", "geometry": "geo-box", "material": "mat-red",
         "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, -2,0,0,1]},
        {"type": "AmbientLight", "name": "fill", "intensity": 0.3},
        {"type": "DirectionalLight", "name": "key",
         "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,10,1]}
      ]
    }
  }
}`

func newSession(t *testing.T, opts ...ExperienceOption) Experience {
	t.Helper()
	e, err := NewExperience([]byte(sessionDocument), opts...)
	require.NoError(t, err)
	return e
}

func TestNewExperienceRejectsInvalidJSON(t *testing.T) {
	_, err := NewExperience([]byte("{nope"))
	assert.Error(t, err)
}

func TestNewExperienceMaterializesSceneAndCamera(t *testing.T) {
	e := newSession(t)

	require.NotNil(t, e.Scene())
	require.NotNil(t, e.Camera())
	assert.Equal(t, "cam", e.Camera().Name())
	assert.InDelta(t, 5.0, float64(e.Camera().Position().Z), 1e-4)

	assert.Contains(t, e.GeometryTable(), "geo-box")
	assert.Contains(t, e.MaterialTable(), "mat-red")
	assert.Contains(t, e.MaterialTable(), "mat-glass")
}

func TestExperienceFindReportsMisses(t *testing.T) {
	e := newSession(t)

	assert.NotNil(t, e.Find("cube"))
	assert.Nil(t, e.Find("no-such-node"))
}

func TestExperienceInstantiateReplacesTargetsInPlace(t *testing.T) {
	e := newSession(t)

	template := mesh.NewMesh(
		geometry.NewSphere(),
		material.NewStandard(material.WithColor(0, 1, 0)),
		mesh.WithMeshName("template"),
	)

	count := e.Instantiate(template, []string{"slot-a", "slot-b", "slot-missing"},
		WithPositionDelta(common.Vec3{Y: 1}),
		WithScaleDelta(common.Vec3{X: 2, Y: 2, Z: 2}),
	)
	assert.Equal(t, 2, count)

	a, ok := e.Find("slot-a").(*mesh.Mesh)
	require.True(t, ok, "the slot now holds a clone of the template")
	assert.NotSame(t, template, a)

	// Target position copied, then the additive delta applied.
	assert.InDelta(t, 2.0, float64(a.Position().X), 1e-4)
	assert.InDelta(t, 1.0, float64(a.Position().Y), 1e-4)
	// Unit target scale multiplied by the delta.
	assert.InDelta(t, 2.0, float64(a.Scale().X), 1e-4)

	// The replacement keeps the slot's position in the child list.
	children := e.Scene().Children()
	idx := -1
	for i, child := range children {
		if child.Base().Name() == "slot-a" {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Same(t, object.Object(a), children[idx])
}

func TestExperienceInstantiateAppliesRotationDelta(t *testing.T) {
	e := newSession(t)
	template := mesh.NewMesh(geometry.NewBox(), nil)

	quarterY := common.Quat{Y: 0.7071068, W: 0.7071068}
	count := e.Instantiate(template, []string{"slot-a"}, WithRotationDelta(quarterY))
	require.Equal(t, 1, count)

	got := e.Find("slot-a").Base().Quaternion()
	assert.InDelta(t, float64(quarterY.Y), float64(got.Y), 1e-4)
	assert.InDelta(t, float64(quarterY.W), float64(got.W), 1e-4)
}

func TestExperienceRenderProducesFrame(t *testing.T) {
	e := newSession(t)
	e.EnableProfiler()

	img, err := e.Render(64, 32)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	// The red cube sits dead center in front of the camera.
	center := img.RGBAAt(32, 16)
	assert.Greater(t, center.R, center.B)
}

func TestExperienceSnapshotCapturesWhiteSilhouette(t *testing.T) {
	e := newSession(t)

	entry := e.Snapshot(64, 64, "still")
	require.NotNil(t, entry)
	assert.Equal(t, "still", entry.ID)

	cached, ok := e.Frames().Get("still")
	require.True(t, ok)
	require.NotNil(t, cached.Payload)

	center := cached.Payload.RGBAAt(32, 32)
	assert.Equal(t, uint8(255), center.R, "opaque meshes flatten to white")
	assert.Equal(t, uint8(255), center.G)
	assert.Equal(t, uint8(255), center.B)

	corner := cached.Payload.RGBAAt(0, 0)
	assert.Equal(t, uint8(0), corner.R, "background is stripped to black")

	// The live scene keeps its original materials.
	cube, ok := e.Find("cube").(*mesh.Mesh)
	require.True(t, ok)
	assert.Equal(t, material.ModelStandard, cube.Material().Model())
}

func TestExperienceSnapshotGraysTransparentMeshes(t *testing.T) {
	e := newSession(t)

	glass := e.MaterialTable()["mat-glass"]
	require.NotNil(t, glass)
	cube, ok := e.Find("cube").(*mesh.Mesh)
	require.True(t, ok)
	cube.SetMaterial(glass)

	entry := e.Snapshot(64, 64, "")
	require.NotNil(t, entry)
	assert.NotEmpty(t, entry.ID, "an id is generated when none is supplied")

	center := entry.Payload.RGBAAt(32, 32)
	assert.InDelta(t, 128, int(center.R), 2, "transparent meshes flatten to gray")
	assert.Equal(t, center.R, center.G)
}

func TestExperienceSnapshotRequiresDrawableExtent(t *testing.T) {
	e := newSession(t)
	assert.Nil(t, e.Snapshot(0, 64, "x"))
	assert.Nil(t, e.Snapshot(64, -1, "y"))
	assert.Equal(t, 0, e.Frames().Len())
}

func TestExperienceSnapshotRequiresCamera(t *testing.T) {
	e, err := NewExperience([]byte(`{"scene": {"object": {"type": "Scene", "children": [
		{"type": "Group", "name": "empty-ish"}
	]}}}`))
	require.NoError(t, err)
	assert.Nil(t, e.Snapshot(32, 32, "x"))
}

func TestExperienceBackgroundAppliesAfterLoad(t *testing.T) {
	backend := &stubImageBackend{}
	l := loader.NewLoader(loader.WithBackend(".fake", backend))
	e := newSession(t, WithLoader(l))

	e.SetBackground("sky.fake")

	waitForSession(t, func() bool {
		img, err := e.Render(8, 8)
		require.NoError(t, err)
		return img.RGBAAt(0, 0).B == 255
	})
}

func TestExperienceIsLoadingDelegatesToLoader(t *testing.T) {
	release := make(chan struct{})
	backend := &stubImageBackend{release: release}
	l := loader.NewLoader(loader.WithBackend(".fake", backend))
	e := newSession(t, WithLoader(l))

	assert.False(t, e.IsLoading())
	e.LoadAsset("slow.fake", nil)
	waitForSession(t, func() bool { return e.IsLoading() })
	close(release)
	waitForSession(t, func() bool { return !e.IsLoading() })
}

// stubImageBackend serves a 1x1 blue image for any path, optionally blocking
// until released.
type stubImageBackend struct {
	release chan struct{}
}

func (b *stubImageBackend) Load(path string) (*loader.Asset, error) {
	if b.release != nil {
		<-b.release
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{B: 255, A: 255})
	return &loader.Asset{Path: path, Kind: loader.KindTexture, Image: img}, nil
}

func waitForSession(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
