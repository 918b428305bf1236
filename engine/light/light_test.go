package light

import (
	"testing"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightDefaults(t *testing.T) {
	l := NewAmbient()
	assert.Equal(t, KindAmbient, l.Kind())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())
	assert.False(t, l.CastsShadow())
	assert.Nil(t, l.Target())
}

func TestLightKinds(t *testing.T) {
	assert.Equal(t, KindDirectional, NewDirectional().Kind())
	assert.Equal(t, KindPoint, NewPoint().Kind())
	assert.Equal(t, KindSpot, NewSpot().Kind())
}

func TestLightOptions(t *testing.T) {
	l := NewSpot(
		WithLightName("lamp"),
		WithLightColor(1, 0.5, 0),
		WithIntensity(3),
		WithDistance(20),
		WithDecay(1.5),
		WithAngle(0.7),
		WithPenumbra(0.2),
		WithCastShadow(true),
		WithLightPosition(common.Vec3{Y: 4}),
	)
	assert.Equal(t, "lamp", l.Name())
	assert.Equal(t, [3]float32{1, 0.5, 0}, l.Color())
	assert.Equal(t, float32(3), l.Intensity())
	assert.Equal(t, float32(20), l.Distance())
	assert.Equal(t, float32(1.5), l.Decay())
	assert.Equal(t, float32(0.7), l.Angle())
	assert.Equal(t, float32(0.2), l.Penumbra())
	assert.True(t, l.CastsShadow())
	assert.Equal(t, common.Vec3{Y: 4}, l.Position())
}

func TestCloneCopiesParametersSharesTarget(t *testing.T) {
	anchor := object.NewGroup(object.WithGroupName("anchor"))
	l := NewDirectional(WithIntensity(2), WithCastShadow(true))
	l.SetTarget(anchor)

	clone, ok := l.Clone(false).(*Light)
	require.True(t, ok)
	assert.Equal(t, KindDirectional, clone.Kind())
	assert.Equal(t, float32(2), clone.Intensity())
	assert.True(t, clone.CastsShadow())
	assert.Same(t, anchor, clone.Target().(*object.Group))
	assert.NotEqual(t, l.UUID(), clone.UUID())
}
