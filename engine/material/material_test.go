package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideFromIndex(t *testing.T) {
	assert.Equal(t, SideFront, SideFromIndex(0))
	assert.Equal(t, SideBack, SideFromIndex(1))
	assert.Equal(t, SideDouble, SideFromIndex(2))
	assert.Equal(t, SideFront, SideFromIndex(7))
	assert.Equal(t, SideFront, SideFromIndex(-1))
}

func TestDefaultIsWhiteStandard(t *testing.T) {
	m := Default()
	assert.Equal(t, ModelStandard, m.Model())
	assert.Equal(t, [3]float32{1, 1, 1}, m.Color())
	assert.Equal(t, float32(1), m.Opacity())
	assert.False(t, m.Transparent())
	assert.Equal(t, SideFront, m.Side())
}

func TestNewStandardOptions(t *testing.T) {
	m := NewStandard(
		WithName("steel"),
		WithColor(0.2, 0.3, 0.4),
		WithRoughness(0.5),
		WithMetalness(0.9),
		WithEmissive(1, 0, 0, 2),
		WithOpacity(0.5, true),
		WithSide(SideDouble),
	)
	assert.Equal(t, "steel", m.Name())
	assert.Equal(t, [3]float32{0.2, 0.3, 0.4}, m.Color())
	assert.Equal(t, float32(0.5), m.Roughness())
	assert.Equal(t, float32(0.9), m.Metalness())
	assert.Equal(t, [3]float32{1, 0, 0}, m.Emissive())
	assert.Equal(t, float32(2), m.EmissiveIntensity())
	assert.True(t, m.Transparent())
	assert.Equal(t, SideDouble, m.Side())
}

func TestNewFlatIsUnlit(t *testing.T) {
	m := NewFlat(0.5, 0.5, 0.5)
	assert.Equal(t, ModelBasic, m.Model())
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, m.Color())
}
