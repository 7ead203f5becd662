package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *Mesh {
	return &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}
}

func TestColorize(t *testing.T) {
	m := triangle()
	m.Colorize([4]float32{0.1, 0.2, 0.3, 1})
	assert.Len(t, m.Colors, 12)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 1}, m.Colors[8:])
	assert.NoError(t, m.Validate())
	assert.Equal(t, int32(3), m.IndexCount())
}

func TestValidate(t *testing.T) {
	m := triangle()
	assert.Error(t, m.Validate(), "colors missing")

	m.Colorize(TerrainColor)
	m.Indices = append(m.Indices, 0)
	assert.Error(t, m.Validate(), "index count not divisible by 3")

	m.Indices = []uint32{0, 1, 3}
	assert.Error(t, m.Validate(), "index out of range")

	assert.ErrorIs(t, (&Mesh{}).Validate(), ErrNoFaces)
}

func TestAppendReindexes(t *testing.T) {
	a, b := triangle(), triangle()
	a.Colorize(BodyColor)
	b.Colorize(DoorColor)
	a.Append(b)

	require.NoError(t, a.Validate())
	assert.Equal(t, 6, a.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, a.Indices)
}

func TestTerrainMergesObjects(t *testing.T) {
	m, err := Terrain("testdata/quad.obj")
	require.NoError(t, err)
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6}, m.Indices)
	assert.Equal(t, []float32{1, 1, 1, 1}, m.Colors[:4])
}

func TestLoadHelicopter(t *testing.T) {
	h, err := LoadHelicopter("testdata/helicopter_parts.obj")
	require.NoError(t, err)

	for _, p := range []struct {
		m     *Mesh
		color [4]float32
	}{
		{h.Body, BodyColor},
		{h.Door, DoorColor},
		{h.MainRotor, MainRotorColor},
		{h.TailRotor, TailRotorColor},
	} {
		require.NotNil(t, p.m)
		assert.Equal(t, int32(3), p.m.IndexCount())
		assert.Equal(t, p.color[:], p.m.Colors[:4])
	}
}

func TestLoadHelicopterMissingPart(t *testing.T) {
	_, err := LoadHelicopter("testdata/quad.obj")
	assert.ErrorIs(t, err, ErrPartNotFound)
}
