package uniform

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBlockLayout(t *testing.T) {
	b := NewFrameBlock()

	assert.Equal(t, "frame", b.Label())
	assert.Equal(t, 144, b.Size())
	assert.Equal(t, 0, b.Offset(View))
	assert.Equal(t, 64, b.Offset(Projection))
	assert.Equal(t, 128, b.Offset(ViewPosition))
	assert.Equal(t, []string{View, Projection, ViewPosition}, b.Names())
}

func TestObjectBlockLayout(t *testing.T) {
	b := NewObjectBlock()

	assert.Equal(t, 96, b.Size())
	assert.Equal(t, 0, b.Offset(Model))
	assert.Equal(t, 64, b.Offset(ObjectColor))
	assert.Equal(t, 80, b.Offset(UseTexture))
	assert.Equal(t, 84, b.Offset(UseLighting))
	assert.Equal(t, 88, b.Offset(ObjectTexture))
	assert.False(t, b.Has(View))
	assert.Equal(t, -1, b.Offset(View))
}

func TestBlockSetMat4WritesLittleEndian(t *testing.T) {
	b := NewFrameBlock()
	var m [16]float32
	for i := range m {
		m[i] = float32(i) + 0.5
	}

	b.SetMat4(Projection, m)

	data := b.Bytes()
	for i := range m {
		bits := binary.LittleEndian.Uint32(data[64+i*4:])
		require.Equal(t, m[i], math.Float32frombits(bits))
	}
	// view is untouched
	for _, v := range data[:64] {
		require.Zero(t, v)
	}
}

func TestBlockSetVectorsAndInts(t *testing.T) {
	b := NewObjectBlock()

	b.SetVec4(ObjectColor, [4]float32{0.5, 0.5, 1, 1})
	b.SetInt(UseTexture, 1)
	b.SetInt(UseLighting, -3)

	for i, want := range []float32{0.5, 0.5, 1, 1} {
		got, ok := b.Float(ObjectColor, i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	v, ok := b.Int(UseTexture)
	require.True(t, ok)
	assert.Equal(t, int32(1), v)
	v, ok = b.Int(UseLighting)
	require.True(t, ok)
	assert.Equal(t, int32(-3), v)
}

func TestBlockIgnoresUnknownNamesAndKindMismatch(t *testing.T) {
	b := NewFrameBlock()
	before := append([]byte(nil), b.Bytes()...)

	b.SetMat4("nope", [16]float32{1})
	b.SetVec4(ViewPosition, [4]float32{1, 2, 3, 4})
	b.SetInt(View, 7)

	assert.Equal(t, before, b.Bytes())

	_, ok := b.Float(ViewPosition, 3)
	assert.False(t, ok)
	_, ok = b.Int(View)
	assert.False(t, ok)
}

func TestNewBlockAlignment(t *testing.T) {
	b := NewBlock("custom",
		Field{Name: "a", Kind: KindInt},
		Field{Name: "b", Kind: KindVec3},
		Field{Name: "c", Kind: KindInt},
	)

	assert.Equal(t, 0, b.Offset("a"))
	assert.Equal(t, 16, b.Offset("b"))
	// a scalar packs into the trailing slot of a vec3
	assert.Equal(t, 28, b.Offset("c"))
	assert.Equal(t, 32, b.Size())
}
