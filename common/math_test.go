package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float32
		expected float32
	}{
		{"below", -5, -1},
		{"inside", 0.5, 0.5},
		{"above", 7, 1},
		{"at lower bound", -1, -1},
		{"at upper bound", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, -1, 1))
		})
	}
}

func TestBuildModelMatrixOrder(t *testing.T) {
	var m mgl32.Mat4
	// scale x by 2, rotate 90 degrees about Z, then translate by (1, 1, 0)
	BuildModelMatrix(m[:], mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 0, 90}, mgl32.Vec3{2, 1, 1})

	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1.0, p[0], 1e-5)
	assert.InDelta(t, 3.0, p[1], 1e-5)
	assert.InDelta(t, 0.0, p[2], 1e-5)
}

func TestBuildModelMatrixRotationOrder(t *testing.T) {
	var m mgl32.Mat4
	BuildModelMatrix(m[:], mgl32.Vec3{}, mgl32.Vec3{90, 90, 0}, mgl32.Vec3{1, 1, 1})

	expected := mgl32.HomogRotate3DX(mgl32.DegToRad(90)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	assert.True(t, m.ApproxEqualThreshold(expected, 1e-6))
}

func TestBuildModelMatrixIdentity(t *testing.T) {
	var m mgl32.Mat4
	BuildModelMatrix(m[:], mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	assert.Equal(t, mgl32.Ident4(), m)
}

func TestLookAtTranslatesEye(t *testing.T) {
	var m mgl32.Mat4
	LookAt(m[:], mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -5.0, origin[2], 1e-6)
}

func TestOrthoMapsBoxToClipCube(t *testing.T) {
	var m mgl32.Mat4
	Ortho(m[:], -2, 2, -1, 1, 1, 100)

	corner := m.Mul4x1(mgl32.Vec4{2, 1, -1, 1})
	assert.InDelta(t, 1.0, corner[0], 1e-6)
	assert.InDelta(t, 1.0, corner[1], 1e-6)
	assert.InDelta(t, -1.0, corner[2], 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Len(t, SliceToBytes([]float32{1, 2, 3}), 12)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(2), Coalesce[float32](0, 2, 3))
	assert.Equal(t, "", Coalesce("", ""))
}
