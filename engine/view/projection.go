package view

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects how camera space is mapped to clip space.
type ProjectionMode int

const (
	// ProjectionModePerspective is the 3D view with a field of view taken from the camera zoom.
	ProjectionModePerspective ProjectionMode = iota
	// ProjectionModeOrthographic is the 2D view with a fixed-size box.
	ProjectionModeOrthographic
)

func (m ProjectionMode) String() string {
	switch m {
	case ProjectionModePerspective:
		return "Perspective (3D)"
	case ProjectionModeOrthographic:
		return "Orthographic (2D)"
	default:
		return "Unknown"
	}
}

const (
	PerspectiveNear float32 = 0.1
	PerspectiveFar  float32 = 100.0

	OrthoHalfHeight float32 = 25.0
	OrthoNear       float32 = 1.0
	OrthoFar        float32 = 100.0
)

// ProjectionSpec holds the parameters of one frame's projection.
// It is derived each frame from the mode, the camera zoom and the viewport.
type ProjectionSpec struct {
	Mode   ProjectionMode
	Aspect float32
	Near   float32
	Far    float32

	// FovY is the vertical field of view in degrees (perspective only).
	FovY float32

	// HalfWidth and HalfHeight are the orthographic box extents (orthographic only).
	HalfWidth  float32
	HalfHeight float32
}

// NewProjectionSpec derives the projection parameters for the given mode and viewport.
// A zero height falls back to an aspect of 1.
//
// Parameters:
//   - mode: the projection mode
//   - fovDeg: vertical field of view in degrees, used in perspective mode
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - ProjectionSpec: the derived parameters
func NewProjectionSpec(mode ProjectionMode, fovDeg float32, width, height int) ProjectionSpec {
	aspect := float32(1)
	if height > 0 && width > 0 {
		aspect = float32(width) / float32(height)
	}

	if mode == ProjectionModeOrthographic {
		return ProjectionSpec{
			Mode:       mode,
			Aspect:     aspect,
			Near:       OrthoNear,
			Far:        OrthoFar,
			HalfHeight: OrthoHalfHeight,
			HalfWidth:  OrthoHalfHeight * aspect,
		}
	}
	return ProjectionSpec{
		Mode:   ProjectionModePerspective,
		Aspect: aspect,
		Near:   PerspectiveNear,
		Far:    PerspectiveFar,
		FovY:   fovDeg,
	}
}

// Matrix returns the column-major projection matrix (OpenGL clip convention).
//
// Returns:
//   - [16]float32: the projection matrix
func (p ProjectionSpec) Matrix() [16]float32 {
	var out [16]float32
	if p.Mode == ProjectionModeOrthographic {
		common.Ortho(out[:], -p.HalfWidth, p.HalfWidth, -p.HalfHeight, p.HalfHeight, p.Near, p.Far)
		return out
	}
	common.Perspective(out[:], mgl32.DegToRad(p.FovY), p.Aspect, p.Near, p.Far)
	return out
}
