package common

import (
	"cmp"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v if it lies within the range, otherwise the nearest bound
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// Perspective writes a symmetric-frustum perspective projection matrix into out.
// Uses the OpenGL clip-space convention (z in [-1, 1]); the WebGPU vertex shader
// remaps depth to [0, 1]. All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	m := mgl32.Perspective(fovY, aspect, near, far)
	copy(out, m[:])
}

// Ortho writes an orthographic projection matrix for the box
// [left, right] x [bottom, top] x [near, far] into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: horizontal extents in view space
//   - bottom, top: vertical extents in view space
//   - near, far: clipping plane distances
func Ortho(out []float32, left, right, bottom, top, near, far float32) {
	m := mgl32.Ortho(left, right, bottom, top, near, far)
	copy(out, m[:])
}

// LookAt writes a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation
func LookAt(out []float32, eye, center, up mgl32.Vec3) {
	m := mgl32.LookAtV(eye, center, up)
	copy(out, m[:])
}

// BuildModelMatrix constructs a 4x4 model matrix from translation, Euler rotation and scale.
// The composition is translation * rotationX * rotationY * rotationZ * scale, so the scale
// is applied first and the translation last.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - position: translation in world space
//   - rotationDeg: rotation angles in degrees around the X, Y and Z axes
//   - scale: scale factors along each axis
func BuildModelMatrix(out []float32, position, rotationDeg, scale mgl32.Vec3) {
	m := mgl32.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg[0]))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg[1]))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg[2]))).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
	copy(out, m[:])
}
