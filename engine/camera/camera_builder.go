package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithFront sets the camera's initial forward direction. Yaw and pitch are derived from it.
// A zero vector is ignored.
//
// Parameters:
//   - x, y, z: direction components (normalized on assignment)
//
// Returns:
//   - CameraBuilderOption: a function that sets the front vector
func WithFront(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		front := mgl32.Vec3{x, y, z}
		if front.LenSqr() > basisEpsilon {
			c.front = front.Normalize()
			c.anglesSet = false
		}
	}
}

// WithYawPitch sets the initial Euler angles in degrees. The front vector is rebuilt from them,
// overriding any WithFront option.
//
// Parameters:
//   - yaw: horizontal angle in degrees (-90 looks along -Z)
//   - pitch: vertical angle in degrees, clamped to [MinPitch, MaxPitch]
//
// Returns:
//   - CameraBuilderOption: a function that sets yaw and pitch
func WithYawPitch(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.pitch = pitch
		c.anglesSet = true
	}
}

// WithUp sets the camera's up vector and the world up axis used for vertical movement.
// A zero vector is ignored.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		up := mgl32.Vec3{x, y, z}
		if up.LenSqr() > basisEpsilon {
			c.up = up.Normalize()
			c.worldUp = c.up
		}
	}
}

// WithZoom sets the initial field of view in degrees, clamped to [MinZoom, MaxZoom].
//
// Parameters:
//   - zoom: vertical field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

// WithMovementSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraBuilderOption: a function that sets the movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the default look sensitivity in degrees per pixel.
//
// Parameters:
//   - sensitivity: multiplier applied to look offsets
//
// Returns:
//   - CameraBuilderOption: a function that sets the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}
