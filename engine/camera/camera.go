package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinPitch and MaxPitch bound the vertical look angle in degrees so the front vector never flips past the poles.
	MinPitch float32 = -89.0
	MaxPitch float32 = 89.0

	// MinZoom and MaxZoom bound the vertical field of view in degrees.
	MinZoom float32 = 1.0
	MaxZoom float32 = 120.0
)

// basisEpsilon is the squared length below which a direction is treated as degenerate.
const basisEpsilon = 1e-12

// Direction identifies one of the six camera translation directions.
type Direction int

const (
	// DirectionForward moves along the front vector.
	DirectionForward Direction = iota
	// DirectionBackward moves against the front vector.
	DirectionBackward
	// DirectionLeft moves against the right vector.
	DirectionLeft
	// DirectionRight moves along the right vector.
	DirectionRight
	// DirectionUp moves along the world up axis.
	DirectionUp
	// DirectionDown moves against the world up axis.
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	zoom float32

	movementSpeed    float32
	mouseSensitivity float32

	// anglesSet is true when an option supplied yaw/pitch explicitly, so the
	// front vector is rebuilt from the angles instead of the other way round.
	anglesSet bool
}

// Camera defines the interface for a first-person Euler-angle camera.
// The camera holds its pose (position plus a front/up/right basis derived from
// yaw and pitch) and a zoom used as the perspective field of view. All inputs are
// clamped or normalized; no operation fails.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Front returns the unit forward direction.
	//
	// Returns:
	//   - mgl32.Vec3: normalized front vector
	Front() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: normalized up vector
	Up() mgl32.Vec3

	// Right returns the camera's right vector, normalize(cross(front, up)).
	//
	// Returns:
	//   - mgl32.Vec3: normalized right vector
	Right() mgl32.Vec3

	// Yaw returns the horizontal look angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the vertical look angle in degrees, always within [MinPitch, MaxPitch].
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Zoom returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: zoom in degrees
	Zoom() float32

	// MovementSpeed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// MouseSensitivity returns the default look sensitivity in degrees per pixel.
	//
	// Returns:
	//   - float32: mouse sensitivity
	MouseSensitivity() float32

	// Move translates the camera position by distance along the given direction.
	// Forward/backward use the front vector, left/right the right vector and
	// up/down the world up axis. Orientation is unchanged.
	//
	// Parameters:
	//   - direction: the direction to move in
	//   - distance: world units to move (speed multiplied by elapsed time)
	Move(direction Direction, distance float32)

	// Look rotates the camera by the given offsets scaled by sensitivity.
	// Pitch is clamped to [MinPitch, MaxPitch] and the basis vectors are recomputed.
	//
	// Parameters:
	//   - xOffset: horizontal offset, added to yaw
	//   - yOffset: vertical offset, added to pitch
	//   - sensitivity: degrees per unit of offset
	Look(xOffset, yOffset, sensitivity float32)

	// AdjustZoom narrows the field of view by delta degrees (negative widens it),
	// clamped to [MinZoom, MaxZoom].
	//
	// Parameters:
	//   - delta: zoom change in degrees
	AdjustZoom(delta float32)

	// SetPose teleports the camera to a fixed position and orientation.
	// The front vector is normalized and stored as given and the right vector is
	// rebuilt from front and up. Yaw and pitch are re-derived from front so later
	// Look calls continue from the new orientation.
	//
	// Parameters:
	//   - position: new world-space position
	//   - front: new forward direction (need not be unit length)
	//   - up: new up vector (need not be unit length)
	SetPose(position, front, up mgl32.Vec3)

	// SetMovementSpeed sets the translation speed in world units per second.
	//
	// Parameters:
	//   - speed: movement speed
	SetMovementSpeed(speed float32)

	// SetMouseSensitivity sets the default look sensitivity.
	//
	// Parameters:
	//   - sensitivity: degrees per pixel
	SetMouseSensitivity(sensitivity float32)

	// ViewMatrix returns the look-at matrix built from position, position+front and up
	// as 16 floats (column-major). It has no side effects.
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the default viewer pose: position (0, 12, 25)
// looking slightly downward along -Z, world up +Y and a zoom of 80 degrees.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		position:         mgl32.Vec3{0, 12, 25},
		front:            mgl32.Vec3{0, -0.2, -2}.Normalize(),
		up:               mgl32.Vec3{0, 1, 0},
		worldUp:          mgl32.Vec3{0, 1, 0},
		zoom:             80,
		movementSpeed:    2.5,
		mouseSensitivity: 0.1,
	}
	for _, option := range options {
		option(c)
	}

	c.zoom = common.Clamp(c.zoom, MinZoom, MaxZoom)
	if c.anglesSet {
		c.pitch = common.Clamp(c.pitch, MinPitch, MaxPitch)
		c.updateVectors()
	} else {
		c.syncAngles()
		c.updateRight()
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseSensitivity
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSpeed = speed
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseSensitivity = sensitivity
}

func (c *cameraImpl) Move(direction Direction, distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch direction {
	case DirectionForward:
		c.position = c.position.Add(c.front.Mul(distance))
	case DirectionBackward:
		c.position = c.position.Sub(c.front.Mul(distance))
	case DirectionLeft:
		c.position = c.position.Sub(c.right.Mul(distance))
	case DirectionRight:
		c.position = c.position.Add(c.right.Mul(distance))
	case DirectionUp:
		c.position = c.position.Add(c.worldUp.Mul(distance))
	case DirectionDown:
		c.position = c.position.Sub(c.worldUp.Mul(distance))
	}
}

func (c *cameraImpl) Look(xOffset, yOffset, sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// yaw wraps at a full turn to keep float precision over long sessions
	c.yaw = math32.Mod(c.yaw+xOffset*sensitivity, 360)
	c.pitch = common.Clamp(c.pitch+yOffset*sensitivity, MinPitch, MaxPitch)
	c.updateVectors()
}

func (c *cameraImpl) AdjustZoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = common.Clamp(c.zoom-delta, MinZoom, MaxZoom)
}

func (c *cameraImpl) SetPose(position, front, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = position
	if front.LenSqr() > basisEpsilon {
		c.front = front.Normalize()
	}
	if up.LenSqr() > basisEpsilon {
		c.up = up.Normalize()
	}
	c.syncAngles()
	c.updateRight()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var view [16]float32
	common.LookAt(view[:], c.position, c.position.Add(c.front), c.up)
	return view
}

// updateVectors rebuilds the front, right and up vectors from yaw and pitch using the
// spherical-to-Cartesian conversion. Caller must hold the mutex.
func (c *cameraImpl) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()

	right := c.front.Cross(c.worldUp)
	if right.LenSqr() > basisEpsilon {
		c.right = right.Normalize()
	}
	c.up = c.right.Cross(c.front).Normalize()
}

// updateRight recomputes the right vector as normalize(cross(front, up)).
// A degenerate cross product keeps the previous right vector. Caller must hold the mutex.
func (c *cameraImpl) updateRight() {
	right := c.front.Cross(c.up)
	if right.LenSqr() > basisEpsilon {
		c.right = right.Normalize()
	}
}

// syncAngles derives yaw and pitch from the current front vector, the inverse of
// updateVectors. Caller must hold the mutex.
func (c *cameraImpl) syncAngles() {
	pitch := mgl32.RadToDeg(math32.Asin(common.Clamp(c.front[1], -1, 1)))
	c.pitch = common.Clamp(pitch, MinPitch, MaxPitch)
	if c.front[0] != 0 || c.front[2] != 0 {
		c.yaw = mgl32.RadToDeg(math32.Atan2(c.front[2], c.front[0]))
	}
}
