package view

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ScrollStep is the speed-scale change per unit of scroll.
	ScrollStep float32 = 0.5

	// MinSpeedScale and MaxSpeedScale bound the movement multiplier.
	MinSpeedScale float32 = 0.05
	MaxSpeedScale float32 = 20.0

	DefaultSpeedScale  float32 = 5.0
	DefaultLookSpeed   float32 = 500.0
	DefaultSensitivity float32 = 0.1

	// DefaultMaxDelta caps a single frame's delta time in seconds.
	DefaultMaxDelta float32 = 0.25

	DefaultWidth  = 1000
	DefaultHeight = 800
)

// ModeChangeFunc is called once for every projection mode transition.
type ModeChangeFunc func(mode ProjectionMode)

// logModeChange is the default ModeChangeFunc.
func logModeChange(mode ProjectionMode) {
	log.Printf("View set to %s", mode)
}

// ViewState is the per-controller input and timing state.
type ViewState struct {
	LastX      float64
	LastY      float64
	FirstMouse bool

	// DeltaTime is the last frame's elapsed time in seconds, never negative.
	DeltaTime float32
	LastFrame float64
	// clockSeeded is false until the first Update has recorded a timestamp.
	clockSeeded bool

	Mode ProjectionMode

	SpeedScale  float32
	LookSpeed   float32
	Sensitivity float32
	MaxDelta    float32

	Width  int
	Height int
}

// ViewSnapshot is a copy of the controller state together with the camera pose.
type ViewSnapshot struct {
	State ViewState

	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Zoom     float32
}

// Settings carries live-tunable values. Zero fields leave the current value unchanged.
type Settings struct {
	SpeedScale    float32
	LookSpeed     float32
	Sensitivity   float32
	MovementSpeed float32
	MaxDelta      float32
}

type viewControllerImpl struct {
	mu *sync.Mutex

	camera camera.Camera
	input  InputSource
	sink   uniform.Sink

	state   ViewState
	presets []Preset

	onModeChange ModeChangeFunc
}

// ViewController turns polled keyboard state and mouse/scroll events into camera motion
// and a projection mode, then publishes the view and projection matrices each frame.
type ViewController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// State returns a copy of the current ViewState.
	//
	// Returns:
	//   - ViewState: the state copy
	State() ViewState

	// Snapshot returns a copy of the ViewState together with the camera pose.
	//
	// Returns:
	//   - ViewSnapshot: the snapshot
	Snapshot() ViewSnapshot

	// Mode returns the current projection mode.
	//
	// Returns:
	//   - ProjectionMode: the current mode
	Mode() ProjectionMode

	// SetMode switches the projection mode. The mode change callback fires only when
	// the mode actually changes.
	//
	// Parameters:
	//   - mode: the new projection mode
	SetMode(mode ProjectionMode)

	// Projection derives this frame's projection parameters from the mode, camera zoom and viewport.
	//
	// Returns:
	//   - ProjectionSpec: the projection parameters
	Projection() ProjectionSpec

	// ProjectionMatrix returns the matrix for Projection().
	//
	// Returns:
	//   - [16]float32: the column-major projection matrix
	ProjectionMatrix() [16]float32

	// ViewMatrix returns the camera's view matrix.
	//
	// Returns:
	//   - [16]float32: the column-major view matrix
	ViewMatrix() [16]float32

	// Update runs one frame: advance the clock, poll keys (movement, look, presets,
	// projection, escape) and publish view, projection and viewPosition to the sink.
	// A nil input source skips polling and a nil sink skips publishing.
	Update()

	// HandleMouseMove applies a cursor position event. The first event after construction
	// or ResetMouse only records the position.
	//
	// Parameters:
	//   - x: cursor x in pixels
	//   - y: cursor y in pixels (top-left origin)
	HandleMouseMove(x, y float64)

	// HandleScroll adjusts the speed scale by ScrollStep per unit, clamped to
	// [MinSpeedScale, MaxSpeedScale].
	//
	// Parameters:
	//   - delta: vertical scroll offset
	HandleScroll(delta float64)

	// ResetMouse makes the next mouse event seed the last position again.
	ResetMouse()

	// SetViewport records the framebuffer size used for the aspect ratio.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	SetViewport(width, height int)

	// SetSink replaces the uniform sink. nil disables publishing.
	//
	// Parameters:
	//   - sink: the uniform sink
	SetSink(sink uniform.Sink)

	// SetInput replaces the input source. nil disables polling.
	//
	// Parameters:
	//   - input: the input source
	SetInput(input InputSource)

	// Apply merges live settings into the controller and its camera.
	//
	// Parameters:
	//   - settings: the new values; zero fields are ignored
	Apply(settings Settings)
}

var _ ViewController = &viewControllerImpl{}

// NewViewController creates a controller in perspective mode with speed scale 5,
// arrow-key look speed 500, look sensitivity 0.1 and a 1000x800 viewport.
// A default camera is created when none is supplied.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - ViewController: the newly created controller
func NewViewController(options ...ViewControllerBuilderOption) ViewController {
	vc := &viewControllerImpl{
		mu: &sync.Mutex{},
		state: ViewState{
			FirstMouse:  true,
			Mode:        ProjectionModePerspective,
			SpeedScale:  DefaultSpeedScale,
			LookSpeed:   DefaultLookSpeed,
			Sensitivity: DefaultSensitivity,
			MaxDelta:    DefaultMaxDelta,
			Width:       DefaultWidth,
			Height:      DefaultHeight,
		},
		presets:      DefaultPresets(),
		onModeChange: logModeChange,
	}
	for _, option := range options {
		option(vc)
	}

	if vc.camera == nil {
		vc.camera = camera.NewCamera()
	}
	vc.state.SpeedScale = common.Clamp(vc.state.SpeedScale, MinSpeedScale, MaxSpeedScale)
	vc.state.LastX = float64(vc.state.Width) / 2
	vc.state.LastY = float64(vc.state.Height) / 2
	return vc
}

func (vc *viewControllerImpl) Camera() camera.Camera {
	return vc.camera
}

func (vc *viewControllerImpl) State() ViewState {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.state
}

func (vc *viewControllerImpl) Snapshot() ViewSnapshot {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return ViewSnapshot{
		State:    vc.state,
		Position: vc.camera.Position(),
		Front:    vc.camera.Front(),
		Up:       vc.camera.Up(),
		Yaw:      vc.camera.Yaw(),
		Pitch:    vc.camera.Pitch(),
		Zoom:     vc.camera.Zoom(),
	}
}

func (vc *viewControllerImpl) Mode() ProjectionMode {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.state.Mode
}

func (vc *viewControllerImpl) SetMode(mode ProjectionMode) {
	vc.mu.Lock()
	changed := vc.setModeLocked(mode)
	notify := vc.onModeChange
	vc.mu.Unlock()

	if changed && notify != nil {
		notify(mode)
	}
}

func (vc *viewControllerImpl) Projection() ProjectionSpec {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.projectionLocked()
}

func (vc *viewControllerImpl) ProjectionMatrix() [16]float32 {
	return vc.Projection().Matrix()
}

func (vc *viewControllerImpl) ViewMatrix() [16]float32 {
	return vc.camera.ViewMatrix()
}

func (vc *viewControllerImpl) Update() {
	vc.mu.Lock()
	input := vc.input
	sink := vc.sink

	var changedTo []ProjectionMode
	if input != nil {
		vc.advanceClock(input.Time())
		changedTo = vc.pollKeys(input)
	} else {
		vc.state.DeltaTime = 0
	}

	var viewM, projM [16]float32
	var position mgl32.Vec3
	if sink != nil {
		viewM = vc.camera.ViewMatrix()
		projM = vc.projectionLocked().Matrix()
		position = vc.camera.Position()
	}
	notify := vc.onModeChange
	vc.mu.Unlock()

	if notify != nil {
		for _, mode := range changedTo {
			notify(mode)
		}
	}

	if sink != nil {
		sink.SetMat4(uniform.View, viewM)
		sink.SetMat4(uniform.Projection, projM)
		sink.SetVec3(uniform.ViewPosition, position)
	}
}

func (vc *viewControllerImpl) HandleMouseMove(x, y float64) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.state.FirstMouse {
		vc.state.LastX = x
		vc.state.LastY = y
		vc.state.FirstMouse = false
		return
	}

	// y is reversed since window coordinates grow downward
	xOffset := float32(x - vc.state.LastX)
	yOffset := float32(vc.state.LastY - y)
	vc.state.LastX = x
	vc.state.LastY = y

	vc.camera.Look(xOffset, yOffset, vc.state.Sensitivity)
}

func (vc *viewControllerImpl) HandleScroll(delta float64) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.state.SpeedScale = common.Clamp(vc.state.SpeedScale+ScrollStep*float32(delta), MinSpeedScale, MaxSpeedScale)
}

func (vc *viewControllerImpl) ResetMouse() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.state.FirstMouse = true
}

func (vc *viewControllerImpl) SetViewport(width, height int) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.state.Width = max(width, 0)
	vc.state.Height = max(height, 0)
}

func (vc *viewControllerImpl) SetSink(sink uniform.Sink) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.sink = sink
}

func (vc *viewControllerImpl) SetInput(input InputSource) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.input = input
}

func (vc *viewControllerImpl) Apply(settings Settings) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	vc.state.SpeedScale = common.Clamp(common.Coalesce(settings.SpeedScale, vc.state.SpeedScale), MinSpeedScale, MaxSpeedScale)
	vc.state.LookSpeed = common.Coalesce(settings.LookSpeed, vc.state.LookSpeed)
	vc.state.Sensitivity = common.Coalesce(settings.Sensitivity, vc.state.Sensitivity)
	vc.state.MaxDelta = common.Coalesce(settings.MaxDelta, vc.state.MaxDelta)
	if settings.MovementSpeed > 0 {
		vc.camera.SetMovementSpeed(settings.MovementSpeed)
	}
}

// advanceClock updates DeltaTime from the given timestamp. The first call only seeds
// the clock. Caller must hold the mutex.
func (vc *viewControllerImpl) advanceClock(now float64) {
	if !vc.state.clockSeeded {
		vc.state.LastFrame = now
		vc.state.clockSeeded = true
		vc.state.DeltaTime = 0
		return
	}

	dt := float32(now - vc.state.LastFrame)
	vc.state.LastFrame = now
	if dt < 0 {
		dt = 0
	}
	if vc.state.MaxDelta > 0 && dt > vc.state.MaxDelta {
		dt = vc.state.MaxDelta
	}
	vc.state.DeltaTime = dt
}

// pollKeys applies held keys for this frame and returns the mode transitions that
// occurred. Caller must hold the mutex.
func (vc *viewControllerImpl) pollKeys(input InputSource) []ProjectionMode {
	if input.KeyPressed(common.KeyEsc) {
		input.RequestClose()
	}

	distance := vc.camera.MovementSpeed() * vc.state.DeltaTime * vc.state.SpeedScale
	movement := []struct {
		key       uint32
		direction camera.Direction
	}{
		{common.KeyW, camera.DirectionForward},
		{common.KeyS, camera.DirectionBackward},
		{common.KeyA, camera.DirectionLeft},
		{common.KeyD, camera.DirectionRight},
		{common.KeyQ, camera.DirectionDown},
		{common.KeyE, camera.DirectionUp},
	}
	for _, m := range movement {
		if input.KeyPressed(m.key) {
			vc.camera.Move(m.direction, distance)
		}
	}

	var xLook, yLook float32
	look := vc.state.LookSpeed * vc.state.DeltaTime * vc.state.SpeedScale
	if input.KeyPressed(common.KeyRight) {
		xLook += look
	}
	if input.KeyPressed(common.KeyLeft) {
		xLook -= look
	}
	if input.KeyPressed(common.KeyUp) {
		yLook += look
	}
	if input.KeyPressed(common.KeyDown) {
		yLook -= look
	}
	if xLook != 0 || yLook != 0 {
		vc.camera.Look(xLook, yLook, vc.state.Sensitivity)
	}

	for _, p := range vc.presets {
		if input.KeyPressed(p.KeyCode) {
			vc.camera.SetPose(p.Position, p.Front, p.Up)
		}
	}

	var changed []ProjectionMode
	ortho := input.KeyPressed(common.KeyT)
	perspective := input.KeyPressed(common.KeyG)
	// both held is ambiguous and leaves the mode alone
	switch {
	case ortho && !perspective:
		if vc.setModeLocked(ProjectionModeOrthographic) {
			changed = append(changed, ProjectionModeOrthographic)
		}
	case perspective && !ortho:
		if vc.setModeLocked(ProjectionModePerspective) {
			changed = append(changed, ProjectionModePerspective)
		}
	}
	return changed
}

// setModeLocked stores mode and reports whether it differed. Caller must hold the mutex.
func (vc *viewControllerImpl) setModeLocked(mode ProjectionMode) bool {
	if vc.state.Mode == mode {
		return false
	}
	vc.state.Mode = mode
	return true
}

// projectionLocked derives the projection for the current state. Caller must hold the mutex.
func (vc *viewControllerImpl) projectionLocked() ProjectionSpec {
	return NewProjectionSpec(vc.state.Mode, vc.camera.Zoom(), vc.state.Width, vc.state.Height)
}
