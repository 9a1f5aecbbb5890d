package view

import (
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
)

type ViewControllerBuilderOption func(*viewControllerImpl)

// WithCamera sets the camera the controller drives.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - ViewControllerBuilderOption: a function that sets the camera
func WithCamera(c camera.Camera) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.camera = c
	}
}

// WithInput sets the polled input source.
//
// Parameters:
//   - input: the input source
//
// Returns:
//   - ViewControllerBuilderOption: a function that sets the input source
func WithInput(input InputSource) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.input = input
	}
}

// WithSink sets where view, projection and viewPosition are published.
//
// Parameters:
//   - sink: the uniform sink
//
// Returns:
//   - ViewControllerBuilderOption: a function that sets the sink
func WithSink(sink uniform.Sink) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.sink = sink
	}
}

// WithViewport sets the initial viewport size. The mouse seed position is its centre.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - ViewControllerBuilderOption: a function that sets the viewport
func WithViewport(width, height int) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.state.Width = max(width, 0)
		vc.state.Height = max(height, 0)
	}
}

// WithSpeedScale sets the initial movement multiplier.
func WithSpeedScale(scale float32) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.state.SpeedScale = scale
	}
}

// WithLookSpeed sets the arrow-key look rate.
func WithLookSpeed(speed float32) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.state.LookSpeed = speed
	}
}

// WithSensitivity sets the look sensitivity applied to mouse and arrow-key offsets.
func WithSensitivity(sensitivity float32) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.state.Sensitivity = sensitivity
	}
}

// WithMaxDelta sets the per-frame delta time cap in seconds. 0 disables the cap.
func WithMaxDelta(seconds float32) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.state.MaxDelta = seconds
	}
}

// WithPresets replaces the key-bound camera presets.
//
// Parameters:
//   - presets: the presets, applied in order when several keys are held
//
// Returns:
//   - ViewControllerBuilderOption: a function that sets the presets
func WithPresets(presets ...Preset) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.presets = append([]Preset(nil), presets...)
	}
}

// WithModeChangeCallback replaces the projection mode notification. nil silences it.
//
// Parameters:
//   - fn: called once per mode transition, outside the controller lock
//
// Returns:
//   - ViewControllerBuilderOption: a function that sets the callback
func WithModeChangeCallback(fn ModeChangeFunc) ViewControllerBuilderOption {
	return func(vc *viewControllerImpl) {
		vc.onModeChange = fn
	}
}
