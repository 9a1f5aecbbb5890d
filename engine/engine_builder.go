package engine

import (
	"github.com/Carmen-Shannon/oxy-view/engine/scene"
	"github.com/Carmen-Shannon/oxy-view/engine/view"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine runs its message loop on.
//
// Parameters:
//   - w: a created window (window.Window satisfies Surface)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Surface) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that owns the frame lifecycle.
//
// Parameters:
//   - r: a created renderer (renderer.Renderer satisfies FrameRenderer)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r FrameRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithView sets the view controller updated at the start of every frame.
//
// Parameters:
//   - vc: the view controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithView(vc view.ViewController) EngineBuilderOption {
	return func(e *engine) {
		e.view = vc
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
// Scenes are rendered in ascending key order.
//
// Parameters:
//   - key: the z-index determining render order (lower renders first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}
