package engine

import (
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
	"github.com/Carmen-Shannon/oxy-view/engine/scene"
	"github.com/Carmen-Shannon/oxy-view/engine/view"
)

var (
	// ErrNoWindow is returned by Run when no window was configured.
	ErrNoWindow = errors.New("engine: no window")
	// ErrNoRenderer is returned by Run when no renderer was configured.
	ErrNoRenderer = errors.New("engine: no renderer")
	// ErrNoView is returned by Run when no view controller was configured.
	ErrNoView = errors.New("engine: no view controller")
)

// Surface is the part of window.Window the engine drives.
type Surface interface {
	SetUpdateCallback(callback func())
	SetResizeCallback(callback func(width, height int))
	SetScrollCallback(callback func(delta float64))
	SetMouseMoveCallback(callback func(x, y float64))
	ProcessMessages()
	RequestClose()
	Width() int
	Height() int
}

// FrameRenderer is the part of renderer.Renderer the engine drives.
type FrameRenderer interface {
	scene.Target
	scene.MeshUploader
	Resize(width, height int) error
	BeginFrame() error
	EndFrame()
	Present()
}

// engine implements the Engine interface.
// Drives one frame per window message loop iteration.
type engine struct {
	mu *sync.Mutex

	window   Surface
	renderer FrameRenderer
	view     view.ViewController

	scenes map[int]scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	quitOnce sync.Once
	frames   uint64
}

// Engine is the main entry point for the viewer.
// It owns the frame lifecycle: view update, scene rendering and presentation.
type Engine interface {
	// Window returns the surface the engine runs on.
	//
	// Returns:
	//   - Surface: the window, or nil if none was configured
	Window() Surface

	// View returns the view controller updated each frame.
	//
	// Returns:
	//   - view.ViewController: the controller, or nil if none was configured
	View() view.ViewController

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run wires input to the view controller, uploads scene meshes and runs the
	// window message loop. Blocks until the window closes.
	//
	// Returns:
	//   - error: a configuration error or the first mesh upload failure
	Run() error

	// Frame runs a single frame. Run calls it once per message loop iteration.
	Frame()

	// Frames returns the number of frames presented so far.
	//
	// Returns:
	//   - uint64: presented frame count
	Frames() uint64

	// Quit asks the window to close. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, view, scenes, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:       &sync.Mutex{},
		scenes:   make(map[int]scene.Scene),
		profiler: profiler.NewProfiler(0),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() Surface {
	return e.window
}

func (e *engine) View() view.ViewController {
	return e.view
}

func (e *engine) Run() error {
	switch {
	case e.window == nil:
		return ErrNoWindow
	case e.renderer == nil:
		return ErrNoRenderer
	case e.view == nil:
		return ErrNoView
	}

	e.view.SetViewport(e.window.Width(), e.window.Height())
	e.window.SetResizeCallback(e.handleResize)
	e.window.SetMouseMoveCallback(e.view.HandleMouseMove)
	e.window.SetScrollCallback(e.view.HandleScroll)

	for _, s := range e.orderedScenes(false) {
		if err := s.Prepare(e.renderer); err != nil {
			return err
		}
	}

	e.window.SetUpdateCallback(e.Frame)
	e.window.ProcessMessages()
	return nil
}

func (e *engine) Frame() {
	// Recover from panics inside the frame to let the message loop exit cleanly.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("frame recovered from panic: %v", r)
			e.Quit()
		}
	}()

	e.view.Update()

	if err := e.renderer.BeginFrame(); err != nil {
		log.Printf("skipping frame: %v", err)
		return
	}
	for _, s := range e.orderedScenes(true) {
		if err := s.Render(e.renderer); err != nil {
			log.Printf("scene %q: %v", s.Name(), err)
		}
	}
	e.renderer.EndFrame()
	e.renderer.Present()

	e.mu.Lock()
	e.frames++
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if profiling && e.profiler != nil {
		e.profiler.Tick(e.view.State().DeltaTime)
	}
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Quit asks the window to close via sync.Once. The message loop exits on its next iteration.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

// handleResize reconfigures the surface and the viewport. A failed reconfigure is
// logged, the next successful resize or frame recovers.
func (e *engine) handleResize(width, height int) {
	if err := e.renderer.Resize(width, height); err != nil {
		log.Printf("resize to %dx%d: %v", width, height, err)
	}
	e.view.SetViewport(width, height)
}

// orderedScenes returns the registered scenes in ascending key order.
func (e *engine) orderedScenes(activeOnly bool) []scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		s := e.scenes[k]
		if s == nil || (activeOnly && !s.Active()) {
			continue
		}
		out = append(out, s)
	}
	return out
}
