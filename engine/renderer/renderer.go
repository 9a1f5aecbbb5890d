package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

var (
	// ErrNotInFrame is returned by Draw outside a BeginFrame/EndFrame pair.
	ErrNotInFrame = errors.New("renderer: draw outside of a frame")
	// ErrMeshNotUploaded is returned by Draw for a shape that was never uploaded.
	ErrMeshNotUploaded = errors.New("renderer: mesh not uploaded")
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	frame  *uniform.Block
	object *uniform.Block

	uploaded map[mesh.Shape]bool
	inFrame  bool
	drawSlot int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	pendingClearColor    *[4]float64
}

// Renderer draws the primitive meshes with flat colours.
//
// It is a uniform.Sink: "view", "projection" and "viewPosition" go to the per-frame
// block, uploaded once in BeginFrame; the per-object names go to the object block,
// uploaded with every Draw. Unknown names are ignored.
type Renderer interface {
	uniform.Sink

	// UploadMesh creates the GPU vertex and index buffers for a primitive.
	//
	// Parameters:
	//   - shape: the primitive the mesh belongs to
	//   - m: the generated mesh
	//
	// Returns:
	//   - error: an error if buffer creation fails
	UploadMesh(shape mesh.Shape, m mesh.Mesh) error

	// Resize configures the underlying backend to handle a new surface size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the render targets could not be recreated
	Resize(width, height int) error

	// SetPresentMode sets the surface present mode. A call to Resize is required
	// for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the swapchain texture, begins the main render pass and
	// uploads the frame uniform block.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw draws an uploaded primitive with the current object uniforms.
	//
	// Parameters:
	//   - shape: the primitive to draw
	//
	// Returns:
	//   - error: ErrNotInFrame, ErrMeshNotUploaded or a backend error
	Draw(shape mesh.Shape) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	EndFrame()

	// Present presents the surface to the display. Must be called once per frame after EndFrame.
	Present()

	// Release frees the backend's GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer on the given window's surface and registers the
// primitive pipeline.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if the adapter, device, surface or pipeline could not be created
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	msaa := common.Coalesce(ptrValue(r.pendingMSAA), MSAA4x)

	var backend RendererBackend
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		b, err := newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
		if err != nil {
			return nil, err
		}
		backend = b
	}

	if err := r.attach(backend, win.Width(), win.Height()); err != nil {
		backend.Release()
		return nil, err
	}
	return r, nil
}

// newRenderer applies options to a backend-less renderer.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		frame:       uniform.NewFrameBlock(),
		object:      uniform.NewObjectBlock(),
		uploaded:    make(map[mesh.Shape]bool),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	return r
}

// attach applies pending settings to the backend, configures the surface and registers the pipeline.
func (r *renderer) attach(backend RendererBackend, width, height int) error {
	r.backend = backend
	if r.pendingPresentMode != nil {
		backend.SetPresentMode(*r.pendingPresentMode)
	}
	if r.pendingClearColor != nil {
		backend.SetClearColor(*r.pendingClearColor)
	}
	if err := backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("renderer: configure surface: %w", err)
	}
	if err := backend.RegisterScenePipeline(uint64(r.frame.Size()), uint64(r.object.Size())); err != nil {
		return fmt.Errorf("renderer: register pipeline: %w", err)
	}
	return nil
}

func (r *renderer) SetMat4(name string, m [16]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blockFor(name).SetMat4(name, m)
}

func (r *renderer) SetVec3(name string, v [3]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blockFor(name).SetVec3(name, v)
}

func (r *renderer) SetVec4(name string, v [4]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blockFor(name).SetVec4(name, v)
}

func (r *renderer) SetInt(name string, v int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blockFor(name).SetInt(name, v)
}

func (r *renderer) UploadMesh(shape mesh.Shape, m mesh.Mesh) error {
	if err := r.backend.InitMeshBuffers(shape, common.SliceToBytes(m.Vertices), common.SliceToBytes(m.Indices), len(m.Indices)); err != nil {
		return fmt.Errorf("renderer: upload %s: %w", shape, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploaded[shape] = true
	return nil
}

func (r *renderer) Resize(width, height int) error {
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) BeginFrame() error {
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFrame = true
	r.drawSlot = 0
	r.backend.WriteFrameUniforms(r.frame.Bytes())
	return nil
}

func (r *renderer) Draw(shape mesh.Shape) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inFrame {
		return ErrNotInFrame
	}
	if !r.uploaded[shape] {
		return fmt.Errorf("%w: %s", ErrMeshNotUploaded, shape)
	}

	slot := r.drawSlot
	r.drawSlot++
	return r.backend.DrawMesh(shape, slot, r.object.Bytes())
}

func (r *renderer) EndFrame() {
	r.mu.Lock()
	r.inFrame = false
	r.mu.Unlock()

	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.backend.Release()
}

// blockFor routes a uniform name to the block that holds it. Caller must hold the mutex.
func (r *renderer) blockFor(name string) *uniform.Block {
	if r.frame.Has(name) {
		return r.frame
	}
	return r.object
}

func ptrValue[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
