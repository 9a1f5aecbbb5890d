package renderer

import "github.com/Carmen-Shannon/oxy-view/engine/mesh"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the GPU API seam under the Renderer. The Renderer owns the
// uniform blocks and draw-slot bookkeeping; the backend owns every GPU object.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and the MSAA and depth targets for a new size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if a render target could not be created
	ConfigureSurface(width, height int) error

	// SetPresentMode sets the surface present mode. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the RGBA colour the main pass clears to.
	//
	// Parameters:
	//   - color: the clear colour
	SetClearColor(color [4]float64)

	// RegisterScenePipeline compiles the primitive shader and creates the render pipeline
	// with the frame (group 0) and object (group 1) uniform layouts.
	//
	// Parameters:
	//   - frameSize: size of the frame uniform block in bytes
	//   - objectSize: size of the object uniform block in bytes
	//
	// Returns:
	//   - error: an error if the shader module, layouts or pipeline could not be created
	RegisterScenePipeline(frameSize, objectSize uint64) error

	// InitMeshBuffers uploads vertex and index data for a primitive.
	//
	// Parameters:
	//   - shape: the primitive the buffers belong to
	//   - vertexData: interleaved vertex bytes
	//   - indexData: uint32 index bytes
	//   - indexCount: the number of indices
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(shape mesh.Shape, vertexData, indexData []byte, indexCount int) error

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// WriteFrameUniforms uploads the frame uniform block.
	//
	// Parameters:
	//   - data: the block bytes
	WriteFrameUniforms(data []byte)

	// DrawMesh uploads the object block into the given draw slot and encodes an indexed draw.
	//
	// Parameters:
	//   - shape: the uploaded primitive to draw
	//   - slot: the per-frame draw index selecting the object uniform buffer
	//   - objectData: the object block bytes
	//
	// Returns:
	//   - error: an error if the mesh is missing or the slot buffer could not be created
	DrawMesh(shape mesh.Shape, slot int, objectData []byte) error

	// EndFrame ends the render pass and submits the command buffer.
	EndFrame()

	// Present presents the surface and releases the swapchain texture.
	Present()

	// Release frees every GPU object held by the backend.
	Release()
}
