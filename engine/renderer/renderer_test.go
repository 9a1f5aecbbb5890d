package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDraw struct {
	shape  mesh.Shape
	slot   int
	object []byte
}

type fakeBackend struct {
	configured  [][2]int
	presentMode *PresentMode
	clearColor  *[4]float64
	frameSize   uint64
	objectSize  uint64
	meshes      map[mesh.Shape]int
	frames      int
	frameData   []byte
	draws       []fakeDraw
	ended       int
	presented   int
	released    bool

	beginErr    error
	pipelineErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{meshes: make(map[mesh.Shape]int)}
}

func (f *fakeBackend) ConfigureSurface(width, height int) error {
	f.configured = append(f.configured, [2]int{width, height})
	return nil
}
func (f *fakeBackend) SetPresentMode(mode PresentMode)  { f.presentMode = &mode }
func (f *fakeBackend) SetClearColor(color [4]float64) { f.clearColor = &color }
func (f *fakeBackend) RegisterScenePipeline(frameSize, objectSize uint64) error {
	f.frameSize, f.objectSize = frameSize, objectSize
	return f.pipelineErr
}
func (f *fakeBackend) InitMeshBuffers(shape mesh.Shape, vertexData, indexData []byte, indexCount int) error {
	if len(vertexData) != 0 && len(vertexData)%mesh.VertexStride != 0 {
		return errors.New("bad stride")
	}
	if len(indexData) != indexCount*4 {
		return errors.New("bad index data")
	}
	f.meshes[shape] = indexCount
	return nil
}
func (f *fakeBackend) BeginFrame() error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.frames++
	return nil
}
func (f *fakeBackend) WriteFrameUniforms(data []byte) {
	f.frameData = append([]byte(nil), data...)
}
func (f *fakeBackend) DrawMesh(shape mesh.Shape, slot int, objectData []byte) error {
	f.draws = append(f.draws, fakeDraw{shape: shape, slot: slot, object: append([]byte(nil), objectData...)})
	return nil
}
func (f *fakeBackend) EndFrame() { f.ended++ }
func (f *fakeBackend) Present()  { f.presented++ }
func (f *fakeBackend) Release()  { f.released = true }

var _ RendererBackend = &fakeBackend{}

func newTestRenderer(t *testing.T, options ...RendererBuilderOption) (*renderer, *fakeBackend) {
	t.Helper()
	r := newRenderer(BackendTypeWGPU, options...)
	b := newFakeBackend()
	require.NoError(t, r.attach(b, 1000, 800))
	return r, b
}

func TestAttachConfiguresBackend(t *testing.T) {
	_, b := newTestRenderer(t,
		WithPresentMode(PresentModeVSync),
		WithClearColor([4]float64{0.2, 0.3, 0.4, 1}),
	)

	assert.Equal(t, [][2]int{{1000, 800}}, b.configured)
	require.NotNil(t, b.presentMode)
	assert.Equal(t, PresentModeVSync, *b.presentMode)
	require.NotNil(t, b.clearColor)
	assert.Equal(t, [4]float64{0.2, 0.3, 0.4, 1}, *b.clearColor)
	assert.Equal(t, uint64(144), b.frameSize)
	assert.Equal(t, uint64(96), b.objectSize)
}

func TestAttachPipelineError(t *testing.T) {
	r := newRenderer(BackendTypeWGPU)
	b := newFakeBackend()
	b.pipelineErr = errors.New("bad shader")

	err := r.attach(b, 10, 10)
	assert.ErrorIs(t, err, b.pipelineErr)
}

func TestUniformRouting(t *testing.T) {
	r, b := newTestRenderer(t)
	require.NoError(t, r.UploadMesh(mesh.ShapeBox, mesh.Box()))

	var view [16]float32
	view[0] = 2
	r.SetMat4(uniform.View, view)
	r.SetVec3(uniform.ViewPosition, [3]float32{1, 2, 3})
	r.SetVec4(uniform.ObjectColor, [4]float32{1, 0, 0, 1})
	r.SetInt(uniform.UseLighting, 1)
	r.SetInt("unknown", 5)

	v, ok := r.frame.Float(uniform.View, 0)
	require.True(t, ok)
	assert.Equal(t, float32(2), v)
	v, ok = r.frame.Float(uniform.ViewPosition, 2)
	require.True(t, ok)
	assert.Equal(t, float32(3), v)
	c, ok := r.object.Float(uniform.ObjectColor, 0)
	require.True(t, ok)
	assert.Equal(t, float32(1), c)

	require.NoError(t, r.BeginFrame())
	assert.Equal(t, r.frame.Bytes(), b.frameData)

	require.NoError(t, r.Draw(mesh.ShapeBox))
	require.Len(t, b.draws, 1)
	assert.Equal(t, r.object.Bytes(), b.draws[0].object)
}

func TestDrawAssignsSequentialSlots(t *testing.T) {
	r, b := newTestRenderer(t)
	require.NoError(t, r.UploadMesh(mesh.ShapePlane, mesh.Plane()))
	require.NoError(t, r.UploadMesh(mesh.ShapeSphere, mesh.Sphere(8, 4)))

	for range 2 {
		require.NoError(t, r.BeginFrame())
		require.NoError(t, r.Draw(mesh.ShapePlane))
		require.NoError(t, r.Draw(mesh.ShapeSphere))
		require.NoError(t, r.Draw(mesh.ShapePlane))
		r.EndFrame()
		r.Present()
	}

	slots := make([]int, len(b.draws))
	for i, d := range b.draws {
		slots[i] = d.slot
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, slots)
	assert.Equal(t, 2, b.frames)
	assert.Equal(t, 2, b.ended)
	assert.Equal(t, 2, b.presented)
}

func TestDrawErrors(t *testing.T) {
	r, b := newTestRenderer(t)

	assert.ErrorIs(t, r.Draw(mesh.ShapeBox), ErrNotInFrame)

	require.NoError(t, r.BeginFrame())
	assert.ErrorIs(t, r.Draw(mesh.ShapeCone), ErrMeshNotUploaded)
	r.EndFrame()

	assert.ErrorIs(t, r.Draw(mesh.ShapeBox), ErrNotInFrame)
	assert.Empty(t, b.draws)
}

func TestBeginFrameError(t *testing.T) {
	r, b := newTestRenderer(t)
	b.beginErr = errors.New("surface lost")

	assert.ErrorIs(t, r.BeginFrame(), b.beginErr)
	assert.ErrorIs(t, r.Draw(mesh.ShapeBox), ErrNotInFrame)
}

func TestUploadMeshBytes(t *testing.T) {
	r, b := newTestRenderer(t)
	m := mesh.Cylinder(12)

	require.NoError(t, r.UploadMesh(mesh.ShapeCylinder, m))
	assert.Equal(t, len(m.Indices), b.meshes[mesh.ShapeCylinder])
}

func TestResizeAndRelease(t *testing.T) {
	r, b := newTestRenderer(t)

	require.NoError(t, r.Resize(640, 480))
	assert.Equal(t, [2]int{640, 480}, b.configured[len(b.configured)-1])

	r.SetPresentMode(PresentModeUncapped)
	assert.Equal(t, PresentModeUncapped, *b.presentMode)

	r.Release()
	assert.True(t, b.released)
}
