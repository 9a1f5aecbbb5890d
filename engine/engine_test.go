package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
	"github.com/Carmen-Shannon/oxy-view/engine/scene"
	"github.com/Carmen-Shannon/oxy-view/engine/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface runs a fixed number of message loop iterations, or until closed.
type fakeSurface struct {
	iterations int
	keys       map[uint32]bool
	clock      float64
	closed     int

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float64)
	onMouseMove func(x, y float64)
}

func newFakeSurface(iterations int) *fakeSurface {
	return &fakeSurface{iterations: iterations, keys: make(map[uint32]bool)}
}

func (f *fakeSurface) SetUpdateCallback(cb func())                  { f.onUpdate = cb }
func (f *fakeSurface) SetResizeCallback(cb func(width, height int)) { f.onResize = cb }
func (f *fakeSurface) SetScrollCallback(cb func(delta float64))     { f.onScroll = cb }
func (f *fakeSurface) SetMouseMoveCallback(cb func(x, y float64))   { f.onMouseMove = cb }
func (f *fakeSurface) RequestClose()                                { f.closed++ }
func (f *fakeSurface) Width() int                                   { return 1000 }
func (f *fakeSurface) Height() int                                  { return 800 }
func (f *fakeSurface) KeyPressed(code uint32) bool                  { return f.keys[code] }
func (f *fakeSurface) Time() float64                                { return f.clock }

func (f *fakeSurface) ProcessMessages() {
	for i := 0; i < f.iterations && f.closed == 0; i++ {
		f.clock += 1.0 / 60
		if f.onUpdate != nil {
			f.onUpdate()
		}
	}
}

var (
	_ Surface          = &fakeSurface{}
	_ view.InputSource = &fakeSurface{}
)

type fakeRenderer struct {
	uploads   map[mesh.Shape]int
	resized   [][2]int
	draws     []mesh.Shape
	mat4      map[string][16]float32
	frames    int
	presented int
	beginErr  error
	uploadErr error
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{uploads: make(map[mesh.Shape]int), mat4: make(map[string][16]float32)}
}

func (f *fakeRenderer) SetMat4(name string, m [16]float32) { f.mat4[name] = m }
func (f *fakeRenderer) SetVec3(string, [3]float32)        {}
func (f *fakeRenderer) SetVec4(string, [4]float32)        {}
func (f *fakeRenderer) SetInt(string, int32)              {}
func (f *fakeRenderer) Draw(shape mesh.Shape) error {
	f.draws = append(f.draws, shape)
	return nil
}
func (f *fakeRenderer) UploadMesh(shape mesh.Shape, _ mesh.Mesh) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads[shape]++
	return nil
}
func (f *fakeRenderer) Resize(width, height int) error {
	f.resized = append(f.resized, [2]int{width, height})
	return nil
}
func (f *fakeRenderer) BeginFrame() error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.frames++
	return nil
}
func (f *fakeRenderer) EndFrame() {}
func (f *fakeRenderer) Present()  { f.presented++ }

var _ FrameRenderer = &fakeRenderer{}

func newTestEngine(iterations int, options ...EngineBuilderOption) (Engine, *fakeSurface, *fakeRenderer) {
	surface := newFakeSurface(iterations)
	r := newFakeRenderer()
	vc := view.NewViewController(view.WithInput(surface), view.WithSink(r))
	base := []EngineBuilderOption{WithWindow(surface), WithRenderer(r), WithView(vc)}
	return NewEngine(append(base, options...)...), surface, r
}

func TestRunRequiresComponents(t *testing.T) {
	assert.ErrorIs(t, NewEngine().Run(), ErrNoWindow)
	assert.ErrorIs(t, NewEngine(WithWindow(newFakeSurface(0))).Run(), ErrNoRenderer)
	assert.ErrorIs(t, NewEngine(WithWindow(newFakeSurface(0)), WithRenderer(newFakeRenderer())).Run(), ErrNoView)
}

func TestRunRendersActiveScenesInKeyOrder(t *testing.T) {
	front := scene.NewScene("front", scene.WithActive(true), scene.WithCommands(scene.DrawCommand{Name: "box", Shape: mesh.ShapeBox, Scale: [3]float32{1, 1, 1}}))
	back := scene.NewScene("back", scene.WithActive(true), scene.WithCommands(scene.DrawCommand{Name: "floor", Shape: mesh.ShapePlane, Scale: [3]float32{1, 1, 1}}))
	hidden := scene.NewScene("hidden", scene.WithCommands(scene.DrawCommand{Name: "ball", Shape: mesh.ShapeSphere, Scale: [3]float32{1, 1, 1}}))

	e, _, r := newTestEngine(3, WithScene(1, front), WithScene(0, back), WithScene(2, hidden))
	require.NoError(t, e.Run())

	assert.Equal(t, 3, r.frames)
	assert.Equal(t, 3, r.presented)
	assert.Equal(t, uint64(3), e.Frames())
	assert.Equal(t, []mesh.Shape{
		mesh.ShapePlane, mesh.ShapeBox,
		mesh.ShapePlane, mesh.ShapeBox,
		mesh.ShapePlane, mesh.ShapeBox,
	}, r.draws)

	// inactive scenes are still prepared so they can be activated later
	assert.Equal(t, 1, r.uploads[mesh.ShapeSphere])

	_, ok := r.mat4[uniform.View]
	assert.True(t, ok)
	_, ok = r.mat4[uniform.Projection]
	assert.True(t, ok)
}

func TestRunReturnsPrepareError(t *testing.T) {
	s := scene.NewScene("main", scene.WithActive(true), scene.WithCommands(scene.DefaultCommands()...))
	e, _, r := newTestEngine(1, WithScene(0, s))
	r.uploadErr = errors.New("device lost")

	assert.ErrorIs(t, e.Run(), r.uploadErr)
	assert.Zero(t, r.frames)
}

func TestFrameSkipsOnBeginError(t *testing.T) {
	s := scene.NewScene("main", scene.WithActive(true), scene.WithCommands(scene.DefaultCommands()...))
	e, _, r := newTestEngine(2, WithScene(0, s))
	r.beginErr = errors.New("surface outdated")

	require.NoError(t, e.Run())
	assert.Empty(t, r.draws)
	assert.Zero(t, r.presented)
	assert.Zero(t, e.Frames())
}

func TestEscapeClosesLoop(t *testing.T) {
	e, surface, r := newTestEngine(10)
	surface.keys[common.KeyEsc] = true

	require.NoError(t, e.Run())
	assert.Equal(t, 1, r.frames)
	assert.Equal(t, 1, surface.closed)
}

func TestRunWiresInputCallbacks(t *testing.T) {
	e, surface, r := newTestEngine(0)
	require.NoError(t, e.Run())

	surface.onResize(640, 480)
	assert.Equal(t, [][2]int{{640, 480}}, r.resized)
	st := e.View().State()
	assert.Equal(t, 640, st.Width)
	assert.Equal(t, 480, st.Height)

	surface.onScroll(1)
	assert.InDelta(t, 5.5, e.View().State().SpeedScale, 1e-6)

	surface.onMouseMove(10, 20)
	assert.False(t, e.View().State().FirstMouse)
}

func TestQuitIsIdempotent(t *testing.T) {
	e, surface, _ := newTestEngine(0)
	e.Quit()
	e.Quit()
	assert.Equal(t, 1, surface.closed)

	assert.NotPanics(t, NewEngine().Quit)
}

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	s := scene.NewScene("a")
	e.AddScene(4, s)
	assert.Equal(t, s, e.Scene(4))

	scenes := e.Scenes()
	delete(scenes, 4)
	assert.Len(t, e.Scenes(), 1)

	e.RemoveScene(4)
	assert.Nil(t, e.Scene(4))
}

func TestProfilerToggle(t *testing.T) {
	e, _, _ := newTestEngine(2, WithProfiling(true))
	e.DisableProfiler()
	e.EnableProfiler()
	assert.NoError(t, e.Run())
}
