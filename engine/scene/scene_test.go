package scene

import (
	"errors"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawRecord struct {
	shape       mesh.Shape
	model       [16]float32
	color       [4]float32
	useTexture  int32
	useLighting int32
}

type fakeTarget struct {
	model   [16]float32
	color   [4]float32
	ints    map[string]int32
	draws   []drawRecord
	drawErr error
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{ints: make(map[string]int32)}
}

func (f *fakeTarget) SetMat4(name string, m [16]float32) {
	if name == uniform.Model {
		f.model = m
	}
}
func (f *fakeTarget) SetVec3(string, [3]float32) {}
func (f *fakeTarget) SetVec4(name string, v [4]float32) {
	if name == uniform.ObjectColor {
		f.color = v
	}
}
func (f *fakeTarget) SetInt(name string, v int32) { f.ints[name] = v }

func (f *fakeTarget) Draw(shape mesh.Shape) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	f.draws = append(f.draws, drawRecord{
		shape:       shape,
		model:       f.model,
		color:       f.color,
		useTexture:  f.ints[uniform.UseTexture],
		useLighting: f.ints[uniform.UseLighting],
	})
	return nil
}

type fakeUploader struct {
	mu       sync.Mutex
	uploads  map[mesh.Shape]int
	failWith map[mesh.Shape]error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: make(map[mesh.Shape]int), failWith: make(map[mesh.Shape]error)}
}

func (f *fakeUploader) UploadMesh(shape mesh.Shape, m mesh.Mesh) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failWith[shape]; err != nil {
		return err
	}
	if len(m.Vertices) == 0 {
		return errors.New("empty mesh")
	}
	f.uploads[shape]++
	return nil
}

func TestDefaultCommands(t *testing.T) {
	commands := DefaultCommands()
	require.Len(t, commands, 8)

	shapes := make([]mesh.Shape, len(commands))
	for i, c := range commands {
		shapes[i] = c.Shape
	}
	assert.Equal(t, []mesh.Shape{
		mesh.ShapePlane, mesh.ShapePlane,
		mesh.ShapeCylinder, mesh.ShapeCylinder, mesh.ShapeCylinder,
		mesh.ShapeSphere, mesh.ShapeCone, mesh.ShapeBox,
	}, shapes)

	assert.Equal(t, [4]float32{1, 0, 0, 1}, commands[7].Color)
	assert.Equal(t, mgl32.Vec3{0, 30, 0}, commands[7].RotationDeg)
}

func TestDrawCommandModelMatrix(t *testing.T) {
	c := DrawCommand{
		Shape:       mesh.ShapePlane,
		Scale:       mgl32.Vec3{20, 1, 10},
		RotationDeg: mgl32.Vec3{90, 0, 0},
		Position:    mgl32.Vec3{0, 9, -10},
	}
	m := mgl32.Mat4(c.ModelMatrix())

	// the far corner (1, 0, -1) of the plane is stood upright at the top of the back wall
	p := m.Mul4x1(mgl32.Vec4{1, 0, -1, 1})
	assert.InDelta(t, 20, p[0], 1e-4)
	assert.InDelta(t, 19, p[1], 1e-4)
	assert.InDelta(t, -10, p[2], 1e-4)

	ident := DrawCommand{Scale: mgl32.Vec3{1, 1, 1}}
	assert.Equal(t, [16]float32(mgl32.Ident4()), ident.ModelMatrix())
}

func TestRenderEvaluatesCommandsInOrder(t *testing.T) {
	s := NewScene("test", WithCommands(DefaultCommands()...), WithBuildWorkers(2))
	target := newFakeTarget()

	require.NoError(t, s.Render(target))

	commands := DefaultCommands()
	require.Len(t, target.draws, len(commands))
	for i, d := range target.draws {
		assert.Equal(t, commands[i].Shape, d.shape)
		assert.Equal(t, commands[i].ModelMatrix(), d.model)
		assert.Equal(t, commands[i].Color, d.color)
		assert.Zero(t, d.useTexture)
		assert.Zero(t, d.useLighting)
	}
}

func TestRenderWrapsDrawError(t *testing.T) {
	s := NewScene("test", WithCommands(DefaultCommands()[0]))
	target := newFakeTarget()
	target.drawErr = errors.New("no mesh")

	err := s.Render(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, target.drawErr)
	assert.Contains(t, err.Error(), "floor")

	assert.NoError(t, s.Render(nil))
}

func TestPrepareUploadsEachShapeOnce(t *testing.T) {
	s := NewScene("test", WithCommands(DefaultCommands()...), WithBuildWorkers(3))
	up := newFakeUploader()

	require.NoError(t, s.Prepare(up))
	assert.Len(t, up.uploads, 5)
	for _, shape := range mesh.Shapes {
		assert.Equal(t, 1, up.uploads[shape], shape.String())
	}

	require.NoError(t, s.Prepare(up))
	for _, shape := range mesh.Shapes {
		assert.Equal(t, 1, up.uploads[shape], "second prepare skips %s", shape)
	}
	assert.NoError(t, s.Prepare(nil))
}

func TestPrepareJoinsUploadErrors(t *testing.T) {
	s := NewScene("test", WithCommands(DefaultCommands()...))
	up := newFakeUploader()
	up.failWith[mesh.ShapeCone] = errors.New("out of memory")

	err := s.Prepare(up)
	require.Error(t, err)
	assert.ErrorIs(t, err, up.failWith[mesh.ShapeCone])
	assert.Len(t, up.uploads, 4)

	// the failed shape is retried
	delete(up.failWith, mesh.ShapeCone)
	require.NoError(t, s.Prepare(up))
	assert.Equal(t, 1, up.uploads[mesh.ShapeCone])
}

func TestSceneAccessors(t *testing.T) {
	s := NewScene("first", WithActive(true))
	assert.Equal(t, "first", s.Name())
	assert.True(t, s.Active())

	s.SetName("second")
	s.SetActive(false)
	assert.Equal(t, "second", s.Name())
	assert.False(t, s.Active())

	s.Add(DefaultCommands()[:2]...)
	assert.Equal(t, 2, s.Count())

	commands := s.Commands()
	commands[0].Name = "mutated"
	assert.Equal(t, "floor", s.Commands()[0].Name)

	s.Clear()
	assert.Zero(t, s.Count())
}
