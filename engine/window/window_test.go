package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, 1000, w.Width())
	assert.Equal(t, 800, w.Height())
	assert.True(t, w.captureCursor)
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())
}

func TestWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("viewer"),
		WithSize(640, 0),
		WithSizeLimits(100, 100, 2000, 1500),
		WithCursorCaptured(false),
	)
	assert.Equal(t, "viewer", w.title)
	assert.Equal(t, 640, w.width)
	assert.Equal(t, 800, w.height)
	assert.Equal(t, [4]int{100, 100, 2000, 1500}, [4]int{w.minWidth, w.minHeight, w.maxWidth, w.maxHeight})
	assert.False(t, w.captureCursor)
}

func TestHandleKeyUpdatesStateAndCallbacks(t *testing.T) {
	w := newEngineWindow()
	var down, up []uint32
	w.SetKeyDownCallback(func(k uint32) { down = append(down, k) })
	w.SetKeyUpCallback(func(k uint32) { up = append(up, k) })

	w.handleKey(common.KeyW, true)
	assert.True(t, w.KeyPressed(common.KeyW))

	w.handleKey(common.KeyW, false)
	assert.False(t, w.KeyPressed(common.KeyW))

	assert.Equal(t, []uint32{common.KeyW}, down)
	assert.Equal(t, []uint32{common.KeyW}, up)
}

func TestHandleFramebufferSize(t *testing.T) {
	w := newEngineWindow()
	var got [2]int
	w.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })

	w.handleFramebufferSize(1920, 1080)
	assert.Equal(t, [2]int{1920, 1080}, got)
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 1080, w.Height())
}

func TestRequestCloseWithoutPlatformWindow(t *testing.T) {
	w := newEngineWindow()
	assert.NotPanics(t, w.RequestClose)
}
