package window

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/stretchr/testify/assert"
)

func TestKeyStatePressRelease(t *testing.T) {
	k := newKeyState()
	assert.False(t, k.pressed(common.KeyW))

	k.press(common.KeyW)
	k.press(common.KeyW)
	k.press(common.KeyEsc)
	assert.True(t, k.pressed(common.KeyW))
	assert.True(t, k.pressed(common.KeyEsc))
	assert.Equal(t, 2, k.count())

	k.release(common.KeyW)
	assert.False(t, k.pressed(common.KeyW))
	assert.Equal(t, 1, k.count())

	k.release(common.KeyA)
	assert.Equal(t, 1, k.count())
}

func TestKeyStateReset(t *testing.T) {
	k := newKeyState()
	for _, code := range []uint32{common.KeyW, common.KeyA, common.KeyUp} {
		k.press(code)
	}

	k.reset()
	assert.Zero(t, k.count())
	assert.False(t, k.pressed(common.KeyUp))
}

func TestKeyStateConcurrentUse(t *testing.T) {
	k := newKeyState()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := uint32(common.Key1 + i)
			for range 100 {
				k.press(code)
				_ = k.pressed(code)
				k.release(code)
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, k.count())
}
