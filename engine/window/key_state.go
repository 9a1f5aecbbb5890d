package window

import "sync"

// keyState tracks which keys are held, filled by key callbacks and read by KeyPressed.
type keyState struct {
	mu   *sync.Mutex
	down map[uint32]bool
}

func newKeyState() *keyState {
	return &keyState{
		mu:   &sync.Mutex{},
		down: make(map[uint32]bool),
	}
}

func (k *keyState) press(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[keyCode] = true
}

func (k *keyState) release(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.down, keyCode)
}

func (k *keyState) pressed(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[keyCode]
}

// reset releases every key. Called on focus loss so no key stays stuck down.
func (k *keyState) reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.down)
}

// count returns the number of held keys.
func (k *keyState) count() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.down)
}
