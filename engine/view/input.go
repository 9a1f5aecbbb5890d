package view

// InputSource is the polled input and clock the controller reads once per frame.
// The window layer implements it; tests supply a fake.
type InputSource interface {
	// KeyPressed reports whether the key with the given GLFW key code is held down.
	//
	// Parameters:
	//   - keyCode: the key code (see common.Key*)
	//
	// Returns:
	//   - bool: true while the key is held
	KeyPressed(keyCode uint32) bool

	// Time returns a monotonic timestamp in seconds.
	//
	// Returns:
	//   - float64: seconds since an arbitrary epoch
	Time() float64

	// RequestClose asks the host to end the message loop after the current iteration.
	RequestClose()
}
