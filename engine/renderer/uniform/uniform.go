// Package uniform defines the named-value interface that publishes per-frame and per-object
// shader inputs, and the std140 CPU-side blocks the renderer uploads them from.
package uniform

// Uniform names shared between the view controller, the scene and the shader.
const (
	View         = "view"
	Projection   = "projection"
	ViewPosition = "viewPosition"

	Model         = "model"
	ObjectColor   = "objectColor"
	ObjectTexture = "objectTexture"
	UseTexture    = "bUseTexture"
	UseLighting   = "bUseLighting"
)

// Sink accepts named uniform values. Implementations ignore names they do not know.
type Sink interface {
	// SetMat4 sets a 4x4 column-major matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - m: the matrix as 16 floats
	SetMat4(name string, m [16]float32)

	// SetVec3 sets a 3-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - v: the vector
	SetVec3(name string, v [3]float32)

	// SetVec4 sets a 4-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - v: the vector
	SetVec4(name string, v [4]float32)

	// SetInt sets a 32-bit integer uniform (also used for boolean flags).
	//
	// Parameters:
	//   - name: the uniform name
	//   - v: the value
	SetInt(name string, v int32)
}
