package view

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Preset is a fixed camera pose bound to a key.
type Preset struct {
	Name    string
	KeyCode uint32

	Position mgl32.Vec3
	// Front need not be unit length; the camera normalizes it on teleport.
	Front mgl32.Vec3
	Up    mgl32.Vec3
}

// DefaultPresets returns the three viewpoints bound to keys 1, 2 and 3.
//
// Returns:
//   - []Preset: front, raised and corner views
func DefaultPresets() []Preset {
	return []Preset{
		{
			Name:     "front",
			KeyCode:  common.Key1,
			Position: mgl32.Vec3{0, 12, 25},
			Front:    mgl32.Vec3{0, -0.2, -1},
			Up:       mgl32.Vec3{0, 1, 0},
		},
		{
			Name:     "raised",
			KeyCode:  common.Key2,
			Position: mgl32.Vec3{0, 22, 12},
			Front:    mgl32.Vec3{0, -0.1, -1},
			Up:       mgl32.Vec3{0, 1, 0},
		},
		{
			Name:     "corner",
			KeyCode:  common.Key3,
			Position: mgl32.Vec3{15, 21, 25},
			Front:    mgl32.Vec3{-0.3, -0.4, -1},
			Up:       mgl32.Vec3{0, 1, 0},
		},
	}
}
