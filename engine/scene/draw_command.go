package scene

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawCommand places one primitive in the world with a flat color.
type DrawCommand struct {
	Name  string
	Shape mesh.Shape

	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3

	// Color is RGBA in [0, 1].
	Color [4]float32
}

// ModelMatrix returns translation * rotX * rotY * rotZ * scale for the command.
//
// Returns:
//   - [16]float32: the column-major model matrix
func (c DrawCommand) ModelMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:], c.Position, c.RotationDeg, c.Scale)
	return m
}

func (c DrawCommand) label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Shape.String()
}

// DefaultCommands returns the viewer's built-in scene: a floor, a back wall,
// three cylinder pedestals and a sphere, a cone and a box resting on them.
//
// Returns:
//   - []DrawCommand: the commands in draw order
func DefaultCommands() []DrawCommand {
	pedestal := [4]float32{0.65, 0.65, 1, 1}
	return []DrawCommand{
		{
			Name:     "floor",
			Shape:    mesh.ShapePlane,
			Scale:    mgl32.Vec3{20, 1, 10},
			Position: mgl32.Vec3{0, 0, 0},
			Color:    [4]float32{0.5, 0.5, 1, 1},
		},
		{
			Name:        "back wall",
			Shape:       mesh.ShapePlane,
			Scale:       mgl32.Vec3{20, 1, 10},
			RotationDeg: mgl32.Vec3{90, 0, 0},
			Position:    mgl32.Vec3{0, 9, -10},
			Color:       [4]float32{0.7, 0.7, 1, 1},
		},
		{
			Name:     "center pedestal",
			Shape:    mesh.ShapeCylinder,
			Scale:    mgl32.Vec3{2, 4, 0.5},
			Position: mgl32.Vec3{0, 0, 0},
			Color:    pedestal,
		},
		{
			Name:     "left pedestal",
			Shape:    mesh.ShapeCylinder,
			Scale:    mgl32.Vec3{2, 1.5, 0.5},
			Position: mgl32.Vec3{-4, 0, 0},
			Color:    pedestal,
		},
		{
			Name:     "right pedestal",
			Shape:    mesh.ShapeCylinder,
			Scale:    mgl32.Vec3{2, 2.5, 0.5},
			Position: mgl32.Vec3{4, 0, 0},
			Color:    pedestal,
		},
		{
			Name:     "sphere",
			Shape:    mesh.ShapeSphere,
			Scale:    mgl32.Vec3{1.4, 1.4, 1.4},
			Position: mgl32.Vec3{-4, 3, 0},
			Color:    [4]float32{0.7, 0.5, 0.9, 1},
		},
		{
			Name:     "cone",
			Shape:    mesh.ShapeCone,
			Scale:    mgl32.Vec3{1.5, 3.5, 1},
			Position: mgl32.Vec3{0, 4, 0},
			Color:    [4]float32{1, 1, 0, 1},
		},
		{
			Name:        "box",
			Shape:       mesh.ShapeBox,
			Scale:       mgl32.Vec3{1.6, 1.6, 1.6},
			RotationDeg: mgl32.Vec3{0, 30, 0},
			Position:    mgl32.Vec3{4, 3.3, 0},
			Color:       [4]float32{1, 0, 0, 1},
		},
	}
}
