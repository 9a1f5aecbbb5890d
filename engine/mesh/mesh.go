// Package mesh generates the procedural primitive meshes drawn by the viewer.
//
// Every primitive is built in its own unit space and positioned with a model matrix:
//   - plane: the square [-1, 1] x [-1, 1] in XZ with a +Y normal
//   - box: the cube [-0.5, 0.5]^3
//   - cylinder and cone: radius 1, base at y = 0, apex or cap at y = 1
//   - sphere: radius 1 at the origin
package mesh

import (
	"github.com/chewxy/math32"
)

// Shape identifies one of the primitive meshes.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeCone
	ShapeSphere
)

// Shapes lists every primitive in declaration order.
var Shapes = []Shape{ShapePlane, ShapeBox, ShapeCylinder, ShapeCone, ShapeSphere}

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Vertex is the interleaved per-vertex layout uploaded to the GPU (24 bytes).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 24

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

const (
	// Segments is the number of radial slices used by the round primitives.
	Segments = 36
	// Rings is the number of latitude bands in a sphere.
	Rings = 18
)

// Build returns the mesh for a shape. Unknown shapes yield an empty mesh.
//
// Parameters:
//   - shape: the primitive to build
//
// Returns:
//   - Mesh: the generated mesh
func Build(shape Shape) Mesh {
	switch shape {
	case ShapePlane:
		return Plane()
	case ShapeBox:
		return Box()
	case ShapeCylinder:
		return Cylinder(Segments)
	case ShapeCone:
		return Cone(Segments)
	case ShapeSphere:
		return Sphere(Segments, Rings)
	default:
		return Mesh{}
	}
}

// Plane builds a two-triangle square in the XZ plane facing +Y.
func Plane() Mesh {
	up := [3]float32{0, 1, 0}
	return Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, -1}, Normal: up},
			{Position: [3]float32{1, 0, -1}, Normal: up},
			{Position: [3]float32{1, 0, 1}, Normal: up},
			{Position: [3]float32{-1, 0, 1}, Normal: up},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// Box builds a unit cube centred on the origin with flat-shaded faces (24 vertices).
func Box() Mesh {
	faces := []struct {
		normal, u, v [3]float32
	}{
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	}

	m := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			var p [3]float32
			for i := range 3 {
				p[i] = 0.5 * (f.normal[i] + c[0]*f.u[i] + c[1]*f.v[i])
			}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.normal})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Cylinder builds a closed cylinder of radius 1 from y = 0 to y = 1.
//
// Parameters:
//   - segments: radial slices, at least 3
//
// Returns:
//   - Mesh: the cylinder mesh
func Cylinder(segments int) Mesh {
	segments = max(segments, 3)
	m := Mesh{}

	// side wall, duplicated seam vertex keeps indices simple
	for i := 0; i <= segments; i++ {
		cos, sin := ring(i, segments)
		n := [3]float32{cos, 0, sin}
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{cos, 0, sin}, Normal: n},
			Vertex{Position: [3]float32{cos, 1, sin}, Normal: n},
		)
	}
	for i := range segments {
		b0, t0 := uint32(2*i), uint32(2*i+1)
		b1, t1 := b0+2, t0+2
		m.Indices = append(m.Indices, b0, t0, t1, b0, t1, b1)
	}

	appendDisc(&m, segments, 1, [3]float32{0, 1, 0})
	appendDisc(&m, segments, 0, [3]float32{0, -1, 0})
	return m
}

// Cone builds a closed cone of base radius 1 at y = 0 with its apex at y = 1.
//
// Parameters:
//   - segments: radial slices, at least 3
//
// Returns:
//   - Mesh: the cone mesh
func Cone(segments int) Mesh {
	segments = max(segments, 3)
	m := Mesh{}

	// slant normal for radius 1 and height 1
	ny := 1 / math32.Sqrt(2)
	for i := 0; i <= segments; i++ {
		cos, sin := ring(i, segments)
		n := [3]float32{cos * ny, ny, sin * ny}
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{cos, 0, sin}, Normal: n},
			Vertex{Position: [3]float32{0, 1, 0}, Normal: n},
		)
	}
	for i := range segments {
		b0, apex := uint32(2*i), uint32(2*i+1)
		b1 := b0 + 2
		m.Indices = append(m.Indices, b0, apex, b1)
	}

	appendDisc(&m, segments, 0, [3]float32{0, -1, 0})
	return m
}

// Sphere builds a UV sphere of radius 1.
//
// Parameters:
//   - segments: longitude slices, at least 3
//   - rings: latitude bands, at least 2
//
// Returns:
//   - Mesh: the sphere mesh
func Sphere(segments, rings int) Mesh {
	segments = max(segments, 3)
	rings = max(rings, 2)
	m := Mesh{}

	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		y := math32.Cos(phi)
		radius := math32.Sin(phi)
		for s := 0; s <= segments; s++ {
			cos, sin := ring(s, segments)
			p := [3]float32{radius * cos, y, radius * sin}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: p})
		}
	}

	stride := uint32(segments + 1)
	for r := range rings {
		for s := range segments {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}

// appendDisc adds a triangle fan cap at height y facing along normal.
func appendDisc(m *Mesh, segments int, y float32, normal [3]float32) {
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, y, 0}, Normal: normal})
	for i := 0; i <= segments; i++ {
		cos, sin := ring(i, segments)
		m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{cos, y, sin}, Normal: normal})
	}
	for i := range segments {
		a, b := center+1+uint32(i), center+2+uint32(i)
		if normal[1] > 0 {
			m.Indices = append(m.Indices, center, b, a)
		} else {
			m.Indices = append(m.Indices, center, a, b)
		}
	}
}

// ring returns the unit circle point for slice i of n. The last slice wraps exactly to the first.
func ring(i, n int) (float32, float32) {
	if i%n == 0 {
		return 1, 0
	}
	theta := 2 * math32.Pi * float32(i) / float32(n)
	return math32.Cos(theta), math32.Sin(theta)
}
