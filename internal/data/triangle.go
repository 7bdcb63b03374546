package data

import "github.com/unixpickle/model3d/model3d"

// Three ordered vertices. The order defines the winding, and with it the sign of the normal.
type Triangle struct {
	A model3d.Coord3D
	B model3d.Coord3D
	C model3d.Coord3D
}

func NewTriangle(a, b, c model3d.Coord3D) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Normal is the cross product of (B-A) and (C-A). It is not normalized.
func (t Triangle) Normal() model3d.Coord3D {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Ordered triangle soup. Vertices shared between triangles are stored once per triangle.
type Mesh struct {
	Triangles []Triangle
}

func NewMesh() *Mesh {
	return &Mesh{
		Triangles: make([]Triangle, 0),
	}
}

func (m *Mesh) Add(a, b, c model3d.Coord3D) {
	m.Triangles = append(m.Triangles, NewTriangle(a, b, c))
}

func (m *Mesh) Len() int {
	return len(m.Triangles)
}
