package data

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestTriangleNormal(t *testing.T) {
	a, b, c := model3d.XYZ(0, 0, 0), model3d.XYZ(2, 0, 0), model3d.XYZ(0, 3, 0)

	if n := NewTriangle(a, b, c).Normal(); n != model3d.XYZ(0, 0, 6) {
		t.Errorf("expected (0, 0, 6), got %v", n)
	}
	// reversed winding flips the normal
	if n := NewTriangle(a, c, b).Normal(); n != model3d.XYZ(0, 0, -6) {
		t.Errorf("expected (0, 0, -6), got %v", n)
	}
}

func TestMeshKeepsOrder(t *testing.T) {
	m := NewMesh()
	for i := 0; i < 4; i++ {
		f := float64(i)
		m.Add(model3d.XYZ(f, 0, 0), model3d.XYZ(f, 1, 0), model3d.XYZ(f, 0, 1))
	}
	if m.Len() != 4 {
		t.Fatalf("expected 4 triangles, got %d", m.Len())
	}
	for i, tri := range m.Triangles {
		if tri.A.X != float64(i) {
			t.Errorf("triangle %d out of order: %v", i, tri)
		}
	}
}
