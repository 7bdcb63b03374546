// Package mesh triangulates a height field into a relief solid.
package mesh

import (
	"github.com/ecopia-map/engrave_stl/internal/data"
	"github.com/unixpickle/model3d/model3d"
)

// Builder walks a height field in 2x2 windows and emits the triangles of the relief.
type Builder struct {
	field *data.HeightField
	plate bool
}

func NewBuilder(field *data.HeightField, plate bool) *Builder {
	return &Builder{
		field: field,
		plate: plate,
	}
}

// Build emits the top surface (with per-cell bottoms unless a plate is requested), the side walls
// and, in plate mode, the base, in that order.
func (b *Builder) Build() *data.Mesh {
	mesh := data.NewMesh()
	b.surface(mesh)
	b.sides(mesh)
	if b.plate {
		b.base(mesh)
	}
	return mesh
}

func (b *Builder) point(x, y int) model3d.Coord3D {
	return model3d.XYZ(float64(x), float64(y), b.field.At(x, y))
}

func (b *Builder) surface(mesh *data.Mesh) {
	for y := 0; y < b.field.Height-1; y++ {
		for x := 0; x < b.field.Width-1; x++ {
			// 1 2
			// 3 4
			Cell(mesh, b.point(x, y), b.point(x+1, y), b.point(x, y+1), b.point(x+1, y+1), !b.plate)
		}
	}
}

// Cell emits the triangles of one window given its four corners. Nothing is emitted when all
// corners are at zero height. The shared edge of the two top triangles links the pair of corners
// whose heights sum higher; ties go to the 1-4 diagonal.
func Cell(mesh *data.Mesh, p1, p2, p3, p4 model3d.Coord3D, bottom bool) {
	if p1.Z == 0 && p2.Z == 0 && p3.Z == 0 && p4.Z == 0 {
		return
	}
	if p1.Z+p4.Z < p2.Z+p3.Z {
		// common edge from 3 to 2
		mesh.Add(p1, p2, p3)
		mesh.Add(p2, p4, p3)
	} else {
		// common edge from 1 to 4
		mesh.Add(p1, p4, p3)
		mesh.Add(p1, p2, p4)
	}
	if bottom {
		b1, b2, b3, b4 := flatten(p1), flatten(p2), flatten(p3), flatten(p4)
		mesh.Add(b1, b2, b3)
		mesh.Add(b2, b4, b3)
	}
}

func flatten(c model3d.Coord3D) model3d.Coord3D {
	return model3d.XYZ(c.X, c.Y, 0)
}

// sides drops walls from the border of the top surface to z=0. Each step along a border gets
// one triangle per raised end, so a step with a single raised end is only half covered and the
// two opposite borders share the same winding. Along X the upper edge stays level at the start
// height.
func (b *Builder) sides(mesh *data.Mesh) {
	w, h := b.field.Width, b.field.Height

	// along Y axis
	for y := 0; y < h-1; y++ {
		for _, x := range []int{0, w - 1} {
			end := b.point(x, y+1)
			Wall(mesh, b.point(x, y), end, end)
		}
	}

	// along X axis
	for x := 0; x < w-1; x++ {
		for _, y := range []int{0, h - 1} {
			start, end := b.point(x, y), b.point(x+1, y)
			Wall(mesh, start, end, model3d.XYZ(end.X, end.Y, start.Z))
		}
	}
}

// Wall emits the side wall triangles between two neighbouring border points. top is the upper
// vertex placed above end by the second triangle, which is only emitted when end is raised.
func Wall(mesh *data.Mesh, start, end, top model3d.Coord3D) {
	if start.Z != 0 {
		mesh.Add(start, flatten(end), flatten(start))
	}
	if end.Z != 0 {
		mesh.Add(start, top, flatten(end))
	}
}

// base closes the bottom of the whole mesh with two triangles at z=0.
func (b *Builder) base(mesh *data.Mesh) {
	maxX, maxY := float64(b.field.Width-1), float64(b.field.Height-1)
	mesh.Add(model3d.XYZ(0, 0, 0), model3d.XYZ(0, maxY, 0), model3d.XYZ(maxX, maxY, 0))
	mesh.Add(model3d.XYZ(0, 0, 0), model3d.XYZ(maxX, maxY, 0), model3d.XYZ(maxX, 0, 0))
}
