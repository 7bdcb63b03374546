// Package stl serializes triangle meshes as ASCII STL.
package stl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ecopia-map/engrave_stl/internal/converters"
	"github.com/ecopia-map/engrave_stl/internal/data"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/unixpickle/model3d/model3d"
)

// Writer writes one solid. Numbers are formatted with Precision decimal places, or in the
// shortest form that round-trips their float32 value when Precision is negative.
type Writer struct {
	Name      string
	Precision int
	Normals   converters.NormalConverter

	w      *bufio.Writer
	facets int
	err    error
}

func NewWriter(w io.Writer, name string, precision int, normals converters.NormalConverter) *Writer {
	return &Writer{
		Name:      name,
		Precision: precision,
		Normals:   normals,
		w:         bufio.NewWriter(w),
	}
}

// WriteMesh writes a whole solid, one facet per triangle in mesh order, and flushes.
func (s *Writer) WriteMesh(mesh *data.Mesh) error {
	s.Begin()
	for _, t := range mesh.Triangles {
		s.WriteTriangle(t)
	}
	return s.End()
}

func (s *Writer) Begin() {
	s.printf("solid %s\n", s.Name)
}

func (s *Writer) WriteTriangle(t data.Triangle) {
	s.printf("  facet normal %s\n", s.coord(s.Normals.ConvertNormal(t.Normal())))
	s.printf("    outer loop\n")
	s.printf("      vertex %s\n", s.coord(t.A))
	s.printf("      vertex %s\n", s.coord(t.B))
	s.printf("      vertex %s\n", s.coord(t.C))
	s.printf("    endloop\n")
	s.printf("  endfacet\n")
	s.facets++
}

// End closes the solid and flushes. It reports the first error met since Begin.
func (s *Writer) End() error {
	s.printf("endsolid %s\n", s.Name)
	if s.err == nil {
		s.err = s.w.Flush()
	}
	return errors.Wrap(s.err, "write stl")
}

// Facets is the number of facets written so far.
func (s *Writer) Facets() int {
	return s.facets
}

func (s *Writer) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *Writer) coord(c model3d.Coord3D) string {
	return s.number(c.X) + " " + s.number(c.Y) + " " + s.number(c.Z)
}

func (s *Writer) number(v float64) string {
	if s.Precision < 0 {
		return decimal.NewFromFloat32(float32(v)).String()
	}
	return decimal.NewFromFloat(v).StringFixed(int32(s.Precision))
}
