package unit_normal_converter

import (
	"github.com/ecopia-map/engrave_stl/internal/converters"
	"github.com/unixpickle/model3d/model3d"
)

// Scales normals to unit length. Normals of degenerate triangles have no direction and are
// written as the zero vector.
type UnitNormalConverter struct{}

func NewUnitNormalConverter() converters.NormalConverter {
	return &UnitNormalConverter{}
}

func (c *UnitNormalConverter) ConvertNormal(normal model3d.Coord3D) model3d.Coord3D {
	if normal.Norm() == 0 {
		return model3d.Coord3D{}
	}
	return normal.Normalize()
}
