package raw_normal_converter

import (
	"github.com/ecopia-map/engrave_stl/internal/converters"
	"github.com/unixpickle/model3d/model3d"
)

// Leaves normals exactly as computed from the triangle edges
type RawNormalConverter struct{}

func NewRawNormalConverter() converters.NormalConverter {
	return &RawNormalConverter{}
}

func (c *RawNormalConverter) ConvertNormal(normal model3d.Coord3D) model3d.Coord3D {
	return normal
}
