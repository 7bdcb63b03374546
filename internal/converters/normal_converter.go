package converters

import "github.com/unixpickle/model3d/model3d"

// Post-processes a facet normal right before it is written out
type NormalConverter interface {
	ConvertNormal(normal model3d.Coord3D) model3d.Coord3D
}
