package algorithm_manager

import (
	"github.com/ecopia-map/engrave_stl/internal/converters"
)

type AlgorithmManager interface {
	GetElevationCorrectionAlgorithm() converters.ElevationCorrector
	GetNormalConverterAlgorithm() converters.NormalConverter
}
