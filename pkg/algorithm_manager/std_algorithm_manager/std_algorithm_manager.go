package std_algorithm_manager

import (
	"github.com/ecopia-map/engrave_stl/internal/converters"
	"github.com/ecopia-map/engrave_stl/internal/converters/elevation/offset_elevation_corrector"
	"github.com/ecopia-map/engrave_stl/internal/converters/normals/raw_normal_converter"
	"github.com/ecopia-map/engrave_stl/internal/converters/normals/unit_normal_converter"
	"github.com/ecopia-map/engrave_stl/internal/engraver"
	"github.com/ecopia-map/engrave_stl/pkg/algorithm_manager"
)

type StandardAlgorithmManager struct {
	options            *engraver.EngraverOptions
	elevationCorrector converters.ElevationCorrector
	normalConverter    converters.NormalConverter
}

func NewAlgorithmManager(opts *engraver.EngraverOptions) algorithm_manager.AlgorithmManager {
	return &StandardAlgorithmManager{
		options:            opts,
		elevationCorrector: offset_elevation_corrector.NewOffsetElevationCorrector(opts.HeightOffset()),
		normalConverter:    evaluateNormalConverter(opts),
	}
}

func (sam *StandardAlgorithmManager) GetElevationCorrectionAlgorithm() converters.ElevationCorrector {
	return sam.elevationCorrector
}

func (sam *StandardAlgorithmManager) GetNormalConverterAlgorithm() converters.NormalConverter {
	return sam.normalConverter
}

func evaluateNormalConverter(opts *engraver.EngraverOptions) converters.NormalConverter {
	switch opts.NormalMode {
	case engraver.NormalModeUnit:
		return unit_normal_converter.NewUnitNormalConverter()
	default:
		return raw_normal_converter.NewRawNormalConverter()
	}
}
