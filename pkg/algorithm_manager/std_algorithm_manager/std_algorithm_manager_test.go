package std_algorithm_manager

import (
	"testing"

	"github.com/ecopia-map/engrave_stl/internal/converters/normals/raw_normal_converter"
	"github.com/ecopia-map/engrave_stl/internal/converters/normals/unit_normal_converter"
	"github.com/ecopia-map/engrave_stl/internal/engraver"
)

func TestNewAlgorithmManager(t *testing.T) {
	opts := engraver.NewEngraverOptions("in.png")

	manager := NewAlgorithmManager(opts)
	if z := manager.GetElevationCorrectionAlgorithm().CorrectElevation(0, 0, 2); z != 2 {
		t.Errorf("expected no offset, got %v", z)
	}
	if _, ok := manager.GetNormalConverterAlgorithm().(*raw_normal_converter.RawNormalConverter); !ok {
		t.Error("expected raw normals by default")
	}

	opts.GeneratePlane = true
	opts.NormalMode = engraver.NormalModeUnit
	manager = NewAlgorithmManager(opts)
	if z := manager.GetElevationCorrectionAlgorithm().CorrectElevation(0, 0, 2); z != 2+engraver.PlateOffset {
		t.Errorf("expected plate offset, got %v", z)
	}
	if _, ok := manager.GetNormalConverterAlgorithm().(*unit_normal_converter.UnitNormalConverter); !ok {
		t.Error("expected unit normals")
	}
}
