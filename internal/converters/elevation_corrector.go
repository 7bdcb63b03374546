package converters

type ElevationCorrector interface {
	CorrectElevation(x, y int, z float64) float64
}
