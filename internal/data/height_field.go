package data

// Dense row-major grid of extrusion heights, one per mask cell
type HeightField struct {
	Width  int
	Height int

	values []float64
}

func NewHeightField(width, height int) *HeightField {
	return &HeightField{
		Width:  width,
		Height: height,
		values: make([]float64, width*height),
	}
}

func (f *HeightField) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// At gets the height at integer coordinates.
// If a coordinate is out of bounds, 0 is returned.
func (f *HeightField) At(x, y int) float64 {
	if !f.InBounds(x, y) {
		return 0
	}
	return f.values[x+y*f.Width]
}

// Set stores a height. Out of bounds coordinates are ignored.
func (f *HeightField) Set(x, y int, h float64) {
	if !f.InBounds(x, y) {
		return
	}
	f.values[x+y*f.Width] = h
}

// SetRow copies a full row of heights. Rows are disjoint so concurrent writers on different rows
// do not need synchronization.
func (f *HeightField) SetRow(y int, row []float64) {
	if y < 0 || y >= f.Height || len(row) != f.Width {
		return
	}
	copy(f.values[y*f.Width:(y+1)*f.Width], row)
}

// Max returns the highest value of the field, 0 for an empty field
func (f *HeightField) Max() float64 {
	var max float64
	for _, v := range f.values {
		if v > max {
			max = v
		}
	}
	return max
}
