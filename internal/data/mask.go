package data

import (
	"image"
	"image/color"
)

// Pixels brighter than this luminance*alpha product are background.
const BackgroundThreshold = 0.5

// Rec. 709 luma weights
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Contains the binary classification of every pixel of an image: true for content (engraved)
// cells, false for background. Cells are stored row-major.
type BinaryMask struct {
	Width  int
	Height int

	cells []bool
}

// Builds an empty (all background) mask of the given size
func NewEmptyMask(width, height int) *BinaryMask {
	return &BinaryMask{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// Classifies every pixel of the given image. Pixel (0,0) of the mask is the top left corner of
// the image bounds.
func NewBinaryMask(img image.Image) *BinaryMask {
	bounds := img.Bounds()
	mask := NewEmptyMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			l, a := LumaAlpha(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			mask.cells[x+y*mask.Width] = !IsBackground(l, a)
		}
	}
	return mask
}

// InBounds checks if the coordinates address a cell of the mask.
func (m *BinaryMask) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Content reports whether the cell is a content cell. Out of bounds cells are background.
func (m *BinaryMask) Content(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.cells[x+y*m.Width]
}

// Set marks a cell as content or background. Out of bounds coordinates are ignored.
func (m *BinaryMask) Set(x, y int, content bool) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[x+y*m.Width] = content
}

// Returns the number of content cells
func (m *BinaryMask) ContentCount() int {
	count := 0
	for _, c := range m.cells {
		if c {
			count++
		}
	}
	return count
}

// IsBackground classifies a pixel from its 8 bit luminance and alpha. Bright opaque pixels are
// background, dark or transparent ones are content.
func IsBackground(l, a uint8) bool {
	return (float64(l)/255.0)*(float64(a)/255.0) > BackgroundThreshold
}

// LumaAlpha reduces a color to 8 bit luminance and alpha. Colors without an alpha channel come
// out fully opaque.
func LumaAlpha(c color.Color) (uint8, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	l := lumaR*float64(n.R) + lumaG*float64(n.G) + lumaB*float64(n.B)
	if l > 255 {
		l = 255
	}
	return uint8(l + 0.5), n.A
}
