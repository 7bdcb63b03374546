package engraver

import (
	"strings"

	"github.com/pkg/errors"
)

type NormalMode string

const (
	// Normals are written as the raw cross product of the triangle edges
	NormalModeRaw NormalMode = "RAW"

	// Normals are scaled to unit length before being written, for consumers that require it
	NormalModeUnit NormalMode = "UNIT"
)

const (
	DefaultOutput        = "output.stl"
	DefaultCaptureRadius = 8
	DefaultSolidName     = "surface"

	// uniform height added to every cell when a base plate is generated
	PlateOffset = 0.001

	// shortest representation that round-trips the float32 value
	ShortestPrecision = -1
)

func (e NormalMode) String() string {
	if e == NormalModeRaw {
		return "RAW"
	} else if e == NormalModeUnit {
		return "UNIT"
	}
	return ""
}

func ParseNormalMode(value string) NormalMode {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	if normalizedValue == "RAW" {
		return NormalModeRaw
	} else if normalizedValue == "UNIT" {
		return NormalModeUnit
	}
	return ""
}

type IEngraver interface {
	RunEngraver(opts *EngraverOptions) error
}

// Contains the options needed to turn an image into a relief mesh
type EngraverOptions struct {
	Input            string     // Input image file/folder
	Output           string     // Output STL file, or folder when FolderProcessing is enabled
	CaptureRadius    int        // Neighbourhood radius in pixels scanned for each height
	GeneratePlane    bool       // Closes the solid with a thin base plate instead of per-cell bottoms
	FolderProcessing bool       // Enables the processing of all images in the input folder
	Recursive        bool       // Recursive lookup of images in subfolders
	Workers          int        // Number of goroutines computing the height field
	NormalMode       NormalMode // How facet normals are written
	Precision        int        // Decimal places of STL numbers, ShortestPrecision for shortest form
	SolidName        string     // Name written after solid/endsolid
}

// Returns the options with every unset field replaced by its default
func NewEngraverOptions(input string) *EngraverOptions {
	return &EngraverOptions{
		Input:         input,
		Output:        DefaultOutput,
		CaptureRadius: DefaultCaptureRadius,
		Workers:       1,
		NormalMode:    NormalModeRaw,
		Precision:     ShortestPrecision,
		SolidName:     DefaultSolidName,
	}
}

// Returns the uniform height offset implied by the plate setting
func (opt *EngraverOptions) HeightOffset() float64 {
	if opt.GeneratePlane {
		return PlateOffset
	}
	return 0
}

// Checks the options for values that cannot produce a mesh
func (opt *EngraverOptions) Validate() error {
	if opt.Input == "" {
		return errors.New("no input image specified")
	}
	if opt.CaptureRadius < 0 {
		return errors.Errorf("capture radius must be a non-negative integer, got %d", opt.CaptureRadius)
	}
	if opt.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", opt.Workers)
	}
	if opt.NormalMode == "" {
		return errors.New("normals should be either RAW or UNIT")
	}
	if opt.Precision < ShortestPrecision {
		return errors.Errorf("precision must be %d or greater, got %d", ShortestPrecision, opt.Precision)
	}
	if strings.TrimSpace(opt.SolidName) == "" || strings.ContainsAny(opt.SolidName, " \t\r\n") {
		return errors.Errorf("invalid solid name %q", opt.SolidName)
	}
	return nil
}

func (opt *EngraverOptions) Copy() *EngraverOptions {
	newOpt := *opt
	return &newOpt
}
