package pkg

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ecopia-map/engrave_stl/internal/data"
	"github.com/ecopia-map/engrave_stl/internal/engraver"
	"github.com/ecopia-map/engrave_stl/internal/heightmap"
	"github.com/ecopia-map/engrave_stl/internal/mesh"
	"github.com/ecopia-map/engrave_stl/internal/stl"
	"github.com/ecopia-map/engrave_stl/pkg/algorithm_manager"
	"github.com/ecopia-map/engrave_stl/tools"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type Engraver struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewEngraver(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) engraver.IEngraver {
	return &Engraver{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

// Starts the conversion process
func (e *Engraver) RunEngraver(opts *engraver.EngraverOptions) error {
	tools.LogOutput("Preparing list of files to process...")

	imageFiles, err := e.fileFinder.GetImageFilesToProcess(opts)
	if err != nil {
		return err
	}
	if len(imageFiles) == 0 {
		return errors.Errorf("no images found in %s", opts.Input)
	}

	for i, filePath := range imageFiles {
		fileOpts := opts
		if opts.FolderProcessing {
			fileOpts = opts.Copy()
			fileOpts.Input = filePath
			fileOpts.Output, err = OutputPathFor(opts, filePath)
			if err != nil {
				return err
			}
		}
		tools.LogOutput("Processing file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(imageFiles)))
		if err := e.processImageFile(fileOpts); err != nil {
			return errors.Wrapf(err, "process %s", filePath)
		}
	}

	return nil
}

func (e *Engraver) processImageFile(opts *engraver.EngraverOptions) error {
	startTime := time.Now()

	tools.LogOutput("> reading and parsing input file...", filepath.Base(opts.Input))
	img, err := ReadImage(opts.Input)
	if err != nil {
		return err
	}

	surface, err := e.Engrave(img, opts)
	if err != nil {
		return err
	}

	tools.LogOutput("> writing stl file...", opts.Output)
	if err := e.writeMesh(surface, opts); err != nil {
		return err
	}

	tools.LogOutput("> done processing", filepath.Base(opts.Input), "execution time", time.Since(startTime))
	return nil
}

// Engrave turns a decoded image into the relief mesh described by the options.
func (e *Engraver) Engrave(img image.Image, opts *engraver.EngraverOptions) (*data.Mesh, error) {
	mask := data.NewBinaryMask(img)
	if mask.Width == 0 || mask.Height == 0 {
		return nil, errors.Errorf("empty image %dx%d", mask.Width, mask.Height)
	}
	tools.LogOutput("> binary mask", mask.Width, "x", mask.Height, "with", mask.ContentCount(), "content pixels")

	tools.LogOutput("> creating heights map...")
	field, err := heightmap.Compute(mask, opts.CaptureRadius, e.algorithmManager.GetElevationCorrectionAlgorithm(), opts.Workers)
	if err != nil {
		return nil, err
	}
	tools.LogOutput("> max height", field.Max())

	tools.LogOutput("> building mesh...")
	surface := mesh.NewBuilder(field, opts.GeneratePlane).Build()
	tools.LogOutput("> mesh has", surface.Len(), "triangles")

	return surface, nil
}

func (e *Engraver) writeMesh(surface *data.Mesh, opts *engraver.EngraverOptions) (err error) {
	if opts.FolderProcessing {
		if err := tools.CreateDirectoryIfDoesNotExist(filepath.Dir(opts.Output)); err != nil {
			return errors.Wrap(err, "create output folder")
		}
	}

	file, err := tools.CreateFile(opts.Output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "close output")
		}
	}()

	writer := stl.NewWriter(file, opts.SolidName, opts.Precision, e.algorithmManager.GetNormalConverterAlgorithm())
	return writer.WriteMesh(surface)
}

// ReadImage decodes an image file in any of the registered formats.
func ReadImage(filePath string) (image.Image, error) {
	file, err := tools.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrap(err, "decode input")
	}
	return img, nil
}

// OutputPathFor returns the STL path of an image found while processing a folder: the path of the
// image relative to the input folder, under the output folder, with an .stl extension.
func OutputPathFor(opts *engraver.EngraverOptions, filePath string) (string, error) {
	relPath, err := filepath.Rel(opts.Input, filePath)
	if err != nil {
		return "", errors.Wrap(err, "output path")
	}
	relPath = strings.TrimSuffix(relPath, filepath.Ext(relPath)) + ".stl"
	return filepath.Join(opts.Output, relPath), nil
}
