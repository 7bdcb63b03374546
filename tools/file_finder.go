package tools

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ecopia-map/engrave_stl/internal/engraver"
	"github.com/pkg/errors"
)

// extensions of the formats registered with image.Decode
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

type FileFinder interface {
	GetImageFilesToProcess(opts *engraver.EngraverOptions) ([]string, error)
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

func (f *StandardFileFinder) GetImageFilesToProcess(opts *engraver.EngraverOptions) ([]string, error) {
	// If folder processing is not enabled then the image is given by the input argument, otherwise look for
	// images in the input folder eventually excluding nested folders if Recursive flag is disabled
	if !opts.FolderProcessing {
		return []string{opts.Input}, nil
	}

	return f.getImageFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getImageFilesFromInputFolder(opts *engraver.EngraverOptions) ([]string, error) {
	var imageFiles = make([]string, 0)

	baseInfo, err := os.Stat(opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, "read input folder")
	}
	if !baseInfo.IsDir() {
		return nil, errors.Errorf("input %s is not a folder", opts.Input)
	}

	err = filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if !opts.Recursive && !os.SameFile(info, baseInfo) {
					return filepath.SkipDir
				}
			} else if IsImageFile(info.Name()) {
				imageFiles = append(imageFiles, path)
			}
			return nil
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "walk input folder")
	}

	return imageFiles, nil
}
