package tools

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/ecopia-map/engrave_stl/internal/engraver"
)

func TestGetImageFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.JPG", "notes.txt", filepath.Join("sub", "c.webp")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	finder := NewStandardFileFinder()
	opts := engraver.NewEngraverOptions(dir)

	files, err := finder.GetImageFilesToProcess(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != dir {
		t.Errorf("single file mode should return the input, got %v", files)
	}

	opts.FolderProcessing = true
	files, err = finder.GetImageFilesToProcess(opts)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(files)
	expected := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.JPG")}
	if len(files) != len(expected) || files[0] != expected[0] || files[1] != expected[1] {
		t.Errorf("expected %v, got %v", expected, files)
	}

	opts.Recursive = true
	files, err = finder.GetImageFilesToProcess(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 images, got %v", files)
	}

	opts.Input = filepath.Join(dir, "a.png")
	if _, err := finder.GetImageFilesToProcess(opts); err == nil {
		t.Error("expected an error for a file input in folder mode")
	}
}
