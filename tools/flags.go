package tools

import (
	"flag"
	"io"
	"runtime"

	"github.com/ecopia-map/engrave_stl/internal/engraver"
	"github.com/pkg/errors"
)

const CommandEngrave = "engrave_stl"

type EngraverFlags struct {
	Input            *string `json:"input"`
	Output           *string `json:"output_file"`
	CaptureRadius    *int    `json:"capture_radius"`
	GeneratePlane    *bool   `json:"generate_plane"`
	FolderProcessing *bool   `json:"folder"`
	Recursive        *bool   `json:"recursive"`
	Workers          *int    `json:"workers"`
	Normals          *string `json:"normals"`
	Precision        *int    `json:"precision"`
	SolidName        *string `json:"solid_name"`
}

type FlagsForCommand struct {
	EngraverFlags
	Silent  *bool `json:"silent"`
	Help    *bool `json:"help"`
	Version *bool `json:"version"`

	flagSet *flag.FlagSet
}

// ParseFlags parses the command line. Flags may come before or after the input image path.
func ParseFlags(args []string, output io.Writer) (FlagsForCommand, error) {
	flagCommand := flag.NewFlagSet(CommandEngrave, flag.ContinueOnError)
	flagCommand.SetOutput(output)

	outputFile := defineStringFlagCommand(flagCommand, "output-file", "o", engraver.DefaultOutput, "Output file name. When -folder is set this is the output folder.")
	captureRadius := defineIntFlagCommand(flagCommand, "capture-radius", "r", engraver.DefaultCaptureRadius, "Look around radius in pixels. Use smaller values for sharper edges and bigger ones for smoother slopes. Doubling the radius quadruples compute time.")
	generatePlane := defineBoolFlagCommand(flagCommand, "generate-plane", "p", false, "Generates a 0.001 unit thick base underlying all other features, producing a closed solid.")
	folderProcessing := defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all images in the input folder. Input must be a folder if specified.")
	recursive := defineBoolFlagCommand(flagCommand, "recursive", "", false, "Enables recursive lookup for images inside the subfolders of the input folder.")
	workers := defineIntFlagCommand(flagCommand, "workers", "w", runtime.NumCPU(), "Number of goroutines computing the heights map.")
	normals := defineStringFlagCommand(flagCommand, "normals", "n", "raw", "Facet normals, can be 'raw' or 'unit'. 'raw' writes the unnormalized cross product of the triangle edges, 'unit' scales it to length 1 for strict STL consumers.")
	precision := defineIntFlagCommand(flagCommand, "precision", "", engraver.ShortestPrecision, "Decimal places of the numbers in the STL file. -1 writes the shortest exact form.")
	solidName := defineStringFlagCommand(flagCommand, "solid-name", "", engraver.DefaultSolidName, "Name of the STL solid.")

	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of engrave_stl.")

	var positional []string
	rest := args
	for {
		if err := flagCommand.Parse(rest); err != nil {
			return FlagsForCommand{}, errors.Wrap(err, "parse flags")
		}
		remaining := flagCommand.Args()
		if consumed := rest[:len(rest)-len(remaining)]; len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			// everything after the terminator is positional
			positional = append(positional, remaining...)
			break
		}
		rest = remaining
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
	if len(positional) > 1 {
		return FlagsForCommand{}, errors.Errorf("expected a single input image, got %d: %v", len(positional), positional)
	}

	var input string
	if len(positional) == 1 {
		input = positional[0]
	}

	return FlagsForCommand{
		EngraverFlags: EngraverFlags{
			Input:            &input,
			Output:           outputFile,
			CaptureRadius:    captureRadius,
			GeneratePlane:    generatePlane,
			FolderProcessing: folderProcessing,
			Recursive:        recursive,
			Workers:          workers,
			Normals:          normals,
			Precision:        precision,
			SolidName:        solidName,
		},
		Silent:  silent,
		Help:    help,
		Version: version,
		flagSet: flagCommand,
	}, nil
}

// Maps the parsed flags into the options record
func (f FlagsForCommand) Options() *engraver.EngraverOptions {
	return &engraver.EngraverOptions{
		Input:            *f.Input,
		Output:           *f.Output,
		CaptureRadius:    *f.CaptureRadius,
		GeneratePlane:    *f.GeneratePlane,
		FolderProcessing: *f.FolderProcessing,
		Recursive:        *f.Recursive,
		Workers:          *f.Workers,
		NormalMode:       engraver.ParseNormalMode(*f.Normals),
		Precision:        *f.Precision,
		SolidName:        *f.SolidName,
	}
}

// Prints the flag descriptions of the command
func (f FlagsForCommand) PrintDefaults(output io.Writer) {
	if f.flagSet == nil {
		return
	}
	f.flagSet.SetOutput(output)
	f.flagSet.PrintDefaults()
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
