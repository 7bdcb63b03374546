/*
 * This file is part of the engrave_stl distribution.
 * Copyright (c) 2026 The engrave_stl authors
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 */

// Command engrave_stl creates an STL relief from a two-colour engraving-style image: black for
// the image and white for the background. Colour images are reduced to black and white, treating
// anything darker than 50% as black. Transparent pixels count as black and pixels outside the
// picture border count as white.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ecopia-map/engrave_stl/internal/engraver"
	"github.com/ecopia-map/engrave_stl/pkg"
	"github.com/ecopia-map/engrave_stl/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/engrave_stl/tools"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const VERSION = "1.0.0"

const logo = `
                                             _   _
  ___ _ __   __ _ _ __ __ ___   _____    ___| |_| |
 / _ \ '_ \ / _' | '__/ _' \ \ / / _ \  / __| __| |
|  __/ | | | (_| | | | (_| |\ V /  __/  \__ \ |_| |
 \___|_| |_|\__, |_|  \__,_| \_/ \___|  |___/\__|_|
            |___/  Image to STL relief for CNC engraving
`

func main() {
	// glog flags are not exposed, log to stderr
	if err := flag.Set("logtostderr", "true"); err != nil {
		fatal("Error configuring the logger: ", err)
	}
	if err := flag.CommandLine.Parse(nil); err != nil {
		fatal("Error configuring the logger: ", err)
	}
	defer glog.Flush()

	flags, err := tools.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fatal("Error parsing input parameters: ", err)
	}

	if *flags.Help {
		showHelp(flags)
		return
	}

	if *flags.Version {
		printVersion()
		return
	}

	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	tools.LogOutput(tools.FmtJSONString(flags))

	opts := flags.Options()
	if err := validateOptions(opts); err != nil {
		fatal("Error parsing input parameters: ", err)
	}

	startTime := time.Now()
	err = pkg.NewEngraver(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).RunEngraver(opts)
	if err != nil {
		fatal("Error while engraving: ", err)
	}
	tools.LogOutput("Conversion Completed in", time.Since(startTime))
}

// Validates the options checking that the input exists
func validateOptions(opts *engraver.EngraverOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	info, err := os.Stat(opts.Input)
	if os.IsNotExist(err) {
		return errors.Errorf("input file/folder %s not found", opts.Input)
	} else if err != nil {
		return err
	}
	if opts.FolderProcessing && !info.IsDir() {
		return errors.Errorf("input %s must be a folder when -folder is set", opts.Input)
	}
	if !opts.FolderProcessing && info.IsDir() {
		return errors.Errorf("input %s is a folder, use -folder to process it", opts.Input)
	}
	return nil
}

func fatal(msg string, err error) {
	glog.Exit(msg, err)
}

func printLogo() {
	fmt.Print(logo, "\n")
}

func showHelp(flags tools.FlagsForCommand) {
	printLogo()
	fmt.Println("***")
	fmt.Println("engrave_stl turns a black and white image into an STL relief mesh suitable for CNC engraving")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: engrave_stl [flags] <input image>")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flags.PrintDefaults(os.Stdout)
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
