// This file is part of Softrender.
//
// Softrender is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Softrender is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Softrender.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/JoniSt/softrender-engine/capture"
	"github.com/JoniSt/softrender-engine/compositor"
	"github.com/JoniSt/softrender-engine/demo"
	"github.com/JoniSt/softrender-engine/logger"
	"github.com/JoniSt/softrender-engine/modalflag"
	"github.com/JoniSt/softrender-engine/performance"
	"github.com/JoniSt/softrender-engine/play"
	"github.com/JoniSt/softrender-engine/statsview"
	"github.com/JoniSt/softrender-engine/version"
)

// SDL requires that window creation and event servicing happen on the main
// thread. play.Play is called from main() directly, so the whole program runs
// on a single goroutine apart from the workers the compositor forks.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "CAPTURE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "CAPTURE":
		err = capt(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// sceneFlags adds the flags that describe the demonstration scene. common to
// all rendering modes.
func sceneFlags(md *modalflag.Modes) (*int, *int, *int, *string) {
	sprites := md.AddInt("sprites", 0, "number of foreground sprites")
	size := md.AddInt("spritesize", 0, "size of foreground sprites in pixels")
	speed := md.AddInt("maxspeed", 0, "maximum sprite speed in pixels per frame")
	img := md.AddString("image", "", "PNG or TGA file to use as the sprite image")
	return sprites, size, speed, img
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 800, "width of the window")
	height := md.AddInt("height", 600, "height of the window")
	fpsCap := md.AddInt("fpscap", 60, "limit frames per second. zero for uncapped")
	workers := md.AddInt("workers", 0, "number of rendering workers. zero for number of CPUs")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", statsview.Available(), "run statsview server")
	sprites, size, speed, img := sceneFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	spec := compositor.Spec{
		Width:   *width,
		Height:  *height,
		Workers: *workers,
	}

	conf := demo.Config{
		Foreground: *sprites,
		SpriteSize: *size,
		MaxSpeed:   *speed,
		Image:      *img,
	}

	return play.Play(spec, conf, *fpsCap)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 800, "width of the frame")
	height := md.AddInt("height", 600, "height of the frame")
	workers := md.AddInt("workers", 0, "number of rendering workers. zero for number of CPUs")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profCPU := md.AddBool("cpuprofile", false, "write cpu profile to cpu.profile")
	profMem := md.AddBool("memprofile", false, "write heap profile to mem.profile")
	structure := md.AddString("structure", "", "write graphviz graph of compositor internals to file")
	stats := md.AddBool("statsview", statsview.Available(), "run statsview server")
	sprites, size, speed, img := sceneFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	spec := compositor.Spec{
		Width:   *width,
		Height:  *height,
		Workers: *workers,
	}

	conf := demo.Config{
		Foreground: *sprites,
		SpriteSize: *size,
		MaxSpeed:   *speed,
		Image:      *img,
	}

	profile := performance.Profile{
		CPU:       *profCPU,
		Mem:       *profMem,
		Structure: *structure,
	}

	return performance.Check(md.Output, profile, spec, conf, *duration)
}

func capt(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 800, "width of the frame")
	height := md.AddInt("height", 600, "height of the frame")
	frames := md.AddInt("frames", 1, "number of frames to capture")
	scale := md.AddInt("scale", 1, "integer upscaling factor")
	sprites, size, speed, img := sceneFlags(md)

	md.AdditionalHelp("The single argument is the filename template for the captured frames. The extension selects the encoder; WebP and PNG are supported.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename := "frame.webp"
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	spec := compositor.Spec{
		Width:  *width,
		Height: *height,
	}

	conf := demo.Config{
		Foreground: *sprites,
		SpriteSize: *size,
		MaxSpeed:   *speed,
		Image:      *img,
	}

	return capture.Frames(spec, conf, filename, *frames, *scale)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Fprintf(md.Output, "  %s\n", rev)
	}

	return nil
}
