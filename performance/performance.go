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

package performance

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JoniSt/softrender-engine/compositor"
	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/demo"
	"github.com/bradleyjkemp/memviz"
)

// sentinel error returned by the Check function
const CheckError = "performance: %v"

// lead time before measurement begins. allows the process to settle.
const leadTime = 2 * time.Second

// Profile identifies the types of profiles that the Check function can
// generate.
type Profile struct {
	// write a pprof CPU profile to cpu.profile
	CPU bool

	// write a pprof heap profile to mem.profile
	Mem bool

	// write a graphviz dot graph of the compositor's internal structure to
	// the named file. no graph is written if the string is empty.
	Structure string
}

// Check is a very rough and ready calculation of the compositor's
// performance. The demonstration scene is rendered offscreen, as fast as
// possible, for the specified duration. A summary of the achieved frame rate
// is written to output.
func Check(output io.Writer, profile Profile, spec compositor.Spec, conf demo.Config, duration string) error {
	cmp, err := compositor.NewCompositor(spec, packNull)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	scn, err := demo.NewScene(spec.Width, spec.Height, conf)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	pitch := cmp.Width() * 4
	framebuffer := make([]byte, cmp.Height()*pitch)

	numFrames := 0
	var measured time.Duration

	// run for specified period of time
	runner := func() error {
		// trigger that expires when the duration has elapsed. a false value
		// indicates that the lead time has concluded and measurement should
		// begin.
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		startTime := time.Now()

		for {
			select {
			case v := <-timerChan:
				if v {
					measured = time.Since(startTime)
					return nil
				}

				// lead time has concluded
				numFrames = 0
				startTime = time.Now()
			default:
			}

			scn.Tick()
			cmp.Render(scn.Sprites(), framebuffer, pitch)
			numFrames++
		}
	}

	err = cpuProfile(profile.CPU, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	fps := CalcFPS(numFrames, measured)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds)\n", fps, numFrames, measured.Seconds())

	if profile.Structure != "" {
		err = dumpStructure(profile.Structure, cmp)
		if err != nil {
			return curated.Errorf(CheckError, err)
		}
	}

	err = memProfile(profile.Mem, "mem.profile")
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	return nil
}

// packNull packs pixels for offscreen rendering, where the channel order
// doesn't matter.
func packNull(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// dumpStructure writes a graphviz dot graph of the compositor's internal
// structure. Useful for seeing how the raster lines and blocks have grown
// after a workload.
func dumpStructure(filename string, cmp *compositor.Compositor) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, cmp)
	return nil
}
