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

// Package play runs the animated demonstration scene in an SDL window.
package play

import (
	"os"
	"os/signal"
	"time"

	"github.com/JoniSt/softrender-engine/compositor"
	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/demo"
	"github.com/JoniSt/softrender-engine/gui/sdl"
	"github.com/JoniSt/softrender-engine/logger"
	"github.com/JoniSt/softrender-engine/performance"
)

// sentinel error returned by the Play function
const PlayError = "play: %v"

// how often the current frame rate is reported
const fpsReportInterval = 5 * time.Second

// Play opens a window of the requested dimensions and animates the
// demonstration scene in it until the window is closed, escape is pressed or
// the process is interrupted. The current frame rate is logged periodically.
//
// Must be called from the main thread.
func Play(spec compositor.Spec, conf demo.Config, fpsCap int) error {
	win, err := sdl.NewWindow(spec.Width, spec.Height, fpsCap)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer win.Destroy()

	cmp, err := compositor.NewCompositor(spec, sdl.PackARGB8888)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	scn, err := demo.NewScene(spec.Width, spec.Height, conf)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	frames := 0
	reportTime := time.Now()

	for win.Service() {
		select {
		case <-intChan:
			return nil
		default:
		}

		scn.Tick()

		err = win.Frame(func(pixels []byte, pitch int) {
			cmp.Render(scn.Sprites(), pixels, pitch)
		})
		if err != nil {
			return curated.Errorf(PlayError, err)
		}

		frames++
		if since := time.Since(reportTime); since >= fpsReportInterval {
			logger.Logf("play", "%.1f fps", performance.CalcFPS(frames, since))
			frames = 0
			reportTime = time.Now()
		}
	}

	return nil
}
