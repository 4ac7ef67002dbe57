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

package sdl

import (
	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/logger"
	"github.com/JoniSt/softrender-engine/version"

	"github.com/veandco/go-sdl2/sdl"
)

// sentinel errors for the sdl package
const (
	SetupError = "sdl: setup: %v"
	FrameError = "sdl: frame: %v"
)

// the texture format frames are streamed in. PackARGB8888 must agree with
// this.
const pixelFormat = sdl.PIXELFORMAT_ARGB8888

// PackARGB8888 packs a color for the window's texture format. The alpha
// component is always fully opaque.
func PackARGB8888(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Window is a desktop window displaying compositor output.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int

	// nil when the framerate is uncapped
	lim *limiter
}

// NewWindow creates a visible window of the given size. A positive fpsCap
// limits how often Frame() completes; zero leaves the framerate uncapped.
func NewWindow(width, height int, fpsCap int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	win := &Window{
		width:  width,
		height: height,
	}

	var err error

	win.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), 0)
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(SetupError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, 0)
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(SetupError, err)
	}

	win.texture, err = win.renderer.CreateTexture(pixelFormat,
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(SetupError, err)
	}

	if fpsCap > 0 {
		win.lim = newLimiter(fpsCap)
	}

	logger.Logf("sdl", "window %dx%d created", width, height)

	return win, nil
}

// Destroy releases all resources used by the window. The window is no
// longer usable afterwards.
func (win *Window) Destroy() {
	if win.texture != nil {
		win.texture.Destroy()
		win.texture = nil
	}
	if win.renderer != nil {
		win.renderer.Destroy()
		win.renderer = nil
	}
	if win.window != nil {
		win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// Frame produces and presents one frame. The supplied function renders into
// the window's texture memory: pixels is the raw texture buffer and pitch
// the number of bytes per row, exactly as the compositor's Render function
// expects them.
func (win *Window) Frame(render func(pixels []byte, pitch int)) error {
	pixels, pitch, err := win.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(FrameError, err)
	}

	render(pixels, pitch)
	win.texture.Unlock()

	if err := win.renderer.Clear(); err != nil {
		return curated.Errorf(FrameError, err)
	}
	if err := win.renderer.Copy(win.texture, nil, nil); err != nil {
		return curated.Errorf(FrameError, err)
	}
	win.renderer.Present()

	if win.lim != nil {
		win.lim.wait()
	}

	return nil
}
