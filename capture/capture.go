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

// Package capture renders the demonstration scene offscreen and saves the
// frames as image files. Useful for inspecting compositor output without a
// display, and for producing documentation images.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/JoniSt/softrender-engine/compositor"
	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/demo"
	"github.com/JoniSt/softrender-engine/logger"
	"golang.org/x/image/draw"
)

// sentinel error returned by the capture functions
const CaptureError = "capture: %v"

// packRGBA packs a pixel such that the little-endian framebuffer holds bytes
// in R, G, B, A order. The framebuffer can then be used directly as the Pix
// field of an image.NRGBA.
func packRGBA(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xff000000
}

// Frames renders numFrames frames of the demonstration scene and writes each
// one to an image file. The filename argument is a template: frame numbers
// are inserted before the extension, so "shot.webp" produces "shot_0.webp",
// "shot_1.webp" and so on. The extension selects the encoder; WebP and PNG
// are supported.
//
// A scale factor greater than one enlarges the output by integer nearest
// neighbour resampling, keeping the pixels crisp.
func Frames(spec compositor.Spec, conf demo.Config, filename string, numFrames int, scale int) error {
	if numFrames < 1 {
		return curated.Errorf(CaptureError, "at least one frame must be captured")
	}
	if scale < 1 {
		scale = 1
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".webp", ".png":
	default:
		return curated.Errorf(CaptureError, fmt.Sprintf("unsupported image type: %q", ext))
	}

	cmp, err := compositor.NewCompositor(spec, packRGBA)
	if err != nil {
		return curated.Errorf(CaptureError, err)
	}

	scn, err := demo.NewScene(spec.Width, spec.Height, conf)
	if err != nil {
		return curated.Errorf(CaptureError, err)
	}

	stem := strings.TrimSuffix(filename, ext)

	for i := 0; i < numFrames; i++ {
		scn.Tick()

		img := renderFrame(cmp, scn)
		if scale > 1 {
			img = enlarge(img, scale)
		}

		fn := fmt.Sprintf("%s_%d%s", stem, i, ext)
		err = saveImage(img, fn, ext)
		if err != nil {
			return curated.Errorf(CaptureError, err)
		}

		logger.Logf("capture", "saved %s", fn)
	}

	return nil
}

// renderFrame composites the scene's current state into a fresh image.
func renderFrame(cmp *compositor.Compositor, scn *demo.Scene) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cmp.Width(), cmp.Height()))
	cmp.Render(scn.Sprites(), img.Pix, img.Stride)
	return img
}

// enlarge resamples the image by an integer factor with nearest neighbour,
// preserving hard pixel edges.
func enlarge(img *image.NRGBA, scale int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func saveImage(img *image.NRGBA, filename string, ext string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".webp":
		return nativewebp.Encode(f, img, nil)
	case ".png":
		return png.Encode(f, img)
	}

	return fmt.Errorf("unsupported image type: %s", ext)
}
