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

package demo

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/sprite"

	"github.com/ftrvxmtrx/tga"
)

// sentinel errors for image loading
const (
	ImageError = "demo: image: %v"
)

// pixels with an alpha below this are treated as fully transparent. the
// compositor has no partial alpha so everything else becomes fully opaque
const alphaThreshold = 0x80

// LoadImage reads a PNG or TGA file and returns a sampler over its pixels
// together with the image dimensions. The file type is chosen by extension.
//
// The image is converted up front into a flat pixel slice so that sampling
// is an array lookup, safe for concurrent use from the raster line tasks.
func LoadImage(filename string) (sprite.Sampler, int, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, 0, curated.Errorf(ImageError, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		img, err = png.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	default:
		return nil, 0, 0, curated.Errorf(ImageError, filename+": not a png or tga file")
	}
	if err != nil {
		return nil, 0, 0, curated.Errorf(ImageError, err)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	pixels := make([]sprite.Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a>>8 < alphaThreshold {
				pixels[y*w+x] = sprite.Transparent
			} else {
				pixels[y*w+x] = sprite.Opaque(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			}
		}
	}

	sample := func(x, y int) sprite.Pixel {
		return pixels[y*w+x]
	}

	return sample, w, h, nil
}
