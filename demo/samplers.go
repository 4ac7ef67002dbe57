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
	"github.com/JoniSt/softrender-engine/sprite"
)

// Solid returns a sampler with the same opaque color everywhere.
func Solid(r, g, b uint8) sprite.Sampler {
	return func(x, y int) sprite.Pixel {
		return sprite.Opaque(r, g, b)
	}
}

// Gradient returns a sampler fading red across the width and either green or
// blue down the height of a w by h sprite.
func Gradient(w, h int, blue bool) sprite.Sampler {
	return func(x, y int) sprite.Pixel {
		if blue {
			return sprite.Opaque(uint8(x*256/w), 0, uint8(y*256/h))
		}
		return sprite.Opaque(uint8(x*256/w), uint8(y*256/h), 0)
	}
}

// Disc returns a gradient sampler that is transparent outside the largest
// circle fitting a w by h sprite. It is the demo's showcase for per-pixel
// transparency.
func Disc(w, h int, blue bool) sprite.Sampler {
	gradient := Gradient(w, h, blue)
	return func(x, y int) sprite.Pixel {
		// compare against the sprite's inscribed ellipse, in fixed point to
		// stay clear of float arithmetic in the sampling path
		dx := 2*x - w + 1
		dy := 2*y - h + 1
		if dx*dx*h*h+dy*dy*w*w > w*w*h*h {
			return sprite.Transparent
		}
		return gradient(x, y)
	}
}

// Checker returns a sampler alternating between an opaque color and
// transparency in a checkerboard of the given cell size.
func Checker(cell int, r, g, b uint8) sprite.Sampler {
	return func(x, y int) sprite.Pixel {
		if (x/cell+y/cell)%2 == 0 {
			return sprite.Transparent
		}
		return sprite.Opaque(r, g, b)
	}
}
