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

// Package sprite defines the sprite descriptor consumed by the compositor
// and the binary opaque-or-transparent pixel model it composites with.
//
// A sprite is an axis-aligned rectangle, a depth layer and a sampling
// function. There is no partial alpha: a sampled pixel is either fully
// opaque or contributes nothing.
package sprite

import "github.com/JoniSt/softrender-engine/geometry"

// Pixel is one pixel of a sprite. It is either fully opaque with an RGB
// color or fully transparent.
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// Opaque returns a non-transparent Pixel with the given color.
func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Transparent is the pixel returned by samplers for locations where the
// sprite has no content.
var Transparent = Pixel{Transparent: true}

// Sampler returns the pixel at the given coordinates, relative to the
// sprite's origin. Samplers may be called concurrently from multiple raster
// line tasks and must be safe for that.
type Sampler func(x, y int) Pixel

// Packer packs an RGB color into the caller's framebuffer pixel format, for
// example 0xAARRGGBB.
type Packer func(r, g, b uint8) uint32

// Sprite describes one rectangle to draw. Sprites are owned by the caller;
// the compositor borrows them for the duration of a single render call and
// retains nothing afterwards.
type Sprite struct {
	// Position is the sprite's rectangle in screen space. It may extend
	// beyond the viewport; the compositor clips it.
	Position geometry.Rectangle

	// Layer is the depth key. A sprite with a larger layer value paints over
	// any sprite with a smaller one wherever both are opaque. The mutual
	// order of sprites with equal layer values is not specified and must not
	// be relied on.
	Layer uint32

	// Sample returns the sprite's pixel at coordinates relative to Position.
	Sample Sampler
}
