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

// Package demo generates the sprites shown by the softrender demo modes: a
// static background grid of tiles and a swarm of foreground sprites that
// bounce off the edges of the screen.
//
// Foreground sprites are procedural gradients by default. They can instead
// be loaded from a PNG or TGA image file, with the image's alpha channel
// thresholded to the compositor's binary transparency model.
//
// Sprite motion is glue around the compositor, not part of it. The
// compositor receives a fresh flat sprite list every frame and knows nothing
// of scenes or velocity.
package demo
