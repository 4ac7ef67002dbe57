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

package compositor

import "github.com/JoniSt/softrender-engine/curated"

// sentinel errors for the compositor package
const (
	BadSpec = "compositor: bad spec: %s"
)

// default Spec values, used when the corresponding field is zero
const (
	defBlockHeight   = 8
	defWastageFactor = 4
	defExtraFactor   = 2
	defMinCapacity   = 16
)

// Spec is the construction-time configuration of a Compositor. Width and
// Height are required. The remaining fields tune behaviour and may be left
// zero, in which case defaults apply. None of the values can change for the
// lifetime of a Compositor.
type Spec struct {
	// dimensions of the output framebuffer in pixels
	Width  int
	Height int

	// number of rows per distribution block
	BlockHeight int

	// number of workers used by the parallel phases. zero means one worker
	// per available CPU
	Workers int

	// a raster line's working storage is shrunk after a frame if its
	// capacity exceeds max(spritesOnLine*WastageFactor, MinCapacity). the
	// shrunken capacity is spritesOnLine*ExtraFactor. the two factors give
	// the policy hysteresis so a stable sprite count never causes repeated
	// reallocation
	WastageFactor int
	ExtraFactor   int
	MinCapacity   int
}

// normalise applies defaults and validates the spec.
func (spec Spec) normalise() (Spec, error) {
	if spec.Width < 1 || spec.Height < 1 {
		return spec, curated.Errorf(BadSpec, "dimensions must be at least 1x1")
	}
	if spec.BlockHeight < 0 || spec.WastageFactor < 0 || spec.ExtraFactor < 0 || spec.MinCapacity < 0 {
		return spec, curated.Errorf(BadSpec, "tuning values must not be negative")
	}

	if spec.BlockHeight == 0 {
		spec.BlockHeight = defBlockHeight
	}
	if spec.WastageFactor == 0 {
		spec.WastageFactor = defWastageFactor
	}
	if spec.ExtraFactor == 0 {
		spec.ExtraFactor = defExtraFactor
	}
	if spec.MinCapacity == 0 {
		spec.MinCapacity = defMinCapacity
	}

	return spec, nil
}
