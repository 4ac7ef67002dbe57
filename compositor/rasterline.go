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

import (
	"encoding/binary"

	"github.com/JoniSt/softrender-engine/smallvec"
	"github.com/JoniSt/softrender-engine/sprite"
)

// rasterLine is one horizontal line of the output. It owns a bucket per
// column holding the sprites whose visible span begins at exactly that
// column, and the stack of sprites active at the current sweep position.
// Both keep their backing storage across frames.
//
// A rasterLine is written by exactly one distribution task and swept by
// exactly one render task per frame. It requires no locking.
type rasterLine struct {
	width   int
	buckets []smallvec.Vector[*sprite.Sprite]

	// sprites whose horizontal span covers the current sweep column, sorted
	// so that the topmost layer is last. may contain stale entries: sprites
	// the sweep has passed are only evicted when resolve encounters them
	active []*sprite.Sprite

	// number of sprites added this frame, for the reclamation policy
	frameSprites int
}

func newRasterLine(width int) rasterLine {
	return rasterLine{
		width:   width,
		buckets: make([]smallvec.Vector[*sprite.Sprite], width),
	}
}

// addSprite records a sprite whose visible span on this line begins at
// column firstX. The column must be within the line; the caller clips.
func (ln *rasterLine) addSprite(spr *sprite.Sprite, firstX int) {
	ln.buckets[firstX].Put(spr)
	ln.frameSprites++
}

// insertActive places a newly activated sprite into the active stack,
// keeping the stack sorted by ascending layer. A sprite with a layer equal
// to one already on the stack is inserted below it.
func (ln *rasterLine) insertActive(spr *sprite.Sprite) {
	i := len(ln.active)
	for i > 0 && ln.active[i-1].Layer >= spr.Layer {
		i--
	}
	ln.active = append(ln.active, nil)
	copy(ln.active[i+1:], ln.active[i:])
	ln.active[i] = spr
}

// dropStale removes every active sprite whose span ends before column x.
func (ln *rasterLine) dropStale(x int) {
	n := 0
	for _, spr := range ln.active {
		if spr.Position.LastX() >= x {
			ln.active[n] = spr
			n++
		}
	}
	clear(ln.active[n:])
	ln.active = ln.active[:n]
}

// resolve finds the color of column x by scanning the active stack from the
// topmost layer down. The first opaque sample wins. Stale sprites found on
// the way are evicted and the scan restarts from the new top.
func (ln *rasterLine) resolve(x, y int) sprite.Pixel {
	i := len(ln.active) - 1
	for i >= 0 {
		spr := ln.active[i]

		if spr.Position.LastX() < x {
			if i == len(ln.active)-1 {
				// the topmost sprite is stale: pop it without touching the
				// rest of the stack
				ln.active[i] = nil
				ln.active = ln.active[:i]
			} else {
				// something in the middle of the stack is stale. we have to
				// shuffle the stack anyway so evict everything stale in one
				// pass
				ln.dropStale(x)
			}
			i = len(ln.active) - 1
			continue
		}

		pix := spr.Sample(x-spr.Position.X, y-spr.Position.Y)
		if !pix.Transparent {
			return pix
		}
		i--
	}

	return sprite.Transparent
}

// render sweeps the line left to right, resolving every column and writing
// the packed result into target. target must hold width packed 32-bit
// pixels. Columns not covered by an opaque sprite are black.
func (ln *rasterLine) render(target []byte, y int, pack sprite.Packer) {
	for x := 0; x < ln.width; x++ {
		bucket := &ln.buckets[x]
		for i := 0; i < bucket.Len(); i++ {
			ln.insertActive(bucket.At(i))
		}

		pix := ln.resolve(x, y)
		if pix.Transparent {
			pix = sprite.Opaque(0, 0, 0)
		}

		binary.LittleEndian.PutUint32(target[x*4:], pack(pix.R, pix.G, pix.B))
	}
}

// clear empties the buckets and the active stack, releasing every sprite
// reference taken during the frame. If the frame left the active stack's
// backing storage oversized relative to the line's sprite count it is
// reallocated at a usage-proportional size.
func (ln *rasterLine) clear(wastageFactor, extraFactor, minCapacity int) {
	for i := range ln.buckets {
		ln.buckets[i].Clear()
	}

	// clear the full capacity of the stack, not just its length: lazily
	// evicted entries beyond the length would otherwise pin their sprites
	ln.active = ln.active[:cap(ln.active)]
	clear(ln.active)
	ln.active = ln.active[:0]

	if cap(ln.active) > max(ln.frameSprites*wastageFactor, minCapacity) {
		ln.active = make([]*sprite.Sprite, 0, ln.frameSprites*extraFactor)
	}

	ln.frameSprites = 0
}
