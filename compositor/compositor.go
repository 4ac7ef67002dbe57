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
	"fmt"

	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/geometry"
	"github.com/JoniSt/softrender-engine/parallel"
	"github.com/JoniSt/softrender-engine/sprite"
)

// block is the scratch state for one horizontal stripe of rows during the
// distribution pass. The candidate list keeps its backing storage across
// frames; the sprite references themselves are dropped at the end of every
// distribution pass.
type block struct {
	sprites []*sprite.Sprite
}

// Compositor renders depth-ordered sprites into a caller-owned packed-pixel
// framebuffer. It is created for a fixed output size and may be reused for
// any number of frames.
//
// A Compositor must not be used from more than one goroutine at a time; it
// manages its own internal parallelism.
type Compositor struct {
	spec     Spec
	pack     sprite.Packer
	viewport geometry.Rectangle
	lines    []rasterLine
	blocks   []block
	pool     *parallel.Pool
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. The Spec's dimensions and tuning values, and the pixel packing
// function, are fixed for the lifetime of the Compositor.
func NewCompositor(spec Spec, pack sprite.Packer) (*Compositor, error) {
	var err error

	spec, err = spec.normalise()
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, curated.Errorf(BadSpec, "a pixel packing function is required")
	}

	cmp := &Compositor{
		spec:     spec,
		pack:     pack,
		viewport: geometry.Rectangle{W: spec.Width, H: spec.Height},
		lines:    make([]rasterLine, spec.Height),
		blocks:   make([]block, (spec.Height+spec.BlockHeight-1)/spec.BlockHeight),
		pool:     parallel.New(spec.Workers),
	}

	for i := range cmp.lines {
		cmp.lines[i] = newRasterLine(spec.Width)
	}

	return cmp, nil
}

// Width of the output framebuffer in pixels.
func (cmp *Compositor) Width() int {
	return cmp.spec.Width
}

// Height of the output framebuffer in pixels.
func (cmp *Compositor) Height() int {
	return cmp.spec.Height
}

// Render composites the supplied sprites into framebuffer. The framebuffer
// is row-major with the supplied pitch (bytes per row); each pixel is one
// packed 32-bit value produced by the Compositor's packing function. The
// pitch may exceed Width*4, in which case the padding bytes are left
// untouched.
//
// The sprite slice is borrowed for the duration of the call and is read-only
// during it. No reference to any sprite survives the call.
//
// An undersized framebuffer or pitch is a contract violation and panics.
func (cmp *Compositor) Render(sprites []sprite.Sprite, framebuffer []byte, pitch int) {
	if pitch < cmp.spec.Width*4 {
		panic(fmt.Sprintf("compositor: pitch of %d bytes is too small for a width of %d pixels", pitch, cmp.spec.Width))
	}
	if len(framebuffer) < cmp.spec.Height*pitch {
		panic(fmt.Sprintf("compositor: framebuffer of %d bytes is too small for %d rows at a pitch of %d", len(framebuffer), cmp.spec.Height, pitch))
	}

	cmp.distribute(sprites)

	// the distribution pass has joined: every bucket write for every row is
	// complete before any row is swept
	cmp.pool.For(cmp.spec.Height, func(y int) {
		ln := &cmp.lines[y]
		row := framebuffer[y*pitch : y*pitch+cmp.spec.Width*4]
		ln.render(row, y, cmp.pack)

		// every rasterLine must be empty again when Render returns. the
		// caller never clears lines itself
		ln.clear(cmp.spec.WastageFactor, cmp.spec.ExtraFactor, cmp.spec.MinCapacity)
	})
}

// distribute assigns every sprite to the raster lines it may be visible on,
// recording the leftmost on-screen column of its visible span.
//
// The coarse pass walks the sprite list once, sequentially, appending each
// viewport-clipped sprite to the candidate list of every row block it spans.
// The fine pass then handles each block in parallel, re-clipping candidates
// against the block's own row range and filling the per-row buckets. A row
// belongs to exactly one block so no bucket is written by two tasks.
func (cmp *Compositor) distribute(sprites []sprite.Sprite) {
	bh := cmp.spec.BlockHeight

	for i := range sprites {
		vis := cmp.viewport.Intersection(sprites[i].Position)
		if vis.IsEmpty() {
			continue
		}

		for b := vis.Y / bh; b <= vis.LastY()/bh; b++ {
			cmp.blocks[b].sprites = append(cmp.blocks[b].sprites, &sprites[i])
		}
	}

	cmp.pool.For(len(cmp.blocks), func(b int) {
		stripe := geometry.Rectangle{Y: b * bh, W: cmp.spec.Width, H: bh}.Intersection(cmp.viewport)

		for _, spr := range cmp.blocks[b].sprites {
			vis := stripe.Intersection(spr.Position)
			if vis.IsEmpty() {
				continue
			}

			for y := vis.Y; y <= vis.LastY(); y++ {
				cmp.lines[y].addSprite(spr, vis.X)
			}
		}
	})

	// drop the borrowed sprite references but keep the candidate lists'
	// backing storage for the next frame
	for b := range cmp.blocks {
		clear(cmp.blocks[b].sprites)
		cmp.blocks[b].sprites = cmp.blocks[b].sprites[:0]
	}
}
