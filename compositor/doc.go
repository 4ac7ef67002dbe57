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

// Package compositor implements the scanline sprite compositor at the heart
// of the softrender engine.
//
// A Compositor is created once for a fixed output size. Every frame the
// caller hands it a list of sprites and a packed-pixel framebuffer and the
// Compositor resolves, per pixel, which sprite is topmost and opaque.
//
// Rendering runs in two fork-join phases. The distribution phase clips every
// sprite against the viewport and records, for every output row the sprite
// touches, the leftmost column of its visible span. Rows are grouped into
// fixed-height blocks so that the per-row clipping can run in parallel
// without any row being written by two tasks. The sweep phase then renders
// every row independently: sprites are activated as the sweep reaches the
// first column of their span, stacked in layer order, and each column is
// resolved by sampling from the top of the stack down until an opaque pixel
// is found. Sprites whose span the sweep has passed are evicted lazily, only
// when the resolution scan stumbles over them.
//
// Both phases write to data owned exclusively by one task (a block's rows, a
// row's pixels) so the phases need no locking; the join between them is the
// only synchronisation.
//
// The Compositor keeps no sprite state between frames. Per-row working
// memory is retained across frames to avoid allocation, subject to a
// wastage-reclamation policy that shrinks storage left oversized by a
// transient high-sprite-count frame.
package compositor
