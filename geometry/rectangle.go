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

package geometry

import "fmt"

// Rectangle is an axis-aligned rectangle over integer screen coordinates.
// X and Y locate the top-left pixel. W and H are extents in pixels and are
// never negative.
//
// The zero value of Rectangle is the canonical empty rectangle.
type Rectangle struct {
	X int
	Y int
	W int
	H int
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d, %d) %dx%d", r.X, r.Y, r.W, r.H)
}

// IsEmpty returns true if the rectangle contains no pixels.
func (r Rectangle) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// LastX returns the largest X coordinate contained in the rectangle. Only
// meaningful for non-empty rectangles.
func (r Rectangle) LastX() int {
	return r.X + r.W - 1
}

// LastY returns the largest Y coordinate contained in the rectangle. Only
// meaningful for non-empty rectangles.
func (r Rectangle) LastY() int {
	return r.Y + r.H - 1
}

// Intersects returns true if the two rectangles share at least one pixel. An
// empty rectangle intersects nothing, including itself.
func (r Rectangle) Intersects(o Rectangle) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	if o.X > r.LastX() || r.X > o.LastX() {
		return false
	}
	if o.Y > r.LastY() || r.Y > o.LastY() {
		return false
	}
	return true
}

// Intersection returns the rectangle common to r and o. If the rectangles do
// not overlap, or if either is empty, the canonical empty rectangle is
// returned.
func (r Rectangle) Intersection(o Rectangle) Rectangle {
	if !r.Intersects(o) {
		return Rectangle{}
	}

	var s Rectangle
	s.X = max(r.X, o.X)
	s.Y = max(r.Y, o.Y)
	s.W = min(r.LastX(), o.LastX()) - s.X + 1
	s.H = min(r.LastY(), o.LastY()) - s.Y + 1
	return s
}
