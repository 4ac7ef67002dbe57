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

// Package smallvec implements an append-only sequence that stores a small
// number of elements inside the value itself, deferring heap allocation until
// the inline capacity is exceeded.
//
// The compositor keeps one Vector per output pixel, holding the sprites that
// begin at that pixel. The overwhelming majority of those lists are empty or
// hold fewer elements than the inline capacity, so the common case of a frame
// causes no allocation at all.
package smallvec

// InlineCapacity is the number of elements a Vector stores without touching
// the heap. Go generics cannot parameterise an array length so the capacity
// is a package constant rather than a type parameter.
const InlineCapacity = 4

// Vector is an append-only, index-accessible, clearable sequence. The zero
// value is an empty Vector ready for use.
//
// A Vector must not be copied after first use: the inline storage is part of
// the value itself.
type Vector[T any] struct {
	n      int
	inline [InlineCapacity]T

	// nil while the inline storage is active. once an append exceeds the
	// inline capacity all elements move here and the inline storage is dead
	// until the next Clear()
	heap []T
}

// Put appends a value to the vector.
func (v *Vector[T]) Put(value T) {
	if v.heap == nil {
		if v.n < InlineCapacity {
			v.inline[v.n] = value
			v.n++
			return
		}

		// inline storage is full. move everything to the heap and carry on
		// there
		v.heap = make([]T, 0, InlineCapacity*2)
		v.heap = append(v.heap, v.inline[:]...)
		v.inline = [InlineCapacity]T{}
	}

	v.heap = append(v.heap, value)
	v.n++
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.n
}

// At returns the i-th element of the vector. The index must be within bounds.
func (v *Vector[T]) At(i int) T {
	if v.heap == nil {
		return v.inline[i]
	}
	return v.heap[i]
}

// Clear empties the vector and returns it to the inline-backed state. Any
// heap backing is released rather than reused; stored elements are zeroed so
// the vector retains no references.
func (v *Vector[T]) Clear() {
	if v.n == 0 {
		return
	}
	v.inline = [InlineCapacity]T{}
	v.heap = nil
	v.n = 0
}
