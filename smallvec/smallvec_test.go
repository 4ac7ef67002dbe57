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

package smallvec_test

import (
	"testing"

	"github.com/JoniSt/softrender-engine/smallvec"
	"github.com/JoniSt/softrender-engine/test"
)

func TestEmpty(t *testing.T) {
	var v smallvec.Vector[int]
	test.ExpectEquality(t, v.Len(), 0)
}

func TestInline(t *testing.T) {
	var v smallvec.Vector[int]

	// stay strictly within the inline capacity
	for i := 0; i < smallvec.InlineCapacity; i++ {
		v.Put(i * 10)
	}

	test.DemandEquality(t, v.Len(), smallvec.InlineCapacity)
	for i := 0; i < v.Len(); i++ {
		test.ExpectEquality(t, v.At(i), i*10)
	}
}

func TestPromotion(t *testing.T) {
	var v smallvec.Vector[int]

	// push well past the inline capacity. the elements must come back in
	// append order regardless of which backing storage is active
	const n = smallvec.InlineCapacity * 5
	for i := 0; i < n; i++ {
		v.Put(i)
	}

	test.DemandEquality(t, v.Len(), n)
	for i := 0; i < v.Len(); i++ {
		test.ExpectEquality(t, v.At(i), i)
	}
}

func TestPromotionBoundary(t *testing.T) {
	var v smallvec.Vector[string]

	for i := 0; i <= smallvec.InlineCapacity; i++ {
		v.Put(string(rune('a' + i)))
	}

	// exactly one element past the inline capacity
	test.DemandEquality(t, v.Len(), smallvec.InlineCapacity+1)
	for i := 0; i < v.Len(); i++ {
		test.ExpectEquality(t, v.At(i), string(rune('a'+i)))
	}
}

func TestClear(t *testing.T) {
	var v smallvec.Vector[int]

	for i := 0; i < smallvec.InlineCapacity*2; i++ {
		v.Put(i)
	}
	v.Clear()
	test.ExpectEquality(t, v.Len(), 0)

	// the vector must be fully usable after a clear, including a second
	// promotion to heap storage
	for i := 0; i < smallvec.InlineCapacity+1; i++ {
		v.Put(i + 100)
	}
	test.DemandEquality(t, v.Len(), smallvec.InlineCapacity+1)
	for i := 0; i < v.Len(); i++ {
		test.ExpectEquality(t, v.At(i), i+100)
	}
}
