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

package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/JoniSt/softrender-engine/parallel"
	"github.com/JoniSt/softrender-engine/test"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 8, 100} {
		p := parallel.New(workers)

		const n = 1000
		var visits [n]atomic.Int32

		p.For(n, func(i int) {
			visits[i].Add(1)
		})

		// For has joined: plain reads are safe here
		for i := 0; i < n; i++ {
			test.ExpectEquality(t, visits[i].Load(), 1, "workers", workers, "index", i)
		}
	}
}

func TestForZeroLength(t *testing.T) {
	p := parallel.New(4)
	called := false
	p.For(0, func(i int) { called = true })
	test.ExpectFailure(t, called)
}

func TestForMoreWorkersThanWork(t *testing.T) {
	p := parallel.New(64)

	var count atomic.Int32
	p.For(3, func(i int) {
		count.Add(1)
	})
	test.ExpectEquality(t, count.Load(), 3)
}

func TestDefaultWorkerCount(t *testing.T) {
	test.ExpectSuccess(t, parallel.New(0).Workers() >= 1)
	test.ExpectSuccess(t, parallel.New(-1).Workers() >= 1)
	test.ExpectEquality(t, parallel.New(7).Workers(), 7)
}
