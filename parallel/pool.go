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

// Package parallel implements the fork-join parallel-for used by the
// compositor's per-frame phases.
//
// There are no persistent worker goroutines: each For call forks workers,
// hands out indices dynamically (first idle worker takes the next index, so
// uneven per-index costs balance out) and joins before returning. Work
// functions for different indices must touch disjoint data; the package does
// no locking on their behalf.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool fixes a worker count for For calls. The zero value is not useful; use
// New.
type Pool struct {
	workers int
}

// New creates a Pool with the given number of workers. If workers is zero or
// negative the number of available CPUs is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the worker count the Pool was created with.
func (p *Pool) Workers() int {
	return p.workers
}

// For calls fn once for every index in [0, n) and returns once all calls
// have completed. Indices are dispatched dynamically across the pool's
// workers. With a single worker all calls happen inline, in index order.
func (p *Pool) For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
