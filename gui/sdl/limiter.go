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

package sdl

import (
	"time"
)

// limiter paces the frame loop to a target framerate.
type limiter struct {
	secondsPerFrame time.Duration
	tick            chan bool
}

func newLimiter(framesPerSecond int) *limiter {
	lim := &limiter{
		secondsPerFrame: time.Duration(float64(time.Second) / float64(framesPerSecond)),
		tick:            make(chan bool),
	}

	// run ticker concurrently. the sleep time is continually adjusted for
	// the drift of the previous tick
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjusted)
			nt := time.Now()
			lim.tick <- true
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

func (lim *limiter) wait() {
	<-lim.tick
}
