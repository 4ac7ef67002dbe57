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

package demo_test

import (
	"testing"

	"github.com/JoniSt/softrender-engine/demo"
	"github.com/JoniSt/softrender-engine/test"
)

func TestSceneLayers(t *testing.T) {
	scn, err := demo.NewScene(320, 200, demo.Config{Foreground: 50})
	test.DemandSuccess(t, err)

	sprites := scn.Sprites()

	// 10x7 background tiles of the default size plus the foreground
	test.DemandEquality(t, len(sprites), 10*7+50)

	// every sprite has a unique layer and they are in ascending order, so
	// the foreground is always on top of the background
	for i := 1; i < len(sprites); i++ {
		test.ExpectSuccess(t, sprites[i].Layer > sprites[i-1].Layer)
	}
}

func TestSceneBounce(t *testing.T) {
	scn, err := demo.NewScene(100, 100, demo.Config{Foreground: 20, MaxSpeed: 5})
	test.DemandSuccess(t, err)

	// sprites never leave the viewport by more than one tick's travel
	for i := 0; i < 1000; i++ {
		scn.Tick()
	}
	for _, spr := range scn.Sprites() {
		test.ExpectSuccess(t, spr.Position.X >= -5 && spr.Position.LastX() <= 104)
		test.ExpectSuccess(t, spr.Position.Y >= -5 && spr.Position.LastY() <= 104)
	}
}

func TestSceneDeterminism(t *testing.T) {
	a, err := demo.NewScene(320, 200, demo.Config{})
	test.DemandSuccess(t, err)
	b, err := demo.NewScene(320, 200, demo.Config{})
	test.DemandSuccess(t, err)

	a.Tick()
	b.Tick()

	sa := a.Sprites()
	sb := b.Sprites()
	test.DemandEquality(t, len(sa), len(sb))
	for i := range sa {
		test.ExpectEquality(t, sa[i].Position, sb[i].Position, "sprite", i)
	}
}

func TestBadConfig(t *testing.T) {
	_, err := demo.NewScene(100, 100, demo.Config{Foreground: -1})
	test.ExpectFailure(t, err)

	_, err = demo.NewScene(100, 100, demo.Config{SpriteSize: -3})
	test.ExpectFailure(t, err)
}

func TestSamplers(t *testing.T) {
	// the disc sampler is opaque at the centre and transparent in the
	// corners
	disc := demo.Disc(16, 16, false)
	test.ExpectFailure(t, disc(8, 8).Transparent)
	test.ExpectSuccess(t, disc(0, 0).Transparent)
	test.ExpectSuccess(t, disc(15, 15).Transparent)

	// the checker sampler alternates between opaque and transparent
	chk := demo.Checker(2, 10, 20, 30)
	test.ExpectSuccess(t, chk(0, 0).Transparent)
	test.ExpectFailure(t, chk(2, 0).Transparent)
	test.ExpectEquality(t, chk(2, 0), demo.Solid(10, 20, 30)(0, 0))
}
