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

package demo

import (
	"math/rand"

	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/geometry"
	"github.com/JoniSt/softrender-engine/sprite"
)

// sentinel errors for scene creation
const (
	SceneError = "demo: scene: %v"
)

// default Config values, used when the corresponding field is zero
const (
	defForeground     = 1000
	defSpriteSize     = 16
	defBackgroundSize = 32
	defMaxSpeed       = 3
)

// Config for NewScene. Zero fields take defaults.
type Config struct {
	// number of bouncing foreground sprites
	Foreground int

	// edge length of foreground sprites (ignored when Image is set) and of
	// the background tiles
	SpriteSize     int
	BackgroundSize int

	// maximum per-axis speed of foreground sprites, in pixels per tick
	MaxSpeed int

	// optional PNG or TGA file to use for the foreground sprites instead of
	// the procedural discs
	Image string
}

func (conf Config) normalise() Config {
	if conf.Foreground == 0 {
		conf.Foreground = defForeground
	}
	if conf.SpriteSize == 0 {
		conf.SpriteSize = defSpriteSize
	}
	if conf.BackgroundSize == 0 {
		conf.BackgroundSize = defBackgroundSize
	}
	if conf.MaxSpeed == 0 {
		conf.MaxSpeed = defMaxSpeed
	}
	return conf
}

// Scene is a self-animating set of sprites covering a fixed viewport. Tick()
// advances the animation by one frame; Sprites() is the flat list to hand to
// the compositor.
type Scene struct {
	bounds  geometry.Rectangle
	sprites []sprite.Sprite

	// index into sprites of the first bouncing sprite, and the velocities of
	// everything from that point on
	foreground int
	velocities []velocity
}

type velocity struct {
	x, y int
}

// NewScene creates a demo scene for a width by height viewport: a background
// grid of gradient tiles with the configured foreground sprites bouncing
// above it. Background tiles take the lowest layers, foreground sprites the
// layers above them, so every foreground sprite paints over every tile.
func NewScene(width, height int, conf Config) (*Scene, error) {
	conf = conf.normalise()
	if conf.Foreground < 0 || conf.MaxSpeed < 0 || conf.SpriteSize < 1 || conf.BackgroundSize < 1 {
		return nil, curated.Errorf(SceneError, "config values out of range")
	}

	scn := &Scene{
		bounds: geometry.Rectangle{W: width, H: height},
	}

	// the demo is deterministic: the same configuration always produces the
	// same scene
	gen := rand.New(rand.NewSource(0))

	var layer uint32

	// background tiles
	for tx := 0; tx < width; tx += conf.BackgroundSize {
		for ty := 0; ty < height; ty += conf.BackgroundSize {
			scn.sprites = append(scn.sprites, sprite.Sprite{
				Position: geometry.Rectangle{X: tx, Y: ty, W: conf.BackgroundSize, H: conf.BackgroundSize},
				Layer:    layer,
				Sample:   Solid(uint8(tx), uint8(ty), 0),
			})
			layer++
		}
	}
	scn.foreground = len(scn.sprites)

	// foreground sampler: procedural discs or an image file
	sample := func(i int) sprite.Sampler { return Disc(conf.SpriteSize, conf.SpriteSize, i%2 == 0) }
	sprW := conf.SpriteSize
	sprH := conf.SpriteSize

	if conf.Image != "" {
		imgSample, w, h, err := LoadImage(conf.Image)
		if err != nil {
			return nil, curated.Errorf(SceneError, err)
		}
		sample = func(i int) sprite.Sampler { return imgSample }
		sprW = w
		sprH = h
	}

	for i := 0; i < conf.Foreground; i++ {
		x := gen.Intn(max(width-sprW, 1))
		y := gen.Intn(max(height-sprH, 1))

		scn.sprites = append(scn.sprites, sprite.Sprite{
			Position: geometry.Rectangle{X: x, Y: y, W: sprW, H: sprH},
			Layer:    layer,
			Sample:   sample(i),
		})
		layer++

		scn.velocities = append(scn.velocities, velocity{
			x: gen.Intn(2*conf.MaxSpeed+1) - conf.MaxSpeed,
			y: gen.Intn(2*conf.MaxSpeed+1) - conf.MaxSpeed,
		})
	}

	return scn, nil
}

// Sprites returns the scene's sprites in their current positions. The slice
// is reused between calls; it is valid until the next Tick().
func (scn *Scene) Sprites() []sprite.Sprite {
	return scn.sprites
}

// Tick advances every foreground sprite by its velocity, reflecting at the
// viewport edges.
func (scn *Scene) Tick() {
	for i := range scn.velocities {
		spr := &scn.sprites[scn.foreground+i]
		vel := &scn.velocities[i]

		if spr.Position.X < scn.bounds.X {
			vel.x = abs(vel.x)
		}
		if spr.Position.LastX() > scn.bounds.LastX() {
			vel.x = -abs(vel.x)
		}
		if spr.Position.Y < scn.bounds.Y {
			vel.y = abs(vel.y)
		}
		if spr.Position.LastY() > scn.bounds.LastY() {
			vel.y = -abs(vel.y)
		}

		spr.Position.X += vel.x
		spr.Position.Y += vel.y
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
