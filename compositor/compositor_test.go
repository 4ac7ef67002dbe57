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

package compositor_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/JoniSt/softrender-engine/compositor"
	"github.com/JoniSt/softrender-engine/geometry"
	"github.com/JoniSt/softrender-engine/sprite"
	"github.com/JoniSt/softrender-engine/test"
)

// the packing function used by all tests in this file. alpha is always 0xff
// so a black background pixel is 0xff000000, not zero.
func packARGB(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func solid(r, g, b uint8) sprite.Sampler {
	return func(x, y int) sprite.Pixel {
		return sprite.Opaque(r, g, b)
	}
}

// pixelAt reads the packed pixel at the given coordinates from a framebuffer
// with the given pitch.
func pixelAt(fb []byte, pitch, x, y int) uint32 {
	i := y*pitch + x*4
	return uint32(fb[i]) | uint32(fb[i+1])<<8 | uint32(fb[i+2])<<16 | uint32(fb[i+3])<<24
}

func newTestCompositor(t *testing.T, spec compositor.Spec) *compositor.Compositor {
	t.Helper()
	cmp, err := compositor.NewCompositor(spec, packARGB)
	test.DemandSuccess(t, err)
	return cmp
}

func TestBadSpec(t *testing.T) {
	_, err := compositor.NewCompositor(compositor.Spec{Width: 0, Height: 10}, packARGB)
	test.ExpectFailure(t, err)

	_, err = compositor.NewCompositor(compositor.Spec{Width: 10, Height: 10}, nil)
	test.ExpectFailure(t, err)

	_, err = compositor.NewCompositor(compositor.Spec{Width: 10, Height: 10, WastageFactor: -1}, packARGB)
	test.ExpectFailure(t, err)
}

func TestTwoSprites(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 20, Height: 20})

	sprites := []sprite.Sprite{
		{Position: geometry.Rectangle{X: 0, Y: 0, W: 10, H: 10}, Layer: 0, Sample: solid(255, 0, 0)},
		{Position: geometry.Rectangle{X: 5, Y: 5, W: 10, H: 10}, Layer: 1, Sample: solid(0, 255, 0)},
	}

	pitch := cmp.Width() * 4
	fb := make([]byte, cmp.Height()*pitch)
	cmp.Render(sprites, fb, pitch)

	// where both sprites overlap, the higher layer wins
	test.ExpectEquality(t, pixelAt(fb, pitch, 7, 7), packARGB(0, 255, 0))

	// where only the lower sprite covers
	test.ExpectEquality(t, pixelAt(fb, pitch, 2, 2), packARGB(255, 0, 0))

	// where neither covers: background black
	test.ExpectEquality(t, pixelAt(fb, pitch, 15, 15), packARGB(0, 0, 0))
}

func TestLayerOverInsertionOrder(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 20, Height: 20})

	// the higher layer appears first in the sprite list. it must still paint
	// on top
	sprites := []sprite.Sprite{
		{Position: geometry.Rectangle{W: 20, H: 20}, Layer: 9, Sample: solid(0, 0, 255)},
		{Position: geometry.Rectangle{W: 20, H: 20}, Layer: 1, Sample: solid(255, 0, 0)},
	}

	pitch := cmp.Width() * 4
	fb := make([]byte, cmp.Height()*pitch)
	cmp.Render(sprites, fb, pitch)

	test.ExpectEquality(t, pixelAt(fb, pitch, 10, 10), packARGB(0, 0, 255))
}

func TestFullyTransparentSprite(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 20, Height: 20})

	sprites := []sprite.Sprite{
		{Position: geometry.Rectangle{X: 2, Y: 2, W: 10, H: 10}, Layer: 0,
			Sample: func(x, y int) sprite.Pixel { return sprite.Transparent }},
	}

	pitch := cmp.Width() * 4
	fb := make([]byte, cmp.Height()*pitch)
	cmp.Render(sprites, fb, pitch)

	for y := 0; y < cmp.Height(); y++ {
		for x := 0; x < cmp.Width(); x++ {
			test.ExpectEquality(t, pixelAt(fb, pitch, x, y), packARGB(0, 0, 0), x, y)
		}
	}
}

func TestTransparencyFallsThrough(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 20, Height: 20})

	// the top sprite is a checker: where it is transparent, the sprite
	// below shows through
	sprites := []sprite.Sprite{
		{Position: geometry.Rectangle{W: 20, H: 20}, Layer: 0, Sample: solid(255, 0, 0)},
		{Position: geometry.Rectangle{W: 20, H: 20}, Layer: 1,
			Sample: func(x, y int) sprite.Pixel {
				if (x+y)%2 == 0 {
					return sprite.Opaque(0, 255, 0)
				}
				return sprite.Transparent
			}},
	}

	pitch := cmp.Width() * 4
	fb := make([]byte, cmp.Height()*pitch)
	cmp.Render(sprites, fb, pitch)

	test.ExpectEquality(t, pixelAt(fb, pitch, 4, 4), packARGB(0, 255, 0))
	test.ExpectEquality(t, pixelAt(fb, pitch, 4, 5), packARGB(255, 0, 0))
}

func TestClipping(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 20, Height: 20})

	// a sprite entirely outside the viewport must not be sampled at all
	sampled := false
	outside := sprite.Sprite{
		Position: geometry.Rectangle{X: 100, Y: 100, W: 10, H: 10}, Layer: 0,
		Sample: func(x, y int) sprite.Pixel {
			sampled = true
			return sprite.Opaque(255, 255, 255)
		},
	}

	// a sprite partially outside must only ever be sampled within its own
	// local pixel space
	partial := sprite.Sprite{
		Position: geometry.Rectangle{X: -5, Y: -5, W: 10, H: 10}, Layer: 1,
		Sample: func(x, y int) sprite.Pixel {
			if x < 0 || x >= 10 || y < 0 || y >= 10 {
				t.Errorf("sample at (%d, %d) is outside the sprite's local space", x, y)
			}
			return sprite.Opaque(0, 0, 255)
		},
	}

	pitch := cmp.Width() * 4
	fb := make([]byte, cmp.Height()*pitch)
	cmp.Render([]sprite.Sprite{outside, partial}, fb, pitch)

	test.ExpectFailure(t, sampled)
	test.ExpectEquality(t, pixelAt(fb, pitch, 0, 0), packARGB(0, 0, 255))
	test.ExpectEquality(t, pixelAt(fb, pitch, 4, 4), packARGB(0, 0, 255))
	test.ExpectEquality(t, pixelAt(fb, pitch, 5, 5), packARGB(0, 0, 0))
}

func TestFrameIsolation(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 64, Height: 48})
	sprites := randomSprites(400, 64, 48, 30)

	pitch := cmp.Width() * 4
	a := make([]byte, cmp.Height()*pitch)
	b := make([]byte, cmp.Height()*pitch)

	cmp.Render(sprites, a, pitch)
	cmp.Render(sprites, b, pitch)

	// no state may leak from one frame to the next
	test.ExpectSuccess(t, bytes.Equal(a, b))
}

func TestPitchPadding(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 10, Height: 10})

	// three padding bytes per row, pre-filled with a sentinel value
	pitch := cmp.Width()*4 + 3
	fb := make([]byte, cmp.Height()*pitch)
	for i := range fb {
		fb[i] = 0xee
	}

	sprites := []sprite.Sprite{
		{Position: geometry.Rectangle{W: 10, H: 10}, Layer: 0, Sample: solid(1, 2, 3)},
	}
	cmp.Render(sprites, fb, pitch)

	for y := 0; y < cmp.Height(); y++ {
		test.ExpectEquality(t, pixelAt(fb, pitch, 0, y), packARGB(1, 2, 3))

		// padding bytes are untouched
		for i := 0; i < 3; i++ {
			test.ExpectEquality(t, fb[y*pitch+cmp.Width()*4+i], byte(0xee))
		}
	}
}

func TestUndersizedBufferPanics(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 10, Height: 10})

	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()
	cmp.Render(nil, make([]byte, 10), 40)
}

func TestUndersizedPitchPanics(t *testing.T) {
	cmp := newTestCompositor(t, compositor.Spec{Width: 10, Height: 10})

	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()
	cmp.Render(nil, make([]byte, 10*40), 39)
}

// randomSprites generates a deterministic sprite set. layers are unique so
// that the expected output is fully defined.
func randomSprites(n, width, height, maxSize int) []sprite.Sprite {
	gen := rand.New(rand.NewSource(17))

	layers := gen.Perm(n)
	sprites := make([]sprite.Sprite, 0, n)
	for i := 0; i < n; i++ {
		w := gen.Intn(maxSize) + 1
		h := gen.Intn(maxSize) + 1
		x := gen.Intn(width+maxSize) - maxSize/2
		y := gen.Intn(height+maxSize) - maxSize/2

		r := uint8(gen.Intn(256))
		g := uint8(gen.Intn(256))
		b := uint8(gen.Intn(256))

		var sample sprite.Sampler
		if i%3 == 0 {
			// checker sprite with transparent holes
			sample = func(x, y int) sprite.Pixel {
				if (x+y)%2 == 0 {
					return sprite.Transparent
				}
				return sprite.Opaque(r, g, b)
			}
		} else {
			sample = solid(r, g, b)
		}

		sprites = append(sprites, sprite.Sprite{
			Position: geometry.Rectangle{X: x, Y: y, W: w, H: h},
			Layer:    uint32(layers[i]),
			Sample:   sample,
		})
	}
	return sprites
}

// referenceRender resolves every pixel by brute force: the highest-layer
// sprite covering the pixel with an opaque sample wins.
func referenceRender(sprites []sprite.Sprite, width, height, pitch int, fb []byte) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var best *sprite.Sprite
			var bestPix sprite.Pixel

			p := geometry.Rectangle{X: x, Y: y, W: 1, H: 1}
			for i := range sprites {
				spr := &sprites[i]
				if !spr.Position.Intersects(p) {
					continue
				}
				if best != nil && spr.Layer < best.Layer {
					continue
				}
				pix := spr.Sample(x-spr.Position.X, y-spr.Position.Y)
				if !pix.Transparent {
					best = spr
					bestPix = pix
				}
			}

			packed := packARGB(0, 0, 0)
			if best != nil {
				packed = packARGB(bestPix.R, bestPix.G, bestPix.B)
			}

			i := y*pitch + x*4
			fb[i] = byte(packed)
			fb[i+1] = byte(packed >> 8)
			fb[i+2] = byte(packed >> 16)
			fb[i+3] = byte(packed >> 24)
		}
	}
}

func TestPainterCorrectness(t *testing.T) {
	const width = 80
	const height = 60

	cmp := newTestCompositor(t, compositor.Spec{Width: width, Height: height})
	sprites := randomSprites(500, width, height, 25)

	pitch := width * 4
	got := make([]byte, height*pitch)
	want := make([]byte, height*pitch)

	cmp.Render(sprites, got, pitch)
	referenceRender(sprites, width, height, pitch, want)

	test.ExpectSuccess(t, bytes.Equal(got, want))
}

func TestParallelDeterminism(t *testing.T) {
	const width = 320
	const height = 200

	sprites := randomSprites(5000, width, height, 60)

	pitch := width * 4
	single := make([]byte, height*pitch)
	many := make([]byte, height*pitch)

	one := newTestCompositor(t, compositor.Spec{Width: width, Height: height, Workers: 1})
	one.Render(sprites, single, pitch)

	eight := newTestCompositor(t, compositor.Spec{Width: width, Height: height, Workers: 8})
	eight.Render(sprites, many, pitch)

	// parallelism must not affect results
	test.ExpectSuccess(t, bytes.Equal(single, many))

	// nor may the block size
	blocky := make([]byte, height*pitch)
	odd := newTestCompositor(t, compositor.Spec{Width: width, Height: height, Workers: 8, BlockHeight: 7})
	odd.Render(sprites, blocky, pitch)
	test.ExpectSuccess(t, bytes.Equal(single, blocky))
}

func BenchmarkRender(b *testing.B) {
	const width = 640
	const height = 400

	cmp, err := compositor.NewCompositor(compositor.Spec{Width: width, Height: height}, packARGB)
	if err != nil {
		b.Fatal(err)
	}

	sprites := randomSprites(2000, width, height, 80)
	pitch := width * 4
	fb := make([]byte, height*pitch)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmp.Render(sprites, fb, pitch)
	}
}
