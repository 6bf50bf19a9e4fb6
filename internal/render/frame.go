// Package render turns raycast column hits into a full-resolution RGBA
// frame: wall slabs with distance shading, sky and floor fill, and the
// weapon overlay.
package render

import (
	"image"
	"image/color"

	"ledray/internal/raycast"
)

// Frame is the per-tick render target. The backing image is reused across
// ticks but every pixel is rewritten by Compositor.Render, so no state
// leaks between frames.
type Frame struct {
	W, H int
	Img  *image.RGBA
}

// NewFrame allocates a frame at the given render resolution.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Pix exposes the raw RGBA bytes in row-major order.
func (f *Frame) Pix() []byte { return f.Img.Pix }

func (f *Frame) set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	i := f.Img.PixOffset(x, y)
	f.Img.Pix[i+0] = c.R
	f.Img.Pix[i+1] = c.G
	f.Img.Pix[i+2] = c.B
	f.Img.Pix[i+3] = c.A
}

// Compositor converts column hits into frame pixels.
type Compositor struct {
	Sky   color.RGBA
	Floor color.RGBA

	// WallX and WallY are the two wall tones, picked by which grid axis
	// the ray crossed last.
	WallX color.RGBA
	WallY color.RGBA

	// ShadeFalloff is the distance at which wall shading reaches black.
	// Shading is linear: shade = 1 - dist/ShadeFalloff, clamped to [0,1].
	ShadeFalloff float64

	weapon *WeaponSprites
}

// NewCompositor returns a compositor with the stock palette.
func NewCompositor() *Compositor {
	return &Compositor{
		Sky:          color.RGBA{50, 50, 100, 255},
		Floor:        color.RGBA{100, 100, 100, 255},
		WallX:        color.RGBA{200, 50, 50, 255},
		WallY:        color.RGBA{150, 30, 30, 255},
		ShadeFalloff: 8,
		weapon:       NewWeaponSprites(),
	}
}

// Render draws the full frame: sky/floor background, one wall slab per
// column, bullet impacts, and the weapon overlay. hits must have length
// frame.W. Out-of-bounds writes are clipped, never performed.
func (c *Compositor) Render(frame *Frame, hits []raycast.Hit, fx *EffectState) {
	half := frame.H / 2
	for y := 0; y < half; y++ {
		for x := 0; x < frame.W; x++ {
			frame.set(x, y, c.Sky)
		}
	}
	for y := half; y < frame.H; y++ {
		for x := 0; x < frame.W; x++ {
			frame.set(x, y, c.Floor)
		}
	}

	for x := 0; x < frame.W && x < len(hits); x++ {
		hit := hits[x]
		if !hit.Wall {
			continue
		}
		top, height := c.slabSpan(frame.H, hit.Dist)
		col := c.shadeWall(hit)
		for y := top; y < top+height; y++ {
			frame.set(x, y, col)
		}
	}

	if fx != nil {
		c.drawImpacts(frame, hits, fx)
		c.weapon.Draw(frame, fx)
	}
}

// slabSpan returns the top row and height of the wall slab for a hit at the
// given perpendicular distance, clamped to the frame.
func (c *Compositor) slabSpan(frameH int, dist float64) (top, height int) {
	height = int(float64(frameH) / dist)
	if height > frameH {
		height = frameH
	}
	if height < 1 {
		height = 1
	}
	top = (frameH - height) / 2
	return top, height
}

func (c *Compositor) shadeWall(hit raycast.Hit) color.RGBA {
	base := c.WallX
	if hit.Side == raycast.SideY {
		base = c.WallY
	}
	shade := 1 - hit.Dist/c.ShadeFalloff
	if shade < 0 {
		shade = 0
	}
	if shade > 1 {
		shade = 1
	}
	return color.RGBA{
		R: uint8(float64(base.R) * shade),
		G: uint8(float64(base.G) * shade),
		B: uint8(float64(base.B) * shade),
		A: 255,
	}
}

// drawImpacts marks recent bullet hits on the wall at their column's
// projected center.
func (c *Compositor) drawImpacts(frame *Frame, hits []raycast.Hit, fx *EffectState) {
	for _, imp := range fx.Impacts {
		if imp.TTL <= 0 || imp.Col < 0 || imp.Col >= len(hits) {
			continue
		}
		hit := hits[imp.Col]
		if !hit.Wall {
			continue
		}
		top, height := c.slabSpan(frame.H, hit.Dist)
		radius := 5 * imp.TTL / impactTTL
		if radius < 2 {
			radius = 2
		}
		fillCircle(frame, imp.Col, top+height/2, radius, color.RGBA{255, 255, 0, 255})
	}
}

// fillCircle draws a filled circle, clipping at the frame edges.
func fillCircle(frame *Frame, cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				frame.set(cx+dx, cy+dy, col)
			}
		}
	}
}
