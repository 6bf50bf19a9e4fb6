package render

import (
	"image"
	"image/color"
	"math"
)

const (
	flashFrames    = 5
	cooldownFrames = 10
	impactTTL      = 10
)

// Impact marks a recent bullet hit on the wall at a screen column.
type Impact struct {
	Col int
	TTL int
}

// EffectState holds the presentational weapon state: muzzle flash, shot
// cooldown, and wall impacts. It never affects collision or raycasting.
type EffectState struct {
	FlashTimer int
	Cooldown   int
	Impacts    []Impact
}

// Firing reports whether the muzzle flash is within its effect window.
func (s *EffectState) Firing() bool { return s.FlashTimer > 0 }

// TriggerShot starts a shot if the cooldown allows it. When the shot hit a
// wall, an impact marker is queued at the given column. Returns whether the
// shot fired.
func (s *EffectState) TriggerShot(col int, hitWall bool) bool {
	if s.Cooldown > 0 {
		return false
	}
	s.FlashTimer = flashFrames
	s.Cooldown = cooldownFrames
	if hitWall {
		s.Impacts = append(s.Impacts, Impact{Col: col, TTL: impactTTL})
	}
	return true
}

// Decay advances all timers by one tick and discards expired impacts.
func (s *EffectState) Decay() {
	if s.FlashTimer > 0 {
		s.FlashTimer--
	}
	if s.Cooldown > 0 {
		s.Cooldown--
	}
	kept := s.Impacts[:0]
	for _, imp := range s.Impacts {
		imp.TTL--
		if imp.TTL > 0 {
			kept = append(kept, imp)
		}
	}
	s.Impacts = kept
}

// recoil returns the vertical kick applied to the weapon sprite while the
// muzzle flash plays.
func (s *EffectState) recoil() int {
	switch {
	case s.FlashTimer > 3:
		return 8
	case s.FlashTimer > 0:
		return 3
	default:
		return 0
	}
}

// WeaponSprites holds the prebuilt pistol and muzzle-flash sprites.
// Transparent pixels (alpha 0) are skipped when overlaying.
type WeaponSprites struct {
	pistol     *image.RGBA
	flashBig   *image.RGBA
	flashSmall *image.RGBA
}

// NewWeaponSprites builds the sprites once.
func NewWeaponSprites() *WeaponSprites {
	return &WeaponSprites{
		pistol:     buildPistol(),
		flashBig:   buildFlash(50, true),
		flashSmall: buildFlash(30, false),
	}
}

// weaponBaseOffset is how far above the bottom edge the sprite anchor sits.
const weaponBaseOffset = 80

// Draw overlays the weapon at the bottom center of the frame, recoiled while
// firing, plus the muzzle flash during its effect window. Sprites overhang
// the frame edges on small render sizes and are clipped silently.
func (w *WeaponSprites) Draw(frame *Frame, fx *EffectState) {
	cx := frame.W / 2
	weaponY := frame.H - weaponBaseOffset + fx.recoil()

	drawSprite(frame, w.pistol, cx-w.pistol.Rect.Dx()/2, weaponY)

	if !fx.Firing() {
		return
	}
	flash := w.flashSmall
	if fx.FlashTimer > 3 {
		flash = w.flashBig
	}
	// Flash is centered on the muzzle, just above the barrel.
	drawSprite(frame, flash, cx-flash.Rect.Dx()/2, weaponY+10-flash.Rect.Dy()/2)
}

// drawSprite copies non-transparent sprite pixels onto the frame at (ox, oy),
// clipping at all four edges.
func drawSprite(frame *Frame, sprite *image.RGBA, ox, oy int) {
	b := sprite.Rect
	for sy := 0; sy < b.Dy(); sy++ {
		for sx := 0; sx < b.Dx(); sx++ {
			i := sprite.PixOffset(b.Min.X+sx, b.Min.Y+sy)
			if sprite.Pix[i+3] == 0 {
				continue
			}
			frame.set(ox+sx, oy+sy, color.RGBA{
				R: sprite.Pix[i+0],
				G: sprite.Pix[i+1],
				B: sprite.Pix[i+2],
				A: 255,
			})
		}
	}
}

// buildPistol assembles the pixel-art pistol sprite. Coordinates are local
// to a 48x104 canvas whose horizontal center is the muzzle axis.
func buildPistol() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 48, 104))
	cx := 24

	gunDark := color.RGBA{60, 60, 70, 255}
	gunLight := color.RGBA{140, 140, 150, 255}
	gunBarrel := color.RGBA{50, 50, 60, 255}
	handle := color.RGBA{100, 70, 50, 255}
	gripLine := color.RGBA{80, 50, 30, 255}
	sight := color.RGBA{255, 255, 100, 255}

	fillRect(img, cx-16, 10, 32, 20, gunBarrel) // barrel
	fillRect(img, cx-24, 25, 48, 18, gunLight)  // slide
	fillRect(img, cx-20, 28, 40, 12, gunDark)
	fillRect(img, cx-20, 43, 40, 24, gunLight) // frame
	fillRect(img, cx-8, 55, 16, 10, gunDark)   // trigger guard
	fillRect(img, cx-16, 65, 24, 35, handle)   // grip
	for i := 0; i < 4; i++ {
		fillRect(img, cx-12, 70+i*6, 20, 2, gripLine)
	}
	fillRect(img, cx-4, 20, 8, 8, sight) // front sight

	return img
}

// buildFlash assembles a layered muzzle-flash sprite with the given core
// radius. The big variant adds radial rays.
func buildFlash(size int, rays bool) *image.RGBA {
	margin := size + 22
	if rays {
		margin = 62
	}
	dim := margin*2 + 1
	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	c := margin

	spriteCircle(img, c, c, size+20, color.RGBA{255, 80, 0, 255})
	spriteCircle(img, c, c, size+10, color.RGBA{255, 200, 50, 255})
	spriteCircle(img, c, c, size, color.RGBA{255, 255, 255, 255})

	if rays {
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 4
			dx := math.Cos(angle)
			dy := math.Sin(angle)
			for step := 0; step <= 60; step++ {
				spriteCircle(img, c+int(dx*float64(step)), c+int(dy*float64(step)), 2, color.RGBA{255, 255, 200, 255})
			}
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			setPixel(img, xx, yy, col)
		}
	}
}

func spriteCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, col)
			}
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(img.Rect) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i+0] = col.R
	img.Pix[i+1] = col.G
	img.Pix[i+2] = col.B
	img.Pix[i+3] = col.A
}
