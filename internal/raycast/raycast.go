// Package raycast computes per-column wall intersections against a tile map
// using incremental grid traversal (DDA).
package raycast

import (
	"math"

	"ledray/internal/world"
)

// Side identifies which grid axis a ray crossed when it entered the wall
// cell. Walls facing north/south and east/west get different tones so static
// geometry reads as 3D.
type Side uint8

const (
	SideX Side = iota // crossed a vertical grid line (east/west face)
	SideY             // crossed a horizontal grid line (north/south face)
)

// Hit is the result of casting one ray. Cast fills Dist with the distance
// along the ray; CastAll converts it to the perpendicular distance used for
// projection. U is the fractional position along the wall face in [0, 1).
// Wall is false when the ray ran past MaxDist without entering a wall cell.
type Hit struct {
	Dist float64
	Side Side
	U    float64
	Wall bool
}

// Caster holds the view parameters shared by every column in a frame.
type Caster struct {
	FOV     float64
	MaxDist float64
}

// New returns a Caster with a 60 degree field of view and the given view
// distance limit.
func New(maxDist float64) *Caster {
	if maxDist <= 0 {
		maxDist = 100
	}
	return &Caster{FOV: math.Pi / 3, MaxDist: maxDist}
}

// CastAll casts one ray per output column into hits, whose length sets the
// column count. Distances are corrected to the perpendicular distance so
// that flat walls render flat instead of bowing outward (fisheye). It
// returns hits for convenience.
func (c *Caster) CastAll(g *world.Grid, pose world.Pose, hits []Hit) []Hit {
	width := len(hits)
	for i := range hits {
		offset := c.FOV*(float64(i)+0.5)/float64(width) - c.FOV/2
		hit := c.Cast(g, pose, pose.Angle+offset)
		if hit.Wall {
			hit.Dist *= math.Cos(offset)
		}
		hits[i] = hit
	}
	return hits
}

// Cast steps a single ray from the pose through the grid until it enters a
// wall cell or exceeds MaxDist.
func (c *Caster) Cast(g *world.Grid, pose world.Pose, angle float64) Hit {
	dirX := math.Cos(angle)
	dirY := math.Sin(angle)

	mapX := int(math.Floor(pose.X))
	mapY := int(math.Floor(pose.Y))
	fracX := pose.X - float64(mapX)
	fracY := pose.Y - float64(mapY)

	// Distance the ray travels to cross one grid line on each axis. Rays
	// parallel to an axis never cross it, so the step cost is effectively
	// infinite rather than a division by zero.
	deltaX := math.Inf(1)
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	deltaY := math.Inf(1)
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = fracX * deltaX
	} else {
		stepX = 1
		sideX = (1 - fracX) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = fracY * deltaY
	} else {
		stepY = 1
		sideY = (1 - fracY) * deltaY
	}
	// A pose exactly on a grid line makes frac zero; 0*Inf is NaN, so pin
	// the axis cost back to infinity for axis-parallel rays.
	if math.IsNaN(sideX) {
		sideX = math.Inf(1)
	}
	if math.IsNaN(sideY) {
		sideY = math.Inf(1)
	}

	side := SideX
	for {
		if sideX < sideY {
			if sideX > c.MaxDist {
				return Hit{}
			}
			sideX += deltaX
			mapX += stepX
			side = SideX
		} else {
			if sideY > c.MaxDist {
				return Hit{}
			}
			sideY += deltaY
			mapY += stepY
			side = SideY
		}
		if g.Wall(mapX, mapY) {
			break
		}
	}

	// Distance along the ray to the crossed grid line, from the plane
	// crossing rather than accumulated steps so it is exact.
	var dist, u float64
	if side == SideX {
		dist = (float64(mapX) - pose.X + (1-float64(stepX))/2) / dirX
		u = pose.Y + dist*dirY
	} else {
		dist = (float64(mapY) - pose.Y + (1-float64(stepY))/2) / dirY
		u = pose.X + dist*dirX
	}
	u -= math.Floor(u)
	if dist <= 0 {
		// Pose on a cell boundary can yield a zero-length first step.
		dist = 1e-6
	}
	return Hit{Dist: dist, Side: side, U: u, Wall: true}
}
