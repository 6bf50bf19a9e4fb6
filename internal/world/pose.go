package world

import "math"

// Pose is the player's position and facing angle in world coordinates. One
// world unit equals one grid cell; the angle is in radians.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Rotate turns the pose by delta radians.
func (p *Pose) Rotate(delta float64) {
	p.Angle += delta
}

// Move advances the pose along its facing direction by dist world units.
// The candidate position is discarded when it lands in a wall cell, leaving
// the pose unchanged.
func (p *Pose) Move(g *Grid, dist float64) {
	p.tryStep(g, math.Cos(p.Angle)*dist, math.Sin(p.Angle)*dist)
}

// Strafe moves the pose perpendicular to its facing direction. Positive
// dist steps to the player's right.
func (p *Pose) Strafe(g *Grid, dist float64) {
	side := p.Angle + math.Pi/2
	p.tryStep(g, math.Cos(side)*dist, math.Sin(side)*dist)
}

func (p *Pose) tryStep(g *Grid, dx, dy float64) {
	nx := p.X + dx
	ny := p.Y + dy
	if g.Wall(int(math.Floor(nx)), int(math.Floor(ny))) {
		return
	}
	p.X = nx
	p.Y = ny
}

// Cell returns the grid cell the pose currently occupies.
func (p *Pose) Cell() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
