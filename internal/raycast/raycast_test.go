package raycast

import (
	"math"
	"testing"

	"ledray/internal/world"
)

func openRoom(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.ParseGrid([]string{
		"####",
		"#..#",
		"#..#",
		"####",
	})
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestCastStraightAheadAnalyticDistance(t *testing.T) {
	g := openRoom(t)
	c := New(100)
	pose := world.Pose{X: 1.5, Y: 1.5, Angle: 0}

	// Empty cells span x in [1,3); the wall column starts at x=3.
	hit := c.Cast(g, pose, 0)
	if !hit.Wall {
		t.Fatal("expected a wall hit")
	}
	if math.Abs(hit.Dist-1.5) > 1e-9 {
		t.Fatalf("dist = %v, want 1.5", hit.Dist)
	}
	if hit.Side != SideX {
		t.Fatalf("side = %v, want SideX", hit.Side)
	}
}

func TestCastAxisParallelRays(t *testing.T) {
	g := openRoom(t)
	c := New(100)
	pose := world.Pose{X: 1.5, Y: 1.5, Angle: 0}

	cases := []struct {
		angle float64
		dist  float64
		side  Side
	}{
		{0, 1.5, SideX},
		{math.Pi / 2, 1.5, SideY},
		{math.Pi, 0.5, SideX},
		{3 * math.Pi / 2, 0.5, SideY},
	}
	for _, tc := range cases {
		hit := c.Cast(g, pose, tc.angle)
		if !hit.Wall {
			t.Errorf("angle %.2f: expected a wall hit", tc.angle)
			continue
		}
		if math.Abs(hit.Dist-tc.dist) > 1e-9 {
			t.Errorf("angle %.2f: dist = %v, want %v", tc.angle, hit.Dist, tc.dist)
		}
		if hit.Side != tc.side {
			t.Errorf("angle %.2f: side = %v, want %v", tc.angle, hit.Side, tc.side)
		}
	}
}

func TestCastFromGridLinePose(t *testing.T) {
	g := openRoom(t)
	c := New(100)
	// Pose exactly on a cell boundary exercises the 0*Inf guard.
	pose := world.Pose{X: 2.0, Y: 2.0, Angle: 0}
	hit := c.Cast(g, pose, 0)
	if !hit.Wall {
		t.Fatal("expected a wall hit from a grid-line pose")
	}
	if hit.Dist <= 0 || math.IsNaN(hit.Dist) {
		t.Fatalf("dist = %v, want a positive finite value", hit.Dist)
	}
}

func TestCastAllColumnCountAndPositivity(t *testing.T) {
	g := openRoom(t)
	c := New(100)
	const width = 320

	for _, angle := range []float64{0, 0.3, 1.1, math.Pi, -2.4} {
		pose := world.Pose{X: 1.5, Y: 2.49, Angle: angle}
		hits := c.CastAll(g, pose, make([]Hit, width))
		if len(hits) != width {
			t.Fatalf("angle %.2f: got %d hits, want %d", angle, len(hits), width)
		}
		for i, h := range hits {
			if h.Wall && h.Dist <= 0 {
				t.Fatalf("angle %.2f column %d: wall hit with dist %v", angle, i, h.Dist)
			}
			if h.Wall && (h.U < 0 || h.U >= 1) {
				t.Fatalf("angle %.2f column %d: U = %v outside [0,1)", angle, i, h.U)
			}
		}
	}
}

func TestCastAllFlatWallStaysFlat(t *testing.T) {
	g := openRoom(t)
	c := New(100)
	// Facing the wall plane at x=3 head on. With perpendicular distances
	// every column that hits that plane reports the same 1.5, so the wall
	// renders flat; euclidean distances would bow it outward.
	pose := world.Pose{X: 1.5, Y: 1.5, Angle: 0}
	hits := c.CastAll(g, pose, make([]Hit, 64))
	for i, h := range hits {
		offset := c.FOV*(float64(i)+0.5)/64 - c.FOV/2
		if math.Abs(offset) > 0.3 {
			// Steep columns clip the top/bottom wall rows first.
			continue
		}
		if !h.Wall || h.Side != SideX {
			t.Fatalf("column %d: expected a SideX wall hit, got %+v", i, h)
		}
		if math.Abs(h.Dist-1.5) > 1e-9 {
			t.Fatalf("column %d: perpendicular dist = %v, want 1.5", i, h.Dist)
		}
	}
}

func TestCastDeterministicForStaticPose(t *testing.T) {
	g := openRoom(t)
	c := New(100)
	pose := world.Pose{X: 1.25, Y: 1.75, Angle: 0.7}

	first := c.CastAll(g, pose, make([]Hit, 64))
	second := c.CastAll(g, pose, make([]Hit, 64))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("column %d differs between identical casts: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCastRespectsMaxDist(t *testing.T) {
	// Large open grid with no interior walls; only the implicit border is
	// solid, well beyond MaxDist.
	g := world.NewGrid(64, 64)
	c := New(4)
	pose := world.Pose{X: 32.5, Y: 32.5, Angle: 0.35}
	hit := c.Cast(g, pose, pose.Angle)
	if hit.Wall {
		t.Fatalf("expected no hit within MaxDist, got dist %v", hit.Dist)
	}
}
