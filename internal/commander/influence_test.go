package commander

import "testing"

func TestInfluenceGrid_SplatRadiusZero_HitsOnlyContainingCell(t *testing.T) {
	g := NewInfluenceGrid(320, 320, 32)

	g.Splat(100, 100, 0, 5.0)

	if got := g.Sample(100, 100); got != 5.0 {
		t.Fatalf("expected containing cell to gain exactly 5.0, got %v", got)
	}
	// Neighbours must be untouched.
	for _, p := range [][2]float64{{60, 100}, {140, 100}, {100, 60}, {100, 140}} {
		if got := g.Sample(p[0], p[1]); got != 0 {
			t.Fatalf("expected neighbour at (%v,%v) to stay zero, got %v", p[0], p[1], got)
		}
	}
}

func TestInfluenceGrid_SplatFalloffMonotonic(t *testing.T) {
	g := NewInfluenceGrid(640, 640, 32)

	g.Splat(320, 320, 4, 10.0)

	center := g.Sample(320, 320)
	if center <= 0 {
		t.Fatalf("expected positive center value, got %v", center)
	}
	// The containing cell's increase must be >= every other affected cell's.
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if v := g.At(col, row); v > center {
				t.Fatalf("cell (%d,%d)=%v exceeds center value %v", col, row, v, center)
			}
		}
	}
	// And strictly decreasing with Chebyshev distance along an axis.
	prev := center
	for d := 1; d <= 4; d++ {
		v := g.Sample(320+float64(d)*32, 320)
		if v >= prev {
			t.Fatalf("falloff not monotonic at distance %d: %v >= %v", d, v, prev)
		}
		prev = v
	}
}

func TestInfluenceGrid_SplatOutOfBounds_SilentlySkips(t *testing.T) {
	g := NewInfluenceGrid(320, 320, 32)

	// Center outside the world: in-bounds portion still receives influence.
	g.Splat(-10, 100, 2, 6.0)

	if got := g.Sample(10, 100); got <= 0 {
		t.Fatalf("expected in-bounds spill from out-of-bounds splat, got %v", got)
	}
}

func TestInfluenceGrid_SampleOutOfBounds_ReturnsZero(t *testing.T) {
	g := NewInfluenceGrid(320, 320, 32)
	g.Splat(100, 100, 3, 50)

	for _, p := range [][2]float64{{-1, 100}, {100, -1}, {321, 100}, {100, 5000}} {
		if got := g.Sample(p[0], p[1]); got != 0 {
			t.Fatalf("expected 0 for out-of-bounds sample at (%v,%v), got %v", p[0], p[1], got)
		}
	}
}

func TestInfluenceGrid_ClearZeroesEverything(t *testing.T) {
	g := NewInfluenceGrid(320, 320, 32)
	g.Splat(100, 100, 3, 50)
	g.Splat(250, 250, 2, 30)

	g.Clear()

	if total := g.Total(); total != 0 {
		t.Fatalf("expected cleared grid total of 0, got %v", total)
	}
}

func TestInfluenceGrid_DecayFloorsTinyValues(t *testing.T) {
	g := NewInfluenceGrid(320, 320, 32)
	g.Splat(100, 100, 0, 1e-3)

	for i := 0; i < 20; i++ {
		g.Decay(0.5)
	}

	if got := g.Sample(100, 100); got != 0 {
		t.Fatalf("expected decayed value to floor at exactly 0, got %v", got)
	}
}

func TestInfluenceGrid_SplatJustPastEdge_DepositsNothing(t *testing.T) {
	g := NewInfluenceGrid(320, 320, 32)

	// A point fractionally past the left/top edge belongs to cell (-1,-1),
	// not cell (0,0); a zero-radius splat there must land nowhere.
	g.Splat(-1, -1, 0, 5)

	if total := g.Total(); total != 0 {
		t.Fatalf("expected no influence from off-world splat, got total %v", total)
	}
}
