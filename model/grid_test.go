package model

import (
	"math"
	"testing"
)

func TestNewGridStartsDead(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	for y := range 3 {
		for x := range 4 {
			if g.Get(x, y) != Dead {
				t.Fatalf("cell (%d,%d) = %v, want Dead", x, y, g.Get(x, y))
			}
		}
	}
}

func TestNewGridDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"zero width", 0, 5, 0, 5},
		{"zero height", 5, 0, 5, 0},
		{"negative", -3, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height)
			if g.Width() != tt.wantW || g.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", g.Width(), g.Height(), tt.wantW, tt.wantH)
			}
			g.Set(0, 0, Alive)
			g.Randomize()
			g.Clear()
			if g.Get(0, 0) != Dead {
				t.Fatal("degenerate grid reported a live cell")
			}
			if n := g.CountLivingCells(); n != 0 {
				t.Fatalf("CountLivingCells = %d, want 0", n)
			}
		})
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Alive)
	before := g.Clone()

	coords := [][2]int{
		{-1, 0}, {0, -1}, {-1, -1}, {3, 0}, {0, 3}, {3, 3}, {5, 5},
		{math.MinInt, 0}, {0, math.MaxInt},
	}
	for _, c := range coords {
		if got := g.Get(c[0], c[1]); got != Dead {
			t.Errorf("Get(%d,%d) = %v, want Dead", c[0], c[1], got)
		}
		if g.InBounds(c[0], c[1]) {
			t.Errorf("InBounds(%d,%d) = true", c[0], c[1])
		}
		g.Set(c[0], c[1], Alive)
	}

	if !g.Equal(before) {
		t.Fatal("out-of-bounds Set changed the grid")
	}
}

func TestSetAndGetPersistValue(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Alive)
	g.Set(2, 0, Alive)

	if g.Get(1, 1) != Alive || g.Get(2, 0) != Alive {
		t.Fatal("Set value not returned by Get")
	}
	g.Set(1, 1, Dead)
	if g.Get(1, 1) != Dead {
		t.Fatal("Set did not overwrite prior value")
	}
}

func TestClearResetsCellsToDead(t *testing.T) {
	g := NewGrid(3, 3)
	for y := range g.Height() {
		for x := range g.Width() {
			if (x+y)%2 == 0 {
				g.Set(x, y, Alive)
			}
		}
	}

	g.Clear()

	for y := range g.Height() {
		for x := range g.Width() {
			if g.Get(x, y) != Dead {
				t.Fatalf("cell (%d,%d) alive after Clear", x, y)
			}
		}
	}
}

func TestRandomizeDensity(t *testing.T) {
	g := NewGrid(200, 200)
	g.RandomizeFrom(NewRand(42))

	frac := float64(g.CountLivingCells()) / float64(g.Width()*g.Height())
	if math.Abs(frac-RandomDensity) > 0.02 {
		t.Fatalf("live fraction = %.4f, want %.2f +/- 0.02", frac, RandomDensity)
	}

	g.Randomize()
	frac = float64(g.CountLivingCells()) / float64(g.Width()*g.Height())
	if math.Abs(frac-RandomDensity) > 0.02 {
		t.Fatalf("unseeded live fraction = %.4f, want %.2f +/- 0.02", frac, RandomDensity)
	}
}

func TestRandomizeFromIsReproducible(t *testing.T) {
	a, b := NewGrid(30, 20), NewGrid(30, 20)
	a.RandomizeFrom(NewRand(7))
	b.RandomizeFrom(NewRand(7))
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
}

func TestResizedKeepsOverlap(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, Alive)
	g.Set(3, 3, Alive)
	g.Set(1, 2, Alive)

	smaller := g.Resized(2, 3)
	if smaller.Width() != 2 || smaller.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", smaller.Width(), smaller.Height())
	}
	if smaller.Get(0, 0) != Alive || smaller.Get(1, 2) != Alive {
		t.Fatal("overlapping cells lost")
	}
	if smaller.CountLivingCells() != 2 {
		t.Fatalf("CountLivingCells = %d, want 2", smaller.CountLivingCells())
	}

	larger := g.Resized(6, 5)
	if larger.Get(3, 3) != Alive || larger.Get(5, 4) != Dead {
		t.Fatal("larger grid did not keep overlap with Dead padding")
	}
	if g.Get(3, 3) != Alive {
		t.Fatal("Resized mutated the source grid")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Alive)
	c := g.Clone()
	c.Set(1, 1, Dead)
	if g.Get(1, 1) != Alive {
		t.Fatal("mutating clone changed original")
	}
}

func TestActiveBounds(t *testing.T) {
	g := NewGrid(10, 10)
	if _, ok := g.ActiveBounds(); ok {
		t.Fatal("empty grid reported active bounds")
	}
	if g.BoundingBoxSize() != 0 {
		t.Fatal("empty grid bounding box should be 0")
	}

	g.Set(2, 3, Alive)
	g.Set(5, 7, Alive)
	b, ok := g.ActiveBounds()
	if !ok {
		t.Fatal("expected active bounds")
	}
	want := Bounds{MinX: 2, MaxX: 5, MinY: 3, MaxY: 7}
	if b != want {
		t.Fatalf("ActiveBounds = %+v, want %+v", b, want)
	}
	if got := g.BoundingBoxSize(); got != 20 {
		t.Fatalf("BoundingBoxSize = %d, want 20", got)
	}
}

func TestHash(t *testing.T) {
	a, b := NewGrid(5, 5), NewGrid(5, 5)
	if a.Hash() != b.Hash() {
		t.Fatal("identical grids hashed differently")
	}
	b.Set(2, 2, Alive)
	if a.Hash() == b.Hash() {
		t.Fatal("different grids hashed the same")
	}
	if NewGrid(2, 3).Hash() == NewGrid(3, 2).Hash() {
		t.Fatal("hash ignores dimensions")
	}
}

func TestGridPoolReturnsCleanGrids(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(4, 4)
	g.Set(1, 1, Alive)
	GridToPool(g, pool)

	again := pool.Get(6, 3)
	if again.Width() != 6 || again.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", again.Width(), again.Height())
	}
	if again.CountLivingCells() != 0 {
		t.Fatal("pooled grid was not cleared")
	}

	GridToPool(nil, pool)
	GridToPool(again, nil)
	if got := Acquire(nil, 2, 2); got.Width() != 2 || got.CountLivingCells() != 0 {
		t.Fatal("Acquire without pool should allocate a dead grid")
	}
}
