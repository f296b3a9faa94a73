package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
)

// RandomDensity is the probability that Randomize makes any given cell Alive
const RandomDensity = 0.3

// Reader is the read side of a grid, which is all the rule engine needs
type Reader interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	Get(x, y int) Cell
}

// Grid is a fixed-size matrix of cells surrounded by an implicit field of Dead
// cells. Reads outside the grid return Dead and writes outside it are dropped.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// Bounds is an inclusive rectangle of grid coordinates
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// NewGrid creates a new all-Dead grid with the specified dimensions.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a stored cell. Both Get/Set and
// neighbor counting go through this predicate so they agree on what off-grid means.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell, Dead for any off-grid coordinate
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cells[y][x]
}

// Set stores a cell state. Off-grid coordinates are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y][x] = c
	}
}

// Reset resizes the grid to new dimensions, reusing row storage where it can
func (g *Grid) Reset(width, height int) {
	width, height = max(0, width), max(0, height)
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear sets every cell to Dead
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Randomize independently makes each cell Alive with probability RandomDensity
func (g *Grid) Randomize() {
	g.fill(rand.Float64)
}

// RandomizeFrom is Randomize drawing from r, for reproducible boards
func (g *Grid) RandomizeFrom(r *rand.Rand) {
	g.fill(r.Float64)
}

func (g *Grid) fill(draw func() float64) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = CellOf(draw() < RandomDensity)
		}
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.width, g.height)
	for y := range g.height {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// Resized returns a new grid of the given size holding the region that
// overlaps this one. Cells outside the overlap start Dead.
func (g *Grid) Resized(width, height int) *Grid {
	next := NewGrid(width, height)
	for y := range min(next.height, g.height) {
		copy(next.cells[y], g.cells[y][:min(next.width, g.width)])
	}
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].IsAlive() {
				count++
			}
		}
	}
	return
}

// ActiveBounds returns the bounding box of living cells; ok is false when
// nothing is alive.
func (g *Grid) ActiveBounds() (b Bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x].IsAlive() {
				continue
			}
			if !ok {
				b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
				ok = true
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	return b, ok
}

// BoundingBoxSize returns the area of the active region
func (g *Grid) BoundingBoxSize() int {
	b, ok := g.ActiveBounds()
	if !ok {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Hash returns an MD5 digest of the dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	row := make([]byte, g.width)
	for y := range g.height {
		for x, c := range g.cells[y] {
			row[x] = byte(c)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// NewRand returns a deterministic PCG-backed source for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
