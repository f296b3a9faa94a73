// Package patterns holds a catalog of well-known Life patterns and stamps them
// onto grids.
package patterns

import (
	"strings"

	"github.com/sheikhrachel/go-gol/model"
)

// Offset is a cell position relative to a pattern's placement point
type Offset struct {
	DX, DY int
}

// Pattern is a named set of live cells
type Pattern struct {
	Name  string
	Cells []Offset
}

var catalog = []Pattern{
	{Name: "Glider", Cells: []Offset{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}},
	{Name: "Blinker", Cells: []Offset{{-1, 0}, {0, 0}, {1, 0}}},
	{Name: "Block", Cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{Name: "Beacon", Cells: []Offset{{-2, -2}, {-1, -2}, {-2, -1}, {1, 0}, {0, 1}, {1, 1}}},
	{Name: "Toad", Cells: []Offset{{-1, 0}, {0, 0}, {1, 0}, {-2, 1}, {-1, 1}, {0, 1}}},
	{Name: "LWSS", Cells: []Offset{
		{-1, -2}, {2, -2},
		{-2, -1},
		{-2, 0}, {2, 0},
		{-2, 1}, {-1, 1}, {0, 1}, {1, 1},
	}},
	{Name: "R-pentomino", Cells: []Offset{{0, -1}, {1, -1}, {-1, 0}, {0, 0}, {0, 1}}},
	{Name: "Diehard", Cells: []Offset{{2, -1}, {-4, 0}, {-3, 0}, {-3, 1}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "Acorn", Cells: []Offset{{-2, -1}, {0, 0}, {-3, 1}, {-2, 1}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "Pulsar", Cells: pulsar()},
	{Name: "Gosper glider gun", Cells: gosperGun()},
}

// All returns the catalog in display order
func All() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the catalog's pattern names in display order
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a pattern by case-insensitive name
func Lookup(name string) (Pattern, bool) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Place stamps p's live cells onto g around (cx, cy). Cells that land off the
// grid are dropped by the grid itself.
func Place(g *model.Grid, p Pattern, cx, cy int) {
	for _, o := range p.Cells {
		g.Set(cx+o.DX, cy+o.DY, model.Alive)
	}
}

// PlaceCentered stamps p at the middle of g
func PlaceCentered(g *model.Grid, p Pattern) {
	Place(g, p, g.Width()/2, g.Height()/2)
}

// pulsar builds the period-3 pulsar from one quadrant mirrored four ways
func pulsar() []Offset {
	quadrant := []Offset{
		{2, 1}, {3, 1}, {4, 1},
		{1, 2}, {1, 3}, {1, 4},
		{6, 2}, {6, 3}, {6, 4},
		{2, 6}, {3, 6}, {4, 6},
	}
	cells := make([]Offset, 0, len(quadrant)*4)
	for _, sx := range []int{1, -1} {
		for _, sy := range []int{1, -1} {
			for _, o := range quadrant {
				cells = append(cells, Offset{o.DX * sx, o.DY * sy})
			}
		}
	}
	return cells
}

func gosperGun() []Offset {
	rows := []string{
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	}
	return fromRows(rows, -18, -4)
}

// fromRows converts a plaintext drawing into offsets shifted by (ox, oy)
func fromRows(rows []string, ox, oy int) []Offset {
	var cells []Offset
	for y, row := range rows {
		for x, ch := range row {
			if ch == 'O' {
				cells = append(cells, Offset{x + ox, y + oy})
			}
		}
	}
	return cells
}
