package rules

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/model"
)

/*
NextState applies Conway's Game of Life rules (B3/S23) to a single cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with
exactly 3, and every other cell is Dead in the next generation.
*/
func NextState(current model.Cell, neighbors int) model.Cell {
	switch {
	case current.IsAlive() && (neighbors == 2 || neighbors == 3):
		return model.Alive
	case !current.IsAlive() && neighbors == 3:
		return model.Alive
	default:
		return model.Dead
	}
}

// CountNeighbors counts the live cells in the Moore neighborhood of (x, y).
// Off-grid neighbors count as Dead, so edges and corners see fewer candidates.
func CountNeighbors(g model.Reader, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.Get(nx, ny).IsAlive() {
				count++
			}
		}
	}
	return count
}

// NextGeneration builds generation N+1 from g in a fresh grid. g is only read,
// so iteration order never affects the result.
func NextGeneration(g model.Reader) *model.Grid {
	next := model.NewGrid(g.Width(), g.Height())
	stepRows(g, next, 0, g.Height())
	return next
}

// NextGenerationParallel calculates the next generation by splitting rows
// across workers. workers <= 0 means one per CPU. The source grid must not be
// mutated until this returns.
func NextGenerationParallel(ctx context.Context, g model.Reader, workers int, pool *model.GridPool) (*model.Grid, error) {
	next := model.Acquire(pool, g.Width(), g.Height())
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		height        = g.Height()
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			stepRows(g, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		model.GridToPool(next, pool)
		return nil, err
	}
	return next, nil
}

// NextGenerationBounded calculates the next generation only within the active
// region plus a one-cell margin. Everything further away stays Dead, which
// matches the full sweep because births need three live neighbors.
func NextGenerationBounded(g *model.Grid, pool *model.GridPool) *model.Grid {
	next := model.Acquire(pool, g.Width(), g.Height())

	b, ok := g.ActiveBounds()
	if !ok {
		return next
	}

	minX := max(0, b.MinX-1)
	maxX := min(g.Width()-1, b.MaxX+1)
	minY := max(0, b.MinY-1)
	maxY := min(g.Height()-1, b.MaxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.Set(x, y, NextState(g.Get(x, y), CountNeighbors(g, x, y)))
		}
	}
	return next
}

// stepRows writes rows [startRow, endRow) of the next generation into next.
// Workers own disjoint row bands of next, so no locking is needed.
func stepRows(g model.Reader, next *model.Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.Width() {
			next.Set(x, y, NextState(g.Get(x, y), CountNeighbors(g, x, y)))
		}
	}
}
