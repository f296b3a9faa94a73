package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/sim"
	"github.com/sheikhrachel/go-gol/utils"
)

// gameState is the per-frame status derived from the current grid
type gameState struct {
	alive    int
	density  float64
	stagnant bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *slog.Logger) (
	*sim.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	game, err := sim.New(config, sim.WithLogger(logger))
	if err != nil {
		return nil, nil, nil, err
	}
	return game, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayGameInfo logs the initial game information
func displayGameInfo(logger *slog.Logger, config utils.Config, game *sim.Simulation) {
	logger.Info("starting simulation",
		"width", config.Width,
		"height", config.Height,
		"updates_per_second", config.UpdatesPerSecond,
		"memory_pool", config.UseMemoryPool,
		"bounded", config.UseBoundedGrid,
		"seed", config.Seed,
		"initial_alive", game.AliveCells(),
	)
}

// updateGameState updates the performance stats and returns status information
func updateGameState(game *sim.Simulation, generation uint64, lastFrameTime time.Time, stats *utils.Stats) gameState {
	var (
		grid  = game.Grid()
		alive = game.AliveCells()
		area  = grid.Width() * grid.Height()
		state = gameState{alive: alive, stagnant: game.IsStagnant()}
	)
	if area > 0 {
		state.density = float64(alive) / float64(area)
	}

	stats.Update(generation, alive, time.Since(lastFrameTime))
	return state
}

// displayFrame clears the terminal and draws the grid plus status line
func displayFrame(w io.Writer, renderer *model.TerminalRenderer, game *sim.Simulation) error {
	if err := renderer.Clear(w); err != nil {
		return err
	}
	if err := renderer.Display(w, game.Grid()); err != nil {
		return err
	}
	return renderer.RenderStatus(w, game.Generation(), game.AliveCells(), game.Paused())
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// logFinalStats summarizes the run on shutdown
func logFinalStats(logger *slog.Logger, stats *utils.Stats) {
	summary := stats.Summary()
	logger.Info("shutting down",
		"generations", summary.Generations,
		"runtime", time.Since(stats.StartTime).Round(time.Millisecond),
		"gen_per_sec", stats.GenerationsPerSecond,
		"population_mean", summary.Mean,
		"population_stddev", summary.StdDev,
		"population_peak", summary.Peak,
	)
}
