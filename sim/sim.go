// Package sim owns the running grid and the driver-level state around it:
// generation count, pause state, pacing, painting and stagnation tracking.
package sim

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/patterns"
	"github.com/sheikhrachel/go-gol/rules"
	"github.com/sheikhrachel/go-gol/utils"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Simulation holds the single owned grid and replaces it wholesale each step
type Simulation struct {
	config utils.Config
	grid   *model.Grid
	pool   *model.GridPool
	rng    *rand.Rand
	logger *slog.Logger

	generation uint64
	aliveCells int
	paused     bool
	lastStep   time.Time
	history    []string
}

// Option customizes a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for driver events
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// New builds a simulation from a validated config. The grid starts
// randomized, with the configured initial pattern stamped at its center.
func New(config utils.Config, opts ...Option) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid config")
	}

	s := &Simulation{
		config: config,
		grid:   model.NewGrid(config.Width, config.Height),
		logger: slog.Default(),
	}
	if config.Seed != 0 {
		s.rng = model.NewRand(config.Seed)
	}
	if config.UseMemoryPool {
		s.pool = model.NewGridPool()
	}
	for _, opt := range opts {
		opt(s)
	}

	s.randomizeGrid()
	if config.InitialPattern != "" {
		if err := s.InsertPattern(config.InitialPattern); err != nil {
			return nil, err
		}
	}
	s.recountAlive()
	return s, nil
}

// Grid returns the current generation. Callers must not keep it across a Step.
func (s *Simulation) Grid() *model.Grid { return s.grid }

// Generation returns the number of steps since the last reset
func (s *Simulation) Generation() uint64 { return s.generation }

// AliveCells returns the live cell count of the current grid
func (s *Simulation) AliveCells() int { return s.aliveCells }

// Paused reports whether Tick is currently suppressed
func (s *Simulation) Paused() bool { return s.paused }

// TogglePause flips between running and paused
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
}

// Step advances exactly one generation, regardless of pause state
func (s *Simulation) Step(ctx context.Context) error {
	var (
		next *model.Grid
		err  error
	)
	if s.config.UseBoundedGrid {
		next = rules.NextGenerationBounded(s.grid, s.pool)
	} else {
		next, err = rules.NextGenerationParallel(ctx, s.grid, s.config.Workers, s.pool)
		if err != nil {
			return errors.Wrap(err, "[Step] failed to compute next generation")
		}
	}

	s.history = append(s.history, s.grid.Hash())
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}

	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
	s.recountAlive()
	return nil
}

// Tick steps once if the simulation is running and a full step duration has
// elapsed since the previous step. It reports whether a step happened.
func (s *Simulation) Tick(ctx context.Context, now time.Time) (bool, error) {
	if s.paused {
		return false, nil
	}
	if !s.lastStep.IsZero() && now.Sub(s.lastStep) < s.config.StepDuration() {
		return false, nil
	}
	if err := s.Step(ctx); err != nil {
		return false, err
	}
	s.lastStep = now
	return true, nil
}

// Randomize refills the grid at the fixed live density and resets the count
func (s *Simulation) Randomize() {
	s.randomizeGrid()
	s.reset()
}

// Clear kills every cell and resets the generation count
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.reset()
}

// Paint sets a cell Alive; off-grid coordinates are ignored
func (s *Simulation) Paint(x, y int) {
	s.setCell(x, y, model.Alive)
}

// Erase sets a cell Dead; off-grid coordinates are ignored
func (s *Simulation) Erase(x, y int) {
	s.setCell(x, y, model.Dead)
}

// Resize replaces the grid with one of the new size, keeping the overlapping
// region, and resets the generation count.
func (s *Simulation) Resize(width, height int) error {
	if err := utils.ValidateDimensions(width, height); err != nil {
		return errors.Wrap(err, "[Resize] rejected dimensions")
	}
	s.grid = s.grid.Resized(width, height)
	s.config.Width, s.config.Height = width, height
	s.reset()
	s.logger.Info("grid resized", "width", width, "height", height)
	return nil
}

// InsertPattern stamps the named catalog pattern at the grid center
func (s *Simulation) InsertPattern(name string) error {
	p, ok := patterns.Lookup(name)
	if !ok {
		return errors.Errorf("[InsertPattern] unknown pattern %q", name)
	}
	patterns.PlaceCentered(s.grid, p)
	s.reset()
	s.logger.Debug("pattern inserted", "pattern", p.Name)
	return nil
}

// IsStagnant reports whether the current grid repeats one of the last few
// generations, which catches still lifes and short-period oscillators.
func (s *Simulation) IsStagnant() bool {
	if len(s.history) < 3 {
		return false
	}
	current := s.grid.Hash()
	for _, h := range s.history[max(0, len(s.history)-3):] {
		if h == current {
			return true
		}
	}
	return false
}

// InjectRandomLife sets count random cells Alive to break stagnation
func (s *Simulation) InjectRandomLife(count int) {
	w, h := s.grid.Width(), s.grid.Height()
	if w == 0 || h == 0 {
		return
	}
	for range count {
		s.grid.Set(s.intN(w), s.intN(h), model.Alive)
	}
	s.recountAlive()
}

func (s *Simulation) setCell(x, y int, c model.Cell) {
	s.grid.Set(x, y, c)
	s.recountAlive()
}

func (s *Simulation) randomizeGrid() {
	if s.rng != nil {
		s.grid.RandomizeFrom(s.rng)
		return
	}
	s.grid.Randomize()
}

func (s *Simulation) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (s *Simulation) reset() {
	s.generation = 0
	s.history = nil
	s.recountAlive()
}

func (s *Simulation) recountAlive() {
	s.aliveCells = s.grid.CountLivingCells()
}
