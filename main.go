package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/utils"
)

// frameInterval is how often the loop polls the simulation for a due step
const frameInterval = 16 * time.Millisecond

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config (missing file = defaults)")
	maxGenerations := flag.Int("max-generations", -1, "Stop after N generations (-1 = use config, 0 = unlimited)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config)")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *maxGenerations >= 0 {
		config.MaxGenerations = *maxGenerations
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	logger := newLogger(config.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	if *dumpConfig {
		if err := config.WriteYAML(os.Stdout); err != nil {
			logger.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig falls back to defaults when the config file does not exist
func loadConfig(path string) (utils.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", path)
		path = ""
	}
	return utils.LoadConfig(path)
}

func run(ctx context.Context, config utils.Config, logger *slog.Logger) error {
	game, renderer, stats, err := initializeGame(config, logger)
	if err != nil {
		return err
	}

	recorder, err := utils.CreateStatsRecorder(config.StatsPath)
	if err != nil {
		return err
	}
	defer recorder.Close()

	displayGameInfo(logger, config, game)
	if err := displayFrame(os.Stdout, renderer, game); err != nil {
		return errors.Wrap(err, "[run] failed to render frame")
	}

	var (
		stagnantCount  = 0
		lastStepTime   = time.Now()
		totalGenerated uint64
		ticker         = time.NewTicker(frameInterval)
	)
	defer ticker.Stop()

	for {
		var now time.Time
		select {
		case <-ctx.Done():
			logFinalStats(logger, stats)
			return nil
		case now = <-ticker.C:
		}

		stepped, err := game.Tick(ctx, now)
		if err != nil {
			if ctx.Err() != nil {
				logFinalStats(logger, stats)
				return nil
			}
			return err
		}
		if !stepped {
			continue
		}
		totalGenerated++

		state := updateGameState(game, totalGenerated, lastStepTime, stats)
		lastStepTime = now

		if state.stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if err := displayFrame(os.Stdout, renderer, game); err != nil {
			return errors.Wrap(err, "[run] failed to render frame")
		}

		restarted := false
		if restart, reason := checkRestartConditions(state.alive, stagnantCount, config); restart && config.AutoRestart {
			logger.Info("restarting", "reason", reason, "generation", game.Generation())
			game.Randomize()
			stagnantCount = 0
			restarted = true
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			game.InjectRandomLife(config.InjectionCount)
		}

		if err := recorder.Record(utils.GenerationRecord{
			Generation: totalGenerated,
			Alive:      state.alive,
			Density:    state.density,
			Stagnant:   state.stagnant,
			Restarted:  restarted,
		}); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && totalGenerated >= uint64(config.MaxGenerations) {
			logger.Info("reached maximum generations", "limit", config.MaxGenerations)
			logFinalStats(logger, stats)
			return nil
		}
	}
}

func newLogger(format string, w io.Writer) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
