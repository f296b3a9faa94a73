package utils

import (
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-gol/patterns"
)

const (
	MinGridSize = 10
	MaxGridSize = 200

	MinUPS = 1
	MaxUPS = 60
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int    `yaml:"width" env:"GOL_WIDTH"`
	Height              int    `yaml:"height" env:"GOL_HEIGHT"`
	UpdatesPerSecond    int    `yaml:"updates_per_second" env:"GOL_UPDATES_PER_SECOND"`
	Workers             int    `yaml:"workers" env:"GOL_WORKERS"`
	UseMemoryPool       bool   `yaml:"use_memory_pool" env:"GOL_USE_MEMORY_POOL"`
	UseBoundedGrid      bool   `yaml:"use_bounded_grid" env:"GOL_USE_BOUNDED_GRID"`
	MaxGenerations      int    `yaml:"max_generations" env:"GOL_MAX_GENERATIONS"`
	Seed                int64  `yaml:"seed" env:"GOL_SEED"`
	AutoRestart         bool   `yaml:"auto_restart" env:"GOL_AUTO_RESTART"`
	StagnationThreshold int    `yaml:"stagnation_threshold" env:"GOL_STAGNATION_THRESHOLD"`
	InjectionCount      int    `yaml:"injection_count" env:"GOL_INJECTION_COUNT"`
	InitialPattern      string `yaml:"initial_pattern" env:"GOL_INITIAL_PATTERN"`
	StatsPath           string `yaml:"stats_path" env:"GOL_STATS_PATH"`
	LogFormat           string `yaml:"log_format" env:"GOL_LOG_FORMAT"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              60,
		UpdatesPerSecond:    10,
		Workers:             0, // one per CPU
		UseMemoryPool:       true,
		UseBoundedGrid:      false,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
		LogFormat:           "text",
	}
}

// LoadConfig layers a YAML file and GOL_* environment variables over the
// defaults, then validates the result. An empty filename skips the file.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}

		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err := env.Parse(&config); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to parse environment")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate rejects settings the grid and driver cannot run with
func (c Config) Validate() error {
	if err := ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.UpdatesPerSecond < MinUPS || c.UpdatesPerSecond > MaxUPS {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] updates_per_second %d outside [%d, %d]",
			c.UpdatesPerSecond, MinUPS, MaxUPS)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.InitialPattern != "" {
		if _, ok := patterns.Lookup(c.InitialPattern); !ok {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown initial_pattern %q", c.InitialPattern)
		}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// ValidateDimensions checks a grid size against [MinGridSize, MaxGridSize]
func ValidateDimensions(width, height int) error {
	if width < MinGridSize || width > MaxGridSize {
		return errors.Wrapf(ErrInvalidConfig, "[ValidateDimensions] width %d outside [%d, %d]",
			width, MinGridSize, MaxGridSize)
	}
	if height < MinGridSize || height > MaxGridSize {
		return errors.Wrapf(ErrInvalidConfig, "[ValidateDimensions] height %d outside [%d, %d]",
			height, MinGridSize, MaxGridSize)
	}
	return nil
}

// StepDuration is the minimum time between generations
func (c Config) StepDuration() time.Duration {
	if c.UpdatesPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.UpdatesPerSecond)
}

// WriteYAML writes the configuration as YAML
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "[WriteYAML] failed to encode config")
	}
	return errors.Wrap(enc.Close(), "[WriteYAML] failed to flush encoder")
}
