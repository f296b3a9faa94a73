package utils

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time

	populations []float64
}

// Summary is the population distribution over a run
type Summary struct {
	Generations uint64
	Mean        float64
	StdDev      float64
	Peak        float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average for population
	if len(s.populations) == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
	s.populations = append(s.populations, float64(population))
}

// Summary reports the mean, sample standard deviation and peak of every
// population passed to Update.
func (s *Stats) Summary() Summary {
	sum := Summary{Generations: s.TotalGenerations}
	if len(s.populations) == 0 {
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(s.populations, nil)
	if len(s.populations) == 1 {
		sum.StdDev = 0
	}
	for _, p := range s.populations {
		sum.Peak = max(sum.Peak, p)
	}
	return sum
}
