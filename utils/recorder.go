package utils

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// GenerationRecord is one CSV row of per-generation statistics
type GenerationRecord struct {
	Generation uint64  `csv:"generation"`
	Alive      int     `csv:"alive"`
	Density    float64 `csv:"density"`
	Stagnant   bool    `csv:"stagnant"`
	Restarted  bool    `csv:"restarted"`
}

// StatsRecorder appends GenerationRecords as CSV, writing the header once
type StatsRecorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewStatsRecorder writes records to w
func NewStatsRecorder(w io.Writer) *StatsRecorder {
	return &StatsRecorder{w: w}
}

// CreateStatsRecorder creates (or truncates) the CSV file at path.
// An empty path returns a nil recorder, on which every method is a no-op.
func CreateStatsRecorder(path string) (*StatsRecorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[CreateStatsRecorder] failed to create file: %+v", path)
	}
	return &StatsRecorder{w: f, closer: f}, nil
}

// Record writes one row
func (r *StatsRecorder) Record(rec GenerationRecord) error {
	if r == nil {
		return nil
	}

	records := []GenerationRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return errors.Wrap(err, "[Record] failed to write stats")
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return errors.Wrap(err, "[Record] failed to write stats")
	}
	return nil
}

// Close closes the underlying file, if the recorder owns one
func (r *StatsRecorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return errors.Wrap(r.closer.Close(), "[Close] failed to close stats file")
}
