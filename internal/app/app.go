// Package app orchestrates a measurement aggregation run: loading annotation
// files, aggregating their measurements, and writing the exports.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ayusman/handmetrics/internal/analysis"
	"github.com/ayusman/handmetrics/internal/export"
	"github.com/ayusman/handmetrics/internal/record"
	"github.com/ayusman/handmetrics/internal/store"
)

// ErrNoData is returned when none of the input files yielded usable
// measurement data. It is distinct from individual chains having zero
// measurements, which is a valid outcome.
var ErrNoData = errors.New("app: no usable measurement data")

// Config holds configuration options for an aggregation run.
type Config struct {
	// Inputs are the annotation file paths to aggregate.
	Inputs []string

	// CSVPath and JSONPath are the export destinations; empty disables
	// the corresponding export.
	CSVPath  string
	JSONPath string

	// DBPath optionally persists the run to a SQLite database.
	DBPath string

	// ReportOut receives the text report. Defaults to os.Stdout.
	ReportOut io.Writer
}

// Result summarizes a completed aggregation run.
type Result struct {
	Aggregator *analysis.Aggregator
	Loaded     []string
	Skipped    []string
	RunID      string
}

// Run executes one aggregation run. Unreadable or incomplete input files are
// skipped with a logged warning; the run fails only when no file yields
// usable measurements. Export failures are reported with their cause and do
// not corrupt the computed statistics.
func Run(cfg Config) (*Result, error) {
	if len(cfg.Inputs) == 0 {
		return nil, ErrNoData
	}

	out := cfg.ReportOut
	if out == nil {
		out = os.Stdout
	}

	agg := analysis.New()
	result := &Result{Aggregator: agg}

	for _, path := range cfg.Inputs {
		f, err := record.Load(path)
		if err != nil {
			log.Printf("warning: skipping %s: %v", path, err)
			result.Skipped = append(result.Skipped, path)
			continue
		}
		agg.Ingest(f.MeasurementSet())
		result.Loaded = append(result.Loaded, path)
	}

	if agg.SampleCount() == 0 {
		return nil, ErrNoData
	}

	if err := export.WriteReport(out, agg); err != nil {
		return nil, err
	}

	if cfg.CSVPath != "" {
		if err := writeFile(cfg.CSVPath, func(w io.Writer) error {
			return export.WriteCSV(w, agg.Statistics())
		}); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}

	if cfg.JSONPath != "" {
		if err := writeFile(cfg.JSONPath, func(w io.Writer) error {
			return export.WriteJSONSummary(w, agg)
		}); err != nil {
			return nil, fmt.Errorf("export json: %w", err)
		}
	}

	if cfg.DBPath != "" {
		runID, err := persistRun(cfg.DBPath, agg)
		if err != nil {
			return nil, fmt.Errorf("persist run: %w", err)
		}
		result.RunID = runID
	}

	return result, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func persistRun(dbPath string, agg *analysis.Aggregator) (string, error) {
	s, err := store.New(dbPath)
	if err != nil {
		return "", err
	}
	defer s.Close()

	return s.Runs().Create(agg.Sets())
}
