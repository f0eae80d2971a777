package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ayusman/handmetrics/internal/analysis"
)

// Summary is the structured export of one aggregation run.
type Summary struct {
	Summary    RunSummary                                       `json:"summary"`
	Statistics map[string]map[string]analysis.SegmentStatistics `json:"statistics"`
}

// RunSummary describes the inputs that produced the statistics.
type RunSummary struct {
	FilesAnalyzed int      `json:"files_analyzed"`
	FileList      []string `json:"file_list"`
}

// BuildSummary assembles the structured export from an aggregation run.
// All float fields are rounded to three decimals for serialization.
func BuildSummary(agg *analysis.Aggregator) Summary {
	stats := agg.Statistics()
	rounded := make(map[string]map[string]analysis.SegmentStatistics, len(stats))
	for finger, byKey := range stats {
		rounded[finger] = make(map[string]analysis.SegmentStatistics, len(byKey))
		for key, s := range byKey {
			rounded[finger][key.String()] = analysis.SegmentStatistics{
				Count:  s.Count,
				Mean:   round3(s.Mean),
				Median: round3(s.Median),
				StdDev: round3(s.StdDev),
				Min:    round3(s.Min),
				Max:    round3(s.Max),
				Range:  round3(s.Range),
			}
		}
	}

	return Summary{
		Summary: RunSummary{
			FilesAnalyzed: agg.SampleCount(),
			FileList:      agg.Sources(),
		},
		Statistics: rounded,
	}
}

// WriteJSONSummary writes the structured export as indented JSON.
func WriteJSONSummary(w io.Writer, agg *analysis.Aggregator) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildSummary(agg)); err != nil {
		return fmt.Errorf("encode json summary: %w", err)
	}
	return nil
}
