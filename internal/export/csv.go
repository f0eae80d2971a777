// Package export serializes aggregated measurement statistics to tabular and
// structured forms.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ayusman/handmetrics/internal/analysis"
	"github.com/ayusman/handmetrics/internal/measure"
)

// CSVHeader is the header row of the tabular export.
var CSVHeader = []string{
	"Finger", "Segment", "Count", "Mean (cm)", "Median (cm)",
	"Std Dev", "Min (cm)", "Max (cm)", "Range (cm)",
}

// Table flattens the statistics into rows ordered by the fixed finger order
// and then by ascending segment key. Fingers and segments with no samples
// produce no rows.
func Table(stats map[string]map[analysis.SegmentKey]analysis.SegmentStatistics) [][]string {
	var rows [][]string
	for _, finger := range measure.Fingers() {
		byKey := stats[finger]
		for _, key := range analysis.SortedKeys(byKey) {
			s := byKey[key]
			rows = append(rows, []string{
				finger,
				key.String(),
				strconv.Itoa(s.Count),
				format3(s.Mean),
				format3(s.Median),
				format3(s.StdDev),
				format3(s.Min),
				format3(s.Max),
				format3(s.Range),
			})
		}
	}
	return rows
}

// WriteCSV writes the statistics as CSV with a header row.
func WriteCSV(w io.Writer, stats map[string]map[analysis.SegmentKey]analysis.SegmentStatistics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range Table(stats) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// format3 renders a value with the three-decimal precision used by exports.
func format3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// round3 rounds a value to the three-decimal precision used by the
// structured export. Rounding is export-only; raw values stay untouched in
// the aggregator.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
