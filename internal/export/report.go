package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayusman/handmetrics/internal/analysis"
	"github.com/ayusman/handmetrics/internal/measure"
)

const reportDivider = "================================================================================"

// WriteReport writes a human-readable analysis report: a run summary,
// detailed per-finger segment statistics, total finger lengths, and a
// comparison table of mean measurements across fingers.
func WriteReport(w io.Writer, agg *analysis.Aggregator) error {
	stats := agg.Statistics()

	if err := writeSummary(w, agg); err != nil {
		return err
	}
	if err := writeStatistics(w, stats); err != nil {
		return err
	}
	if err := writeTotals(w, agg.TotalLengths()); err != nil {
		return err
	}
	if err := writeComparison(w, stats); err != nil {
		return err
	}
	return nil
}

func writeSummary(w io.Writer, agg *analysis.Aggregator) error {
	if _, err := fmt.Fprintf(w, "\n%s\nHAND JOINT MEASUREMENT ANALYSIS SUMMARY\n%s\n\n", reportDivider, reportDivider); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(w, "Files Analyzed: %d\n", agg.SampleCount())
	for _, source := range agg.Sources() {
		fmt.Fprintf(w, "  - %s\n", source)
	}
	return nil
}

func writeStatistics(w io.Writer, stats map[string]map[analysis.SegmentKey]analysis.SegmentStatistics) error {
	if _, err := fmt.Fprintf(w, "\n%s\nDETAILED STATISTICS\n%s\n", reportDivider, reportDivider); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for _, finger := range measure.Fingers() {
		fmt.Fprintf(w, "\n%s segment measurements\n", strings.ToUpper(finger))

		byKey := stats[finger]
		if len(byKey) == 0 {
			fmt.Fprintln(w, "  no measurements available")
			continue
		}

		for _, key := range analysis.SortedKeys(byKey) {
			s := byKey[key]
			fmt.Fprintf(w, "\n  segment %s\n", key)
			fmt.Fprintf(w, "    Count:   %d measurements\n", s.Count)
			fmt.Fprintf(w, "    Mean:    %.3f cm\n", s.Mean)
			fmt.Fprintf(w, "    Median:  %.3f cm\n", s.Median)
			fmt.Fprintf(w, "    Std Dev: %.3f cm\n", s.StdDev)
			fmt.Fprintf(w, "    Min:     %.3f cm\n", s.Min)
			fmt.Fprintf(w, "    Max:     %.3f cm\n", s.Max)
			fmt.Fprintf(w, "    Range:   %.3f cm\n", s.Range)
		}
	}
	return nil
}

func writeTotals(w io.Writer, totals map[string]analysis.SegmentStatistics) error {
	if _, err := fmt.Fprintf(w, "\n%s\nTOTAL FINGER LENGTHS\n%s\n", reportDivider, reportDivider); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for _, finger := range measure.Fingers() {
		fmt.Fprintf(w, "\n%s\n", strings.ToUpper(finger))
		s, ok := totals[finger]
		if !ok {
			fmt.Fprintln(w, "  no measurements available")
			continue
		}
		fmt.Fprintf(w, "  Count:   %d measurements\n", s.Count)
		fmt.Fprintf(w, "  Mean:    %.3f cm\n", s.Mean)
		fmt.Fprintf(w, "  Median:  %.3f cm\n", s.Median)
		if s.Count > 1 {
			fmt.Fprintf(w, "  Std Dev: %.3f cm\n", s.StdDev)
		}
		fmt.Fprintf(w, "  Min:     %.3f cm\n", s.Min)
		fmt.Fprintf(w, "  Max:     %.3f cm\n", s.Max)
	}
	return nil
}

func writeComparison(w io.Writer, stats map[string]map[analysis.SegmentKey]analysis.SegmentStatistics) error {
	if _, err := fmt.Fprintf(w, "\n%s\nCOMPARISON TABLE - Mean Measurements (cm)\n%s\n\n", reportDivider, reportDivider); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	// Union of segment keys seen across all fingers, in ascending order.
	seen := make(map[analysis.SegmentKey]analysis.SegmentStatistics)
	for _, byKey := range stats {
		for key := range byKey {
			seen[key] = analysis.SegmentStatistics{}
		}
	}
	keys := analysis.SortedKeys(seen)

	fmt.Fprintf(w, "%-12s", "Segment")
	for _, finger := range measure.Fingers() {
		fmt.Fprintf(w, "%-15s", strings.ToUpper(finger[:1])+finger[1:])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 12+15*len(measure.Fingers())))

	for _, key := range keys {
		fmt.Fprintf(w, "%-12s", key.String())
		for _, finger := range measure.Fingers() {
			if s, ok := stats[finger][key]; ok {
				cell := fmt.Sprintf("%.2f±%.2f", s.Mean, s.StdDev)
				fmt.Fprintf(w, "%-15s", cell)
			} else {
				fmt.Fprintf(w, "%-15s", "N/A")
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
