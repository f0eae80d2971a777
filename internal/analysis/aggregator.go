package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ayusman/handmetrics/internal/measure"
)

// SegmentStatistics holds the descriptive statistics computed over one group
// of centimeter distances.
type SegmentStatistics struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
}

// Aggregator accumulates measurement sets for one aggregation run. Statistics
// are recomputed on demand from the ingested sets and do not depend on
// ingestion order.
//
// An Aggregator is not safe for concurrent use; it must be owned by a single
// goroutine or guarded externally around Ingest.
type Aggregator struct {
	sets []MeasurementSet
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Ingest adds one sample to the run.
func (a *Aggregator) Ingest(set MeasurementSet) {
	a.sets = append(a.sets, set)
}

// SampleCount returns the number of ingested measurement sets.
func (a *Aggregator) SampleCount() int {
	return len(a.sets)
}

// Sources returns the source identifiers of the ingested sets in ingestion
// order.
func (a *Aggregator) Sources() []string {
	sources := make([]string, 0, len(a.sets))
	for _, set := range a.sets {
		sources = append(sources, set.SourceID)
	}
	return sources
}

// Sets returns the ingested measurement sets in ingestion order. The
// returned slice is a copy; the sets themselves are shared value objects.
func (a *Aggregator) Sets() []MeasurementSet {
	return append([]MeasurementSet(nil), a.sets...)
}

// Statistics groups converted distances by (finger, segment key) across all
// ingested sets and computes descriptive statistics per group. Only the five
// recognized chain names contribute, and only distances with a known
// centimeter value are aggregated. Groups with no values are absent from the
// result.
func (a *Aggregator) Statistics() map[string]map[SegmentKey]SegmentStatistics {
	groups := make(map[string]map[SegmentKey][]float64)
	for _, set := range a.sets {
		for finger, segments := range set.Chains {
			if !measure.IsFinger(finger) {
				continue
			}
			for _, seg := range segments {
				if !seg.CMKnown {
					continue
				}
				key := SegmentKey{From: seg.FromJoint, To: seg.ToJoint}
				if groups[finger] == nil {
					groups[finger] = make(map[SegmentKey][]float64)
				}
				groups[finger][key] = append(groups[finger][key], seg.CMDistance)
			}
		}
	}

	stats := make(map[string]map[SegmentKey]SegmentStatistics, len(groups))
	for finger, byKey := range groups {
		stats[finger] = make(map[SegmentKey]SegmentStatistics, len(byKey))
		for key, values := range byKey {
			stats[finger][key] = describe(values)
		}
	}
	return stats
}

// TotalLengths computes statistics over the total chain length per sample,
// grouped by finger. A chain with no convertible segments in a given sample
// contributes no value rather than a zero.
func (a *Aggregator) TotalLengths() map[string]SegmentStatistics {
	totals := make(map[string][]float64)
	for _, set := range a.sets {
		for _, finger := range measure.Fingers() {
			if total, ok := measure.ChainTotalCM(set.Chains[finger]); ok {
				totals[finger] = append(totals[finger], total)
			}
		}
	}

	stats := make(map[string]SegmentStatistics, len(totals))
	for finger, values := range totals {
		stats[finger] = describe(values)
	}
	return stats
}

// describe computes the statistics for one non-empty group of values.
// The standard deviation is the sample standard deviation, defined as 0.0
// for a single value.
func describe(values []float64) SegmentStatistics {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := SegmentStatistics{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: median(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	s.Range = s.Max - s.Min
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// median returns the positional median of a sorted slice, averaging the two
// middle values for even counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// SortedKeys returns the segment keys of one finger's statistics in ascending
// order.
func SortedKeys(byKey map[SegmentKey]SegmentStatistics) []SegmentKey {
	keys := make([]SegmentKey, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
