// Package analysis aggregates measurement sets from many annotated samples
// into per-finger, per-segment descriptive statistics.
package analysis

import (
	"fmt"

	"github.com/ayusman/handmetrics/internal/measure"
)

// SegmentKey identifies a segment within a chain by its pair of consecutive
// joint indices.
type SegmentKey struct {
	From int
	To   int
}

// String renders the key in its export form, e.g. "0_1".
func (k SegmentKey) String() string {
	return fmt.Sprintf("%d_%d", k.From, k.To)
}

// Less orders keys by ascending joint indices.
func (k SegmentKey) Less(other SegmentKey) bool {
	if k.From != other.From {
		return k.From < other.From
	}
	return k.To < other.To
}

// MeasurementSet is one sample's complete measurement result: the scale used
// to produce it plus the ordered segment distances for each annotated chain.
// Sets are value objects and must not be mutated after construction.
type MeasurementSet struct {
	SourceID string
	Scale    measure.ScaleFactor
	Chains   map[string][]measure.SegmentDistance
}
