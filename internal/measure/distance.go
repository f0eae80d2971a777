package measure

import "math"

// SegmentDistance is the measured distance between two consecutive joint
// points in a chain. ToJoint is always FromJoint+1. CMKnown is false when
// the distance could not be converted to centimeters because no calibrated
// scale was available; CMDistance is zero in that case and must not be read
// as a real measurement.
type SegmentDistance struct {
	FromJoint     int     `json:"from_joint"`
	ToJoint       int     `json:"to_joint"`
	PixelDistance float64 `json:"pixel_distance"`
	CMDistance    float64 `json:"cm_distance"`
	CMKnown       bool    `json:"cm_known"`
}

// ChainDistances computes the distances between consecutive points of one
// annotated chain. For N points it returns exactly N-1 segments in point
// order; fewer than two points yields an empty result, not an error.
// Distances are rounded to two decimal places for display stability.
func ChainDistances(points []Point2D, scale ScaleFactor) []SegmentDistance {
	if len(points) < 2 {
		return nil
	}

	segments := make([]SegmentDistance, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		seg := SegmentDistance{
			FromJoint:     i,
			ToJoint:       i + 1,
			PixelDistance: round2(Distance(points[i], points[i+1])),
		}
		if cm, ok := scale.ToCM(seg.PixelDistance); ok {
			seg.CMDistance = round2(cm)
			seg.CMKnown = true
		}
		segments = append(segments, seg)
	}
	return segments
}

// ChainTotalCM sums the converted segment distances of one chain. The second
// return value is false when the chain has no convertible segments, keeping
// "no data" distinct from a genuine zero-length chain.
func ChainTotalCM(segments []SegmentDistance) (float64, bool) {
	total := 0.0
	known := false
	for _, seg := range segments {
		if seg.CMKnown {
			total += seg.CMDistance
			known = true
		}
	}
	return total, known
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
