// Package record loads the JSON annotation files produced by the hand
// annotation tool and converts them into measurement sets.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ayusman/handmetrics/internal/analysis"
	"github.com/ayusman/handmetrics/internal/measure"
)

// ErrNoMeasurements marks an annotation file without a measurements section.
// Such files are skippable for aggregation but may still carry landmark
// points; Load returns the parsed file alongside this error.
var ErrNoMeasurements = errors.New("record: no measurements field")

// Segment mirrors one measurement entry as stored on disk.
type Segment struct {
	FromJoint     int     `json:"from_joint"`
	ToJoint       int     `json:"to_joint"`
	PixelDistance float64 `json:"pixel_distance"`
	CMDistance    float64 `json:"cm_distance"`
}

// scaleInfo mirrors the optional scale_info block.
type scaleInfo struct {
	Calibrated   bool    `json:"calibrated"`
	PixelsPerCM  float64 `json:"pixels_per_cm"`
	MarkerSizeCM float64 `json:"marker_size_cm"`
}

// File is one parsed annotation record.
type File struct {
	Path         string
	ImagePath    string
	Measurements map[string][]Segment
	Scale        measure.ScaleFactor

	// cmTrusted reports whether the file's centimeter distances were
	// produced under a calibrated scale.
	cmTrusted bool

	points map[string][]measure.Point2D
}

// Load reads and parses one annotation file. A file whose measurements
// section is missing is returned together with ErrNoMeasurements so that
// callers needing only landmark points can still use it; any other parse or
// read failure returns a nil file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	f := &File{
		Path:      path,
		cmTrusted: true,
		points:    make(map[string][]measure.Point2D),
	}

	if v, ok := raw["image_path"]; ok {
		if err := json.Unmarshal(v, &f.ImagePath); err != nil {
			return nil, fmt.Errorf("parse %s: image_path: %w", path, err)
		}
	}

	if v, ok := raw["scale_info"]; ok {
		var info scaleInfo
		if err := json.Unmarshal(v, &info); err != nil {
			return nil, fmt.Errorf("parse %s: scale_info: %w", path, err)
		}
		f.Scale = measure.ScaleFactor{
			PixelsPerCM: info.PixelsPerCM,
			Calibrated:  info.Calibrated,
		}
		// Distances recorded without a calibrated scale are the
		// annotation tool's placeholder zeros, not real measurements.
		f.cmTrusted = info.Calibrated
	}

	for _, finger := range measure.Fingers() {
		f.points[finger] = parsePoints(raw, finger)
	}

	v, ok := raw["measurements"]
	if !ok {
		return f, fmt.Errorf("%s: %w", path, ErrNoMeasurements)
	}
	if err := json.Unmarshal(v, &f.Measurements); err != nil {
		return nil, fmt.Errorf("parse %s: measurements: %w", path, err)
	}

	return f, nil
}

// parsePoints collects the flat finger_<index> landmark entries for one
// finger, stopping at the first missing index.
func parsePoints(raw map[string]json.RawMessage, finger string) []measure.Point2D {
	var points []measure.Point2D
	for idx := 0; ; idx++ {
		v, ok := raw[finger+"_"+strconv.Itoa(idx)]
		if !ok {
			break
		}
		var p measure.Point2D
		if err := json.Unmarshal(v, &p); err != nil {
			break
		}
		points = append(points, p)
	}
	return points
}

// Points returns the annotated landmark points for one finger, in joint
// order.
func (f *File) Points(finger string) []measure.Point2D {
	return f.points[finger]
}

// AllPoints returns the annotated landmark points for every finger.
func (f *File) AllPoints() map[string][]measure.Point2D {
	out := make(map[string][]measure.Point2D, len(f.points))
	for finger, pts := range f.points {
		if len(pts) > 0 {
			out[finger] = pts
		}
	}
	return out
}

// MeasurementSet converts the file into an aggregatable measurement set.
// Centimeter distances from uncalibrated files are carried over as unknown
// so the aggregator never mistakes placeholder zeros for real measurements.
func (f *File) MeasurementSet() analysis.MeasurementSet {
	chains := make(map[string][]measure.SegmentDistance, len(f.Measurements))
	for finger, segments := range f.Measurements {
		out := make([]measure.SegmentDistance, 0, len(segments))
		for _, s := range segments {
			seg := measure.SegmentDistance{
				FromJoint:     s.FromJoint,
				ToJoint:       s.ToJoint,
				PixelDistance: s.PixelDistance,
			}
			if f.cmTrusted {
				seg.CMDistance = s.CMDistance
				seg.CMKnown = true
			}
			out = append(out, seg)
		}
		chains[finger] = out
	}

	return analysis.MeasurementSet{
		SourceID: f.Path,
		Scale:    f.Scale,
		Chains:   chains,
	}
}
