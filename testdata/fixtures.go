// Package testdata provides annotation file fixtures for tests.
package testdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Annotation assembles the JSON document the hand annotation tool writes.
type Annotation struct {
	ImagePath   string
	Calibrated  bool
	PixelsPerCM float64

	// Measurements maps finger name to the centimeter distances of its
	// consecutive segments starting at joint 0. Pixel distances are
	// derived from the scale. A nil map omits the measurements section.
	Measurements map[string][]float64

	// Points maps finger name to pixel points stored under the tool's
	// flat finger_<index> keys.
	Points map[string][][2]float64
}

// Write marshals the annotation document to path.
func (a Annotation) Write(path string) error {
	doc := map[string]interface{}{
		"scale_info": map[string]interface{}{
			"calibrated":     a.Calibrated,
			"pixels_per_cm":  a.PixelsPerCM,
			"marker_size_cm": 7.0,
		},
	}
	if a.ImagePath != "" {
		doc["image_path"] = a.ImagePath
	}

	if a.Measurements != nil {
		measurements := make(map[string][]map[string]interface{}, len(a.Measurements))
		for finger, cms := range a.Measurements {
			segs := make([]map[string]interface{}, 0, len(cms))
			for i, cm := range cms {
				segs = append(segs, map[string]interface{}{
					"from_joint":     i,
					"to_joint":       i + 1,
					"pixel_distance": cm * a.PixelsPerCM,
					"cm_distance":    cm,
				})
			}
			measurements[finger] = segs
		}
		doc["measurements"] = measurements
	}

	for finger, pts := range a.Points {
		for i, p := range pts {
			doc[fmt.Sprintf("%s_%d", finger, i)] = map[string]float64{"x": p[0], "y": p[1]}
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteTo writes the annotation into dir under name and returns its path.
func (a Annotation) WriteTo(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := a.Write(path); err != nil {
		return "", err
	}
	return path, nil
}
