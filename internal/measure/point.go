// Package measure converts manually annotated pixel landmarks into physical
// units using a fiducial marker of known size for scale calibration.
package measure

import "math"

// Point2D represents a point in image pixel space.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// FiducialMarker is a detected reference marker: four corner points in a
// consistent winding order plus the identifier assigned by the detector.
type FiducialMarker struct {
	ID      int        `json:"id"`
	Corners [4]Point2D `json:"corners"`
}
