package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/handmetrics/internal/measure"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	markers []measure.FiducialMarker
	err     error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetMarkers sets the markers that will be returned by Detect.
func (m *MockDetector) SetMarkers(markers []measure.FiducialMarker) {
	m.markers = markers
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured markers or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]measure.FiducialMarker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.markers, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// SquareMarker returns a preset axis-aligned square marker with the given
// top-left corner, edge length in pixels, and tag identifier. Corners are in
// the clockwise winding order the ArUco detector produces.
func SquareMarker(origin measure.Point2D, edge float64, id int) measure.FiducialMarker {
	return measure.FiducialMarker{
		ID: id,
		Corners: [4]measure.Point2D{
			{X: origin.X, Y: origin.Y},
			{X: origin.X + edge, Y: origin.Y},
			{X: origin.X + edge, Y: origin.Y + edge},
			{X: origin.X, Y: origin.Y + edge},
		},
	}
}
