package detector

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayusman/handmetrics/internal/measure"
)

// ArucoDetector implements Detector using OpenCV's ArUco module with the
// AprilTag 36h11 dictionary.
type ArucoDetector struct {
	detector gocv.ArucoDetector
}

// NewArucoDetector creates a new AprilTag marker detector.
func NewArucoDetector(config Config) *ArucoDetector {
	params := gocv.NewArucoDetectorParameters()
	params.SetAdaptiveThreshConstant(config.AdaptiveThreshConstant)

	dict := gocv.GetPredefinedDictionary(gocv.ArucoDictAprilTag36h11)

	return &ArucoDetector{
		detector: gocv.NewArucoDetectorWithParams(dict, params),
	}
}

// Detect finds AprilTag markers in the frame and returns their pixel corner
// coordinates together with the decoded tag identifiers.
func (d *ArucoDetector) Detect(frame *gocv.Mat) ([]measure.FiducialMarker, error) {
	if frame == nil || frame.Empty() {
		return nil, fmt.Errorf("detect markers: empty frame")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)

	corners, ids, _ := d.detector.DetectMarkers(gray)

	markers := make([]measure.FiducialMarker, 0, len(ids))
	for i, id := range ids {
		if len(corners[i]) != 4 {
			continue
		}
		m := measure.FiducialMarker{ID: id}
		for j, pt := range corners[i] {
			m.Corners[j] = measure.Point2D{X: float64(pt.X), Y: float64(pt.Y)}
		}
		markers = append(markers, m)
	}

	return markers, nil
}

// Close releases the underlying OpenCV detector.
func (d *ArucoDetector) Close() error {
	return d.detector.Close()
}
