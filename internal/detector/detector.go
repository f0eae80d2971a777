// Package detector provides fiducial marker detection interfaces and
// implementations for scale calibration.
package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/handmetrics/internal/measure"
)

// Detector defines the interface for fiducial marker detection
// implementations.
type Detector interface {
	// Detect analyzes an image and returns the detected markers, each as
	// four ordered pixel corners plus a tag identifier.
	// Returns an empty slice if no markers are found.
	Detect(frame *gocv.Mat) ([]measure.FiducialMarker, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for marker detection.
type Config struct {
	// AdaptiveThreshConstant tunes the adaptive thresholding applied
	// before marker candidate extraction.
	AdaptiveThreshConstant float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		AdaptiveThreshConstant: 10,
	}
}
