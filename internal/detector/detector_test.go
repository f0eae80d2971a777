package detector

import (
	"errors"
	"math"
	"testing"

	"github.com/ayusman/handmetrics/internal/measure"
)

func TestMockDetector_ReturnsConfiguredMarkers(t *testing.T) {
	mock := NewMockDetector()
	mock.SetMarkers([]measure.FiducialMarker{
		SquareMarker(measure.Point2D{X: 10, Y: 20}, 100, 7),
	})

	markers, err := mock.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(markers) != 1 {
		t.Fatalf("got %d markers, want 1", len(markers))
	}
	if markers[0].ID != 7 {
		t.Errorf("marker ID = %d, want 7", markers[0].ID)
	}
}

func TestMockDetector_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockDetector()
	wantErr := errors.New("camera offline")
	mock.SetError(wantErr)

	if _, err := mock.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
}

func TestSquareMarker_Geometry(t *testing.T) {
	marker := SquareMarker(measure.Point2D{X: 5, Y: 5}, 140, 1)

	// All four edges must have the configured length
	for i := 0; i < 4; i++ {
		edge := measure.Distance(marker.Corners[i], marker.Corners[(i+1)%4])
		if math.Abs(edge-140) > 1e-9 {
			t.Errorf("edge %d length = %f, want 140", i, edge)
		}
	}
}

func TestSquareMarker_CalibratesEndToEnd(t *testing.T) {
	// A detected 140px marker over the 7cm physical edge gives 20 px/cm
	marker := SquareMarker(measure.Point2D{}, 140, 0)

	scale := marker.Calibrate()
	if !scale.Calibrated {
		t.Fatal("expected calibrated scale")
	}
	if math.Abs(scale.PixelsPerCM-20) > 1e-9 {
		t.Errorf("PixelsPerCM = %f, want 20", scale.PixelsPerCM)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AdaptiveThreshConstant != 10 {
		t.Errorf("AdaptiveThreshConstant = %f, want 10", cfg.AdaptiveThreshConstant)
	}
}
