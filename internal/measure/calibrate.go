package measure

// MarkerSizeCM is the physical edge length of the AprilTag reference marker.
const MarkerSizeCM = 7.0

// ScaleFactor holds the pixel-to-centimeter scale derived from a fiducial
// marker. Calibrated is false when no valid scale is available; callers must
// check it before converting distances.
type ScaleFactor struct {
	PixelsPerCM float64 `json:"pixels_per_cm"`
	Calibrated  bool    `json:"calibrated"`
}

// Calibrate derives a pixel-to-centimeter scale from four marker corners of
// known physical edge length. All four edge lengths (wrapping from the last
// corner back to the first) are averaged to reduce sensitivity to detection
// noise at any single corner.
//
// Returns an uncalibrated ScaleFactor when the corner count is not exactly
// four, the known edge length is not positive, or any edge is degenerate.
// Bad geometry is never an error.
func Calibrate(corners []Point2D, knownEdgeCM float64) ScaleFactor {
	if len(corners) != 4 || knownEdgeCM <= 0 {
		return ScaleFactor{}
	}

	total := 0.0
	for i := 0; i < 4; i++ {
		edge := Distance(corners[i], corners[(i+1)%4])
		if edge <= 0 {
			return ScaleFactor{}
		}
		total += edge
	}

	return ScaleFactor{
		PixelsPerCM: (total / 4) / knownEdgeCM,
		Calibrated:  true,
	}
}

// Calibrate derives the scale factor for this marker using the standard
// marker edge length.
func (m FiducialMarker) Calibrate() ScaleFactor {
	return Calibrate(m.Corners[:], MarkerSizeCM)
}

// ToCM converts a pixel distance to centimeters. The second return value is
// false when the scale is uncalibrated; the zero distance returned in that
// case must not be treated as a real measurement.
func (s ScaleFactor) ToCM(pixels float64) (float64, bool) {
	if !s.Calibrated || s.PixelsPerCM <= 0 {
		return 0, false
	}
	return pixels / s.PixelsPerCM, true
}
