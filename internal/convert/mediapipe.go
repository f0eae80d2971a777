// Package convert maps manually annotated hand landmarks onto the MediaPipe
// 21-point hand landmark layout.
package convert

import (
	"github.com/ayusman/handmetrics/internal/measure"
)

// MediaPipe hand landmark layout: wrist at index 0, then four points per
// finger (MCP, PIP, DIP, Tip) starting at the base index below.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
var fingerBase = map[string]int{
	measure.Thumb:  1,
	measure.Index:  5,
	measure.Middle: 9,
	measure.Ring:   13,
	measure.Pinky:  17,
}

// PointsPerFinger is the number of MediaPipe landmarks per finger.
const PointsPerFinger = 4

// Default image dimensions used to normalize pixel coordinates when the
// source image size is unknown.
const (
	DefaultImageWidth  = 1920
	DefaultImageHeight = 1080
)

// Landmark is one hand landmark in MediaPipe format, with coordinates
// normalized to the 0-1 range.
type Landmark struct {
	Index      int     `json:"index"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Document is the serialized MediaPipe landmark file.
type Document struct {
	Format        string     `json:"format"`
	HandLandmarks []Landmark `json:"hand_landmarks"`
	Description   string     `json:"description"`
}

// ToMediaPipe converts per-finger pixel points into normalized MediaPipe
// landmarks. The wrist (index 0) is approximated from the thumb base point
// when present. Fingers with fewer than four points contribute only the
// points they have.
func ToMediaPipe(points map[string][]measure.Point2D, width, height int) []Landmark {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}

	var landmarks []Landmark

	if thumb := points[measure.Thumb]; len(thumb) > 0 {
		landmarks = append(landmarks, normalized(0, thumb[0], width, height))
	}

	for _, finger := range measure.Fingers() {
		base := fingerBase[finger]
		for i, p := range points[finger] {
			if i >= PointsPerFinger {
				break
			}
			landmarks = append(landmarks, normalized(base+i, p, width, height))
		}
	}

	return landmarks
}

// NewDocument wraps converted landmarks in the serialization envelope.
func NewDocument(landmarks []Landmark) Document {
	return Document{
		Format:        "mediapipe_hand_landmarks",
		HandLandmarks: landmarks,
		Description:   "Hand landmarks in MediaPipe format (21 points)",
	}
}

func normalized(index int, p measure.Point2D, width, height int) Landmark {
	return Landmark{
		Index:      index,
		X:          p.X / float64(width),
		Y:          p.Y / float64(height),
		Z:          0,
		Visibility: 1,
	}
}
