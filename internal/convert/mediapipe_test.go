package convert

import (
	"math"
	"testing"

	"github.com/ayusman/handmetrics/internal/measure"
)

func TestToMediaPipe_IndexLayout(t *testing.T) {
	points := map[string][]measure.Point2D{
		"thumb": {{X: 100, Y: 200}, {X: 110, Y: 190}, {X: 120, Y: 180}, {X: 130, Y: 170}},
		"index": {{X: 200, Y: 200}, {X: 210, Y: 190}},
	}

	landmarks := ToMediaPipe(points, 1000, 1000)

	// Wrist + 4 thumb points + 2 index points
	if len(landmarks) != 7 {
		t.Fatalf("got %d landmarks, want 7", len(landmarks))
	}

	wantIndices := []int{0, 1, 2, 3, 4, 5, 6}
	for i, lm := range landmarks {
		if lm.Index != wantIndices[i] {
			t.Errorf("landmark %d index = %d, want %d", i, lm.Index, wantIndices[i])
		}
	}
}

func TestToMediaPipe_WristFromThumbBase(t *testing.T) {
	points := map[string][]measure.Point2D{
		"thumb": {{X: 480, Y: 540}},
	}

	landmarks := ToMediaPipe(points, 1920, 1080)
	if len(landmarks) != 2 {
		t.Fatalf("got %d landmarks, want 2 (wrist + thumb base)", len(landmarks))
	}

	wrist := landmarks[0]
	if wrist.Index != 0 {
		t.Errorf("wrist index = %d, want 0", wrist.Index)
	}
	if math.Abs(wrist.X-0.25) > 1e-9 {
		t.Errorf("wrist X = %f, want 0.25", wrist.X)
	}
	if math.Abs(wrist.Y-0.5) > 1e-9 {
		t.Errorf("wrist Y = %f, want 0.5", wrist.Y)
	}
	if wrist.Visibility != 1 {
		t.Errorf("wrist visibility = %f, want 1", wrist.Visibility)
	}
}

func TestToMediaPipe_FingerBaseIndices(t *testing.T) {
	p := measure.Point2D{X: 1, Y: 1}
	points := map[string][]measure.Point2D{
		"pinky": {p},
	}

	landmarks := ToMediaPipe(points, 100, 100)
	if len(landmarks) != 1 {
		t.Fatalf("got %d landmarks, want 1", len(landmarks))
	}
	if landmarks[0].Index != 17 {
		t.Errorf("pinky base index = %d, want 17", landmarks[0].Index)
	}
}

func TestToMediaPipe_CapsAtFourPointsPerFinger(t *testing.T) {
	points := map[string][]measure.Point2D{
		"middle": {{}, {}, {}, {}, {X: 99, Y: 99}},
	}

	landmarks := ToMediaPipe(points, 100, 100)
	if len(landmarks) != 4 {
		t.Errorf("got %d landmarks, want 4 (extra points dropped)", len(landmarks))
	}
}

func TestToMediaPipe_DefaultDimensions(t *testing.T) {
	points := map[string][]measure.Point2D{
		"index": {{X: 1920, Y: 1080}},
	}

	landmarks := ToMediaPipe(points, 0, 0)
	if len(landmarks) != 1 {
		t.Fatalf("got %d landmarks, want 1", len(landmarks))
	}
	if landmarks[0].X != 1 || landmarks[0].Y != 1 {
		t.Errorf("normalized point = (%f, %f), want (1, 1)", landmarks[0].X, landmarks[0].Y)
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(nil)
	if doc.Format != "mediapipe_hand_landmarks" {
		t.Errorf("Format = %q, want mediapipe_hand_landmarks", doc.Format)
	}
}
