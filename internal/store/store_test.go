package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/handmetrics/internal/analysis"
	"github.com/ayusman/handmetrics/internal/measure"
)

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	// Verify the database file doesn't exist yet
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	tables := []string{"runs", "run_sources", "measurements"}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q should exist: %v", table, err)
		}
	}
}

func TestRunRepository_CreateAndList(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	sets := []analysis.MeasurementSet{
		{
			SourceID: "hand1.json",
			Scale:    measure.ScaleFactor{PixelsPerCM: 10, Calibrated: true},
			Chains: map[string][]measure.SegmentDistance{
				"thumb": {
					{FromJoint: 0, ToJoint: 1, PixelDistance: 35, CMDistance: 3.5, CMKnown: true},
					{FromJoint: 1, ToJoint: 2, PixelDistance: 49, CMDistance: 4.9, CMKnown: true},
				},
			},
		},
		{
			SourceID: "hand2.json",
			Chains: map[string][]measure.SegmentDistance{
				"index": {
					{FromJoint: 0, ToJoint: 1, PixelDistance: 22},
				},
			},
		},
	}

	runID, err := s.Runs().Create(sets)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run ID")
	}

	runs, err := s.Runs().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("run ID = %q, want %q", runs[0].ID, runID)
	}
	if runs[0].FilesAnalyzed != 2 {
		t.Errorf("FilesAnalyzed = %d, want 2", runs[0].FilesAnalyzed)
	}
}

func TestRunRepository_Measurements(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	sets := []analysis.MeasurementSet{
		{
			SourceID: "hand1.json",
			Chains: map[string][]measure.SegmentDistance{
				"thumb": {
					{FromJoint: 0, ToJoint: 1, PixelDistance: 35, CMDistance: 3.5, CMKnown: true},
					// Uncalibrated distance persists as NULL cm
					{FromJoint: 1, ToJoint: 2, PixelDistance: 49},
				},
			},
		},
	}

	runID, err := s.Runs().Create(sets)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	measurements, err := s.Runs().Measurements(runID)
	if err != nil {
		t.Fatalf("Measurements() error = %v", err)
	}
	if len(measurements) != 2 {
		t.Fatalf("got %d measurements, want 2", len(measurements))
	}

	first := measurements[0]
	if first.Finger != "thumb" || first.FromJoint != 0 {
		t.Errorf("first measurement = %+v, want thumb joint 0", first)
	}
	if first.CMDistance == nil || *first.CMDistance != 3.5 {
		t.Errorf("first CMDistance = %v, want 3.5", first.CMDistance)
	}

	second := measurements[1]
	if second.CMDistance != nil {
		t.Errorf("second CMDistance = %v, want nil for uncalibrated segment", *second.CMDistance)
	}
}

func TestRunRepository_MeasurementsUnknownRun(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	measurements, err := s.Runs().Measurements("no-such-run")
	if err != nil {
		t.Fatalf("Measurements() error = %v", err)
	}
	if len(measurements) != 0 {
		t.Errorf("got %d measurements, want 0", len(measurements))
	}
}
