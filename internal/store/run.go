package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/handmetrics/internal/analysis"
	"github.com/ayusman/handmetrics/internal/measure"
)

// Run represents one persisted aggregation run.
type Run struct {
	ID            string    `json:"id"`
	FilesAnalyzed int       `json:"files_analyzed"`
	CreatedAt     time.Time `json:"created_at"`
}

// Measurement is one persisted segment distance. CMDistance is nil when the
// sample's scale was uncalibrated.
type Measurement struct {
	Source        string   `json:"source"`
	Finger        string   `json:"finger"`
	FromJoint     int      `json:"from_joint"`
	ToJoint       int      `json:"to_joint"`
	PixelDistance float64  `json:"pixel_distance"`
	CMDistance    *float64 `json:"cm_distance"`
}

// RunRepository provides persistence operations for aggregation runs.
type RunRepository struct {
	db *sql.DB
}

// Runs returns the run repository for this store.
func (s *Store) Runs() *RunRepository {
	return &RunRepository{db: s.db}
}

// Create persists the sets of one aggregation run in a single transaction
// and returns the generated run ID.
func (r *RunRepository) Create(sets []analysis.MeasurementSet) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	runID := uuid.New().String()
	if _, err := tx.Exec(
		`INSERT INTO runs (id, files_analyzed) VALUES (?, ?)`,
		runID, len(sets),
	); err != nil {
		return "", err
	}

	srcStmt, err := tx.Prepare(`INSERT INTO run_sources (run_id, source) VALUES (?, ?)`)
	if err != nil {
		return "", err
	}
	defer srcStmt.Close()

	segStmt, err := tx.Prepare(
		`INSERT INTO measurements (run_id, source, finger, from_joint, to_joint, pixel_distance, cm_distance)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer segStmt.Close()

	for _, set := range sets {
		if _, err := srcStmt.Exec(runID, set.SourceID); err != nil {
			return "", err
		}
		for _, finger := range measure.Fingers() {
			for _, seg := range set.Chains[finger] {
				var cm interface{}
				if seg.CMKnown {
					cm = seg.CMDistance
				}
				if _, err := segStmt.Exec(runID, set.SourceID, finger,
					seg.FromJoint, seg.ToJoint, seg.PixelDistance, cm); err != nil {
					return "", err
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// List retrieves all persisted runs, newest first.
func (r *RunRepository) List() ([]Run, error) {
	rows, err := r.db.Query(
		`SELECT id, files_analyzed, created_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.FilesAnalyzed, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// Measurements retrieves all measurements of one run in stable
// source/finger/joint order.
func (r *RunRepository) Measurements(runID string) ([]Measurement, error) {
	rows, err := r.db.Query(
		`SELECT source, finger, from_joint, to_joint, pixel_distance, cm_distance
		 FROM measurements
		 WHERE run_id = ?
		 ORDER BY source, finger, from_joint`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		var cm sql.NullFloat64
		if err := rows.Scan(&m.Source, &m.Finger, &m.FromJoint, &m.ToJoint, &m.PixelDistance, &cm); err != nil {
			return nil, err
		}
		if cm.Valid {
			v := cm.Float64
			m.CMDistance = &v
		}
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return measurements, nil
}
