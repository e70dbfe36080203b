// Package store persists triage assessments and their staff-review state in
// sqlite. The engine itself never touches storage; the transport layer saves
// results here so staff can review them later.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/crimson-sun/triage/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS triage_assessments (
	id             TEXT PRIMARY KEY,
	patient_id     TEXT NOT NULL,
	symptoms       TEXT NOT NULL,
	severity       TEXT NOT NULL,
	recommendation TEXT NOT NULL,
	confidence     REAL NOT NULL,
	created_at     DATETIME NOT NULL,
	reviewed_by    TEXT NOT NULL DEFAULT '',
	is_reviewed    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_assessments_patient ON triage_assessments(patient_id);
CREATE INDEX IF NOT EXISTS idx_assessments_reviewed ON triage_assessments(is_reviewed);
CREATE INDEX IF NOT EXISTS idx_assessments_created ON triage_assessments(created_at);
`

// Stats summarizes assessment volume and review progress.
type Stats struct {
	Total      int
	Reviewed   int
	Pending    int
	BySeverity map[model.Severity]int
}

// Store is a sqlite-backed assessment repository.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a new assessment record. A missing ID gets a fresh UUID and a
// zero CreatedAt gets the current time; both are written back to rec.
func (s *Store) Save(ctx context.Context, rec *model.AssessmentRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO triage_assessments
		 (id, patient_id, symptoms, severity, recommendation, confidence, created_at, reviewed_by, is_reviewed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PatientID, rec.Symptoms,
		string(rec.Assessment.Severity), rec.Assessment.Recommendation, rec.Assessment.Confidence,
		rec.CreatedAt, rec.ReviewedBy, rec.IsReviewed,
	)
	if err != nil {
		return fmt.Errorf("store: saving assessment: %w", err)
	}
	return nil
}

// GetByID fetches one record. Returns (nil, nil) when no record exists.
func (s *Store) GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, patient_id, symptoms, severity, recommendation, confidence, created_at, reviewed_by, is_reviewed
		 FROM triage_assessments WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return rec, nil
}

// ListByPatient returns a patient's assessments, newest first.
func (s *Store) ListByPatient(ctx context.Context, patientID string) ([]model.AssessmentRecord, error) {
	return s.list(ctx,
		`SELECT id, patient_id, symptoms, severity, recommendation, confidence, created_at, reviewed_by, is_reviewed
		 FROM triage_assessments WHERE patient_id = ? ORDER BY created_at DESC`, patientID)
}

// ListPending returns all assessments awaiting staff review, newest first.
func (s *Store) ListPending(ctx context.Context) ([]model.AssessmentRecord, error) {
	return s.list(ctx,
		`SELECT id, patient_id, symptoms, severity, recommendation, confidence, created_at, reviewed_by, is_reviewed
		 FROM triage_assessments WHERE is_reviewed = 0 ORDER BY created_at DESC`)
}

// MarkReviewed records that a staff member reviewed an assessment.
// Unknown ids are an error.
func (s *Store) MarkReviewed(ctx context.Context, id, staffID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE triage_assessments SET is_reviewed = 1, reviewed_by = ? WHERE id = ?`,
		staffID, id)
	if err != nil {
		return fmt.Errorf("store: marking reviewed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: marking reviewed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store: no assessment with id %s", id)
	}
	return nil
}

// Stats aggregates total/reviewed/pending counts and per-severity volume.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{BySeverity: make(map[model.Severity]int)}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_reviewed), 0) FROM triage_assessments`).
		Scan(&stats.Total, &stats.Reviewed)
	if err != nil {
		return Stats{}, fmt.Errorf("store: counting assessments: %w", err)
	}
	stats.Pending = stats.Total - stats.Reviewed

	rows, err := s.db.QueryContext(ctx,
		`SELECT severity, COUNT(*) FROM triage_assessments GROUP BY severity`)
	if err != nil {
		return Stats{}, fmt.Errorf("store: counting severities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return Stats{}, fmt.Errorf("store: %w", err)
		}
		stats.BySeverity[model.Severity(severity)] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("store: %w", err)
	}
	return stats, nil
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]model.AssessmentRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer rows.Close()

	var recs []model.AssessmentRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return recs, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*model.AssessmentRecord, error) {
	var rec model.AssessmentRecord
	var severity string
	err := row.Scan(&rec.ID, &rec.PatientID, &rec.Symptoms,
		&severity, &rec.Assessment.Recommendation, &rec.Assessment.Confidence,
		&rec.CreatedAt, &rec.ReviewedBy, &rec.IsReviewed)
	if err != nil {
		return nil, err
	}
	rec.Assessment.Severity = model.Severity(severity)
	return &rec, nil
}
