package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solver session.
type Solve struct {
	SolveID       string
	Dims          int
	ShuffleCount  int
	RotationCount int
	DurationMs    int64
	Seed          int64
	StartedAt     time.Time
	Notes         *string
}

// SolveRepository provides CRUD operations for solve sessions.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a completed solve session and returns its ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	startedAt := s.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, dims, shuffle_count, rotation_count, duration_ms, seed, started_at, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, s.Dims, s.ShuffleCount, s.RotationCount, s.DurationMs, s.Seed,
		startedAt.UTC().Format(time.RFC3339), s.Notes)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil if not found.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var startedAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, dims, shuffle_count, rotation_count, duration_ms, seed, started_at, notes
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &s.Dims, &s.ShuffleCount, &s.RotationCount,
		&s.DurationMs, &s.Seed, &startedAtStr, &s.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	return &s, nil
}

// GetLast retrieves the most recent solve. Returns nil if none exist.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, dims, shuffle_count, rotation_count, duration_ms, seed, started_at, notes
		FROM solves
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var startedAtStr string

		err := rows.Scan(
			&s.SolveID, &s.Dims, &s.ShuffleCount, &s.RotationCount,
			&s.DurationMs, &s.Seed, &startedAtStr, &s.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Delete removes a solve record.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
