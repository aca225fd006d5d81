package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve sources.
const (
	SourceExternal = "external" // solved by the external search service
	SourceLayers   = "layers"   // scripted layer-by-layer player
)

// Solve is one recorded solver run.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	CubeString string
	Solution   string
	MoveCount  int
	Source     string
}

// SolveRepository provides CRUD operations for solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(cubeString, solution string, moveCount int, source string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, cube_string, solution, move_count, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), cubeString, solution, moveCount, source)
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get returns a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, cube_string, solution, move_count, source
		FROM solves WHERE solve_id = ?
	`, solveID)

	var s Solve
	var createdAt string
	if err := row.Scan(&s.SolveID, &createdAt, &s.CubeString, &s.Solution, &s.MoveCount, &s.Source); err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}
	s.CreatedAt = t

	return &s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, cube_string, solution, move_count, source
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAt string
		if err := rows.Scan(&s.SolveID, &createdAt, &s.CubeString, &s.Solution, &s.MoveCount, &s.Source); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
		}
		s.CreatedAt = t
		solves = append(solves, s)
	}

	return solves, rows.Err()
}
