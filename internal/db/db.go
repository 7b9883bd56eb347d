// Package db provides PostgreSQL persistence for completed resume analyses.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ErrNotFound is returned when an operation targets an analysis that does
// not exist.
var ErrNotFound = errors.New("analysis not found")

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the analyses table when it does not exist yet.
// Persistence is optional, so the schema is applied lazily at startup
// rather than through a separate migration step.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			filename TEXT NOT NULL,
			parsed JSONB NOT NULL,
			report JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// AnalysisRecord is a stored analysis with its parsed resume and report.
type AnalysisRecord struct {
	ID        uuid.UUID                 `json:"id"`
	Filename  string                    `json:"filename"`
	Parsed    *types.ParsedResumeRecord `json:"parsed"`
	Report    *types.AnalysisReport     `json:"report,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

// SaveAnalysis stores a parsed resume and its report, returning the new ID.
func (db *DB) SaveAnalysis(ctx context.Context, filename string, parsed *types.ParsedResumeRecord, report *types.AnalysisReport) (uuid.UUID, error) {
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	var reportJSON []byte
	if report != nil {
		reportJSON, err = json.Marshal(report)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (filename, parsed, report)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		filename, parsedJSON, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns (nil, nil) when no
// row exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var parsedJSON, reportJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, parsed, report, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Filename, &parsedJSON, &reportJSON, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(parsedJSON, &rec.Parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
	}
	if len(reportJSON) > 0 {
		if err := json.Unmarshal(reportJSON, &rec.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
	}
	return &rec, nil
}

// AnalysisSummary is a lightweight view of a stored analysis for listing.
type AnalysisSummary struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	Filename string
	Limit    int
}

// ListAnalyses retrieves recent analyses, newest first, with optional filters.
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, filename, COALESCE(parsed->>'email', ''), created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Filename != "" {
		query += fmt.Sprintf(" AND filename ILIKE $%d", argNum)
		args = append(args, "%"+filters.Filename+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.Filename, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis removes a stored analysis by ID.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
