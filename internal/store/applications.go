package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Application is one tracked job application.
type Application struct {
	ID         uuid.UUID `json:"id"`
	Company    string    `json:"company"`
	Role       string    `json:"role"`
	Location   string    `json:"location,omitempty"`
	Status     string    `json:"status"`
	MatchScore float64   `json:"match_score"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Application statuses follow the original tracker's lifecycle.
const (
	StatusTracked     = "tracked"
	StatusApplied     = "applied"
	StatusInterviewed = "interviewed"
	StatusOffer       = "offer"
	StatusRejected    = "rejected"
)

// CreateApplication inserts a tracked application and returns its ID.
func (db *DB) CreateApplication(ctx context.Context, app *Application) (uuid.UUID, error) {
	id := uuid.New()
	status := app.Status
	if status == "" {
		status = StatusTracked
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications (id, company, role, location, status, match_score, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, app.Company, app.Role, app.Location, status, app.MatchScore, app.Notes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication fetches one application by ID.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var app Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, company, role, location, status, match_score, notes, created_at, updated_at
		 FROM applications WHERE id = $1`, id,
	).Scan(&app.ID, &app.Company, &app.Role, &app.Location, &app.Status,
		&app.MatchScore, &app.Notes, &app.CreatedAt, &app.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ListApplications returns applications newest-first, optionally filtered
// by status (empty status = all).
func (db *DB) ListApplications(ctx context.Context, status string) ([]Application, error) {
	query := `SELECT id, company, role, location, status, match_score, notes, created_at, updated_at
	          FROM applications`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.Company, &app.Role, &app.Location, &app.Status,
			&app.MatchScore, &app.Notes, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application through its lifecycle.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
