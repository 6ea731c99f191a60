package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/jobmatch/internal/types"
)

// StoredProfile bundles a candidate profile with its experience entries for
// persistence as one document.
type StoredProfile struct {
	Candidate  types.CandidateProfile  `json:"candidate"`
	Experience []types.ExperienceEntry `json:"experience,omitempty"`
}

// SaveProfile upserts a named candidate profile.
func (db *DB) SaveProfile(ctx context.Context, name string, profile *StoredProfile) error {
	content, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (name, content) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET content = $2, updated_at = NOW()`,
		name, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", name, err)
	}
	return nil
}

// LoadProfile fetches a named candidate profile.
func (db *DB) LoadProfile(ctx context.Context, name string) (*StoredProfile, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profiles WHERE name = $1`, name,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", name, err)
	}

	var profile StoredProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", name, err)
	}
	return &profile, nil
}
