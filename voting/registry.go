// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/danielhkuo/quickvote/models"
)

// Registry is the candidate roster.
type Registry struct {
	db       *sql.DB
	notifier Notifier
}

func NewRegistry(db *sql.DB, notifier Notifier) *Registry {
	return &Registry{db: db, notifier: orNop(notifier)}
}

// List returns every candidate with its current vote count, ordered by name.
func (r *Registry) List(ctx context.Context) ([]models.CandidateWithCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.description, c.image_url, c.created_at, COUNT(v.id) AS vote_count
		FROM candidates c
		LEFT JOIN votes v ON c.id = v.candidate_id
		GROUP BY c.id, c.name, c.description, c.image_url, c.created_at
		ORDER BY c.name, c.id
	`)
	if err != nil {
		return nil, storageError("list candidates", err)
	}
	defer rows.Close()

	candidates := []models.CandidateWithCount{}
	for rows.Next() {
		var c models.CandidateWithCount
		var created timestamp
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &created, &c.VoteCount); err != nil {
			return nil, storageError("scan candidate", err)
		}
		c.CreatedAt = created.Time
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list candidates", err)
	}

	return candidates, nil
}

// Get returns a single candidate.
func (r *Registry) Get(ctx context.Context, id int64) (models.Candidate, error) {
	var c models.Candidate
	var created timestamp
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, image_url, created_at
		FROM candidates
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &created)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, storageError("get candidate", err)
	}
	c.CreatedAt = created.Time

	return c, nil
}

// Add creates a candidate. A blank name is rejected before any write.
func (r *Registry) Add(ctx context.Context, name, description, imageURL string) (models.Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Candidate{}, validationError("name", "Candidate name is required")
	}

	c := models.Candidate{
		Name:        name,
		Description: strings.TrimSpace(description),
		ImageURL:    strings.TrimSpace(imageURL),
		CreatedAt:   time.Now().UTC(),
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO candidates (name, description, image_url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Name, c.Description, c.ImageURL, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return models.Candidate{}, storageError("insert candidate", err)
	}

	r.notifier.Notify(models.EventCandidatesUpdated)

	return c, nil
}

// Update overwrites the mutable fields of an existing candidate.
func (r *Registry) Update(ctx context.Context, id int64, name, description, imageURL string) (models.Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Candidate{}, validationError("name", "Candidate name is required")
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE candidates
		SET name = $1, description = $2, image_url = $3
		WHERE id = $4
	`, name, strings.TrimSpace(description), strings.TrimSpace(imageURL), id)
	if err != nil {
		return models.Candidate{}, storageError("update candidate", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Candidate{}, storageError("update candidate", err)
	}
	if affected == 0 {
		return models.Candidate{}, ErrNotFound
	}

	c, err := r.Get(ctx, id)
	if err != nil {
		return models.Candidate{}, err
	}

	r.notifier.Notify(models.EventCandidatesUpdated)

	return c, nil
}

// Delete removes a candidate and reports how many rows went away (0 or 1).
// Votes cast for the candidate are left untouched.
func (r *Registry) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return 0, storageError("delete candidate", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, storageError("delete candidate", err)
	}

	r.notifier.Notify(models.EventCandidatesUpdated)

	return affected, nil
}
