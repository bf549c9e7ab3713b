// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"math"

	"github.com/danielhkuo/quickvote/models"
)

// Aggregator derives tallies from the ledger on every call.
type Aggregator struct {
	db *sql.DB
}

func NewAggregator(db *sql.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Compute returns one row per candidate, most votes first, ties by name.
// Percentages are relative to the votes counted in the returned rows.
func (a *Aggregator) Compute(ctx context.Context) ([]models.ResultRow, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.description, c.image_url, COUNT(v.id) AS vote_count
		FROM candidates c
		LEFT JOIN votes v ON c.id = v.candidate_id
		GROUP BY c.id, c.name, c.description, c.image_url
		ORDER BY vote_count DESC, c.name, c.id
	`)
	if err != nil {
		return nil, storageError("compute results", err)
	}
	defer rows.Close()

	results := []models.ResultRow{}
	var total int64
	for rows.Next() {
		var r models.ResultRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.ImageURL, &r.VoteCount); err != nil {
			return nil, storageError("scan result", err)
		}
		total += r.VoteCount
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("compute results", err)
	}

	for i := range results {
		results[i].Percentage = Percentage(results[i].VoteCount, total)
	}

	return results, nil
}

// Summary is Compute plus the total it was computed against.
func (a *Aggregator) Summary(ctx context.Context) (models.ResultSummary, error) {
	rows, err := a.Compute(ctx)
	if err != nil {
		return models.ResultSummary{}, err
	}

	summary := models.ResultSummary{Candidates: rows}
	for _, r := range rows {
		summary.TotalVotes += r.VoteCount
	}
	return summary, nil
}

// Percentage is count/total*100 rounded to one decimal, or 0 when nothing
// has been counted.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}
