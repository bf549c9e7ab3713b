// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/danielhkuo/quickvote/models"
)

// Ledger is the append-only vote log. Admission (one vote per address) is
// enforced by the UNIQUE constraint on votes.ip_address, so the check and the
// insert are a single statement.
type Ledger struct {
	db       *sql.DB
	notifier Notifier
	metrics  *ledgerMetrics
}

type ledgerMetrics struct {
	accepted prometheus.Counter
	rejected *prometheus.CounterVec
}

func NewLedger(db *sql.DB, notifier Notifier, promRegistry prometheus.Registerer) *Ledger {
	l := &Ledger{db: db, notifier: orNop(notifier)}
	if promRegistry != nil {
		factory := promauto.With(promRegistry)
		l.metrics = &ledgerMetrics{
			accepted: factory.NewCounter(prometheus.CounterOpts{
				Name: "quickvote_votes_accepted_total",
				Help: "Votes admitted to the ledger",
			}),
			rejected: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "quickvote_votes_rejected_total",
				Help: "Vote attempts refused, by reason",
			}, []string{"reason"}),
		}
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "quickvote_ledger_votes",
			Help: "Votes stored in the ledger, orphans included",
		}, func() float64 {
			n, err := l.Count(context.Background())
			if err != nil {
				return 0
			}
			return float64(n)
		})
	}
	return l
}

// Cast records a vote for candidateID from voterAddress and returns the new
// vote id. The candidate is not required to exist.
func (l *Ledger) Cast(ctx context.Context, candidateID int64, voterAddress string) (int64, error) {
	if candidateID == 0 {
		l.reject("validation")
		return 0, validationError("candidateId", "Candidate ID is required")
	}
	voterAddress = strings.TrimSpace(voterAddress)
	if voterAddress == "" {
		l.reject("validation")
		return 0, validationError("ip_address", "Voter address is required")
	}

	var voteID int64
	err := l.db.QueryRowContext(ctx, `
		INSERT INTO votes (candidate_id, ip_address, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`, candidateID, voterAddress, time.Now().UTC()).Scan(&voteID)
	if err != nil {
		if isUniqueViolation(err) {
			l.reject("already_voted")
			return 0, ErrAlreadyVoted
		}
		l.reject("storage")
		return 0, storageError("insert vote", err)
	}

	if l.metrics != nil {
		l.metrics.accepted.Inc()
	}

	l.notifier.Notify(models.EventVoteSubmitted)
	l.notifier.Notify(models.EventCandidatesUpdated)

	return voteID, nil
}

func (l *Ledger) reject(reason string) {
	if l.metrics != nil {
		l.metrics.rejected.WithLabelValues(reason).Inc()
	}
}

// ListDetailed returns the audit log, newest first. Votes whose candidate
// has been deleted are omitted.
func (l *Ledger) ListDetailed(ctx context.Context) ([]models.VoteDetail, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT v.ip_address, c.name, v.timestamp
		FROM votes v
		JOIN candidates c ON v.candidate_id = c.id
		ORDER BY v.timestamp DESC, v.id DESC
	`)
	if err != nil {
		return nil, storageError("list votes", err)
	}
	defer rows.Close()

	details := []models.VoteDetail{}
	for rows.Next() {
		var d models.VoteDetail
		var ts timestamp
		if err := rows.Scan(&d.IPAddress, &d.CandidateName, &ts); err != nil {
			return nil, storageError("scan vote", err)
		}
		d.Timestamp = ts.Time
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list votes", err)
	}

	return details, nil
}

// Count returns the ledger size, orphaned votes included.
func (l *Ledger) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&n); err != nil {
		return 0, storageError("count votes", err)
	}
	return n, nil
}
