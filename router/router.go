// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickvote/cliparse"
	"github.com/danielhkuo/quickvote/handlers"
	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/notify"
	"github.com/danielhkuo/quickvote/voting"
)

// NewRouter wires the voting services to their HTTP routes. Ledger metrics
// are registered on reg, which is also what /metrics serves.
func NewRouter(db *sql.DB, hub *notify.Notifier, reg *prometheus.Registry, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	// Initialize services and handlers
	registry := voting.NewRegistry(db, hub)
	ledger := voting.NewLedger(db, hub, reg)
	aggregator := voting.NewAggregator(db)

	candidateHandler := handlers.NewCandidateHandler(registry)
	votingHandler := handlers.NewVotingHandler(ledger)
	resultsHandler := handlers.NewResultsHandler(aggregator)
	exportHandler := handlers.NewExportHandler(ledger, aggregator)
	liveHandler := handlers.NewLiveHandler(hub)

	admin := middleware.RequireAdmin(cfg.AdminKey)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/api", func(r chi.Router) {
		// Roster (mutations are admin operations)
		r.Get("/candidates", middleware.WithLogging(candidateHandler.ListCandidates))
		r.Post("/candidates", middleware.WithLogging(admin(candidateHandler.CreateCandidate)))
		r.Put("/candidates/{id}", middleware.WithLogging(admin(candidateHandler.UpdateCandidate)))
		r.Delete("/candidates/{id}", middleware.WithLogging(admin(candidateHandler.DeleteCandidate)))

		// Voting (public)
		r.Post("/vote", middleware.WithLogging(votingHandler.CastVote))

		// Results (public)
		r.Get("/results", middleware.WithLogging(resultsHandler.GetResults))
		r.Get("/results/summary", middleware.WithLogging(resultsHandler.GetSummary))

		// Audit (admin)
		r.Get("/votes/details", middleware.WithLogging(admin(votingHandler.ListVoteDetails)))
		r.Get("/export/excel", middleware.WithLogging(admin(exportHandler.ExportExcel)))

		// Live updates over server-sent events
		r.Get("/events", liveHandler.Stream)
	})

	r.Get("/ws", liveHandler.WebSocket)

	if cfg.PublicDir != "" {
		// Ballot and admin pages
		r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))
	} else {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("quickvote API v1"))
		})
	}

	return r
}
