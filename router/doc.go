// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the QuickVote API.

# Route Registration

NewRouter builds a chi router with every endpoint:

	reg := prometheus.NewRegistry()
	hub := notify.New(reg, logger)
	handler := router.NewRouter(db, hub, reg, cfg)

# Endpoints

Operations:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics

Roster (mutations require X-Admin-Key when ADMIN_KEY is set):

	GET    /api/candidates      - List with vote counts
	POST   /api/candidates      - Add
	PUT    /api/candidates/{id} - Update
	DELETE /api/candidates/{id} - Delete

Voting and results (public):

	POST /api/vote            - Cast a vote
	GET  /api/results         - Tallies with percentages
	GET  /api/results/summary - Tallies plus total

Audit (requires X-Admin-Key when ADMIN_KEY is set):

	GET /api/votes/details - Audit log
	GET /api/export/excel  - xlsx download

Live updates:

	GET /ws         - WebSocket
	GET /api/events - Server-sent events

When PublicDir is configured, every other path is served from it.
*/
package router
