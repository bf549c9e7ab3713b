// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the QuickVote API.

# Handler Types

Each handler is a struct wrapping one of the voting services:

  - CandidateHandler: roster listing and maintenance
  - VotingHandler: vote casting and the audit log
  - ResultsHandler: tallies and percentages
  - ExportHandler: xlsx download of the audit log and tallies
  - LiveHandler: change signals over WebSocket and SSE

Handlers are created via constructor functions:

	candidateHandler := handlers.NewCandidateHandler(voting.NewRegistry(db, hub))

# Candidates

	GET    /api/candidates      → ListCandidates (with vote counts)
	POST   /api/candidates      → CreateCandidate
	PUT    /api/candidates/{id} → UpdateCandidate
	DELETE /api/candidates/{id} → DeleteCandidate ({message, changes})

Deleting a candidate leaves its votes in place.

# Voting

	POST /api/vote          → CastVote
	GET  /api/votes/details → ListVoteDetails

A voter is identified by network address (see middleware.GetClientIP). A
second vote from the same address gets 400 with code "already_voted".

# Results

	GET /api/results         → GetResults
	GET /api/results/summary → GetSummary
	GET /api/export/excel    → ExportExcel

# Live Updates

	GET /ws          → WebSocket
	GET /api/events  → Stream

Both transports send {"type": ..., "timestamp": ...} whenever the roster or
the ledger changes. Clients re-fetch what they display.
*/
package handlers
