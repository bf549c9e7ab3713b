// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/models"
	"github.com/danielhkuo/quickvote/voting"
)

type VotingHandler struct {
	ledger *voting.Ledger
}

func NewVotingHandler(ledger *voting.Ledger) *VotingHandler {
	return &VotingHandler{ledger: ledger}
}

// CastVote handles POST /api/vote
// The voter is identified by network address only.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	clientIP := middleware.GetClientIP(r)

	voteID, err := h.ledger.Cast(r.Context(), req.CandidateID, clientIP)
	if errors.Is(err, voting.ErrAlreadyVoted) {
		slog.Info("duplicate vote blocked", "remote", clientIP, "candidate_id", req.CandidateID)
	}
	if err != nil {
		writeServiceError(w, err, "cast vote")
		return
	}

	slog.Info("vote submitted", "vote_id", voteID, "candidate_id", req.CandidateID)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Message: "Vote submitted successfully",
		VoteID:  voteID,
	})
}

// ListVoteDetails handles GET /api/votes/details
func (h *VotingHandler) ListVoteDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.ledger.ListDetailed(r.Context())
	if err != nil {
		writeServiceError(w, err, "list vote details")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, details)
}
