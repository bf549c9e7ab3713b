// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/models"
	"github.com/danielhkuo/quickvote/voting"
)

type CandidateHandler struct {
	registry *voting.Registry
}

func NewCandidateHandler(registry *voting.Registry) *CandidateHandler {
	return &CandidateHandler{registry: registry}
}

// ListCandidates handles GET /api/candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.registry.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "list candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// CreateCandidate handles POST /api/candidates
func (h *CandidateHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.CandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.registry.Add(r.Context(), req.Name, req.Description, req.ImageURL)
	if err != nil {
		writeServiceError(w, err, "add candidate")
		return
	}

	slog.Info("candidate added", "candidate_id", candidate.ID, "name", candidate.Name)

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// UpdateCandidate handles PUT /api/candidates/{id}
func (h *CandidateHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := candidateID(r)
	if !ok {
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, models.CodeValidation, "Invalid candidate ID")
		return
	}

	var req models.CandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.registry.Update(r.Context(), id, req.Name, req.Description, req.ImageURL)
	if err != nil {
		writeServiceError(w, err, "update candidate")
		return
	}

	slog.Info("candidate updated", "candidate_id", id)

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// DeleteCandidate handles DELETE /api/candidates/{id}
// Deleting an unknown candidate succeeds with zero changes.
func (h *CandidateHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := candidateID(r)
	if !ok {
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, models.CodeValidation, "Invalid candidate ID")
		return
	}

	changes, err := h.registry.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "delete candidate")
		return
	}

	slog.Info("candidate deleted", "candidate_id", id, "changes", changes)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteCandidateResponse{
		Message: "Candidate deleted successfully",
		Changes: changes,
	})
}
