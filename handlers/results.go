// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/voting"
)

type ResultsHandler struct {
	aggregator *voting.Aggregator
}

func NewResultsHandler(aggregator *voting.Aggregator) *ResultsHandler {
	return &ResultsHandler{aggregator: aggregator}
}

// GetResults handles GET /api/results
// Rows are ordered by vote count, then name.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.aggregator.Compute(r.Context())
	if err != nil {
		writeServiceError(w, err, "compute results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetSummary handles GET /api/results/summary
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.aggregator.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err, "compute summary")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
