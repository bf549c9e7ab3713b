// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/models"
	"github.com/danielhkuo/quickvote/voting"
)

// writeServiceError converts a voting error into the matching HTTP response.
// Storage faults are logged and reported without detail.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	var verr *voting.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, models.CodeValidation, verr.Message)
	case errors.Is(err, voting.ErrAlreadyVoted):
		middleware.ErrorResponseWithCode(w, http.StatusBadRequest, models.CodeAlreadyVoted, models.AlreadyVotedMessage)
	case errors.Is(err, voting.ErrNotFound):
		middleware.ErrorResponseWithCode(w, http.StatusNotFound, models.CodeNotFound, "Candidate not found")
	default:
		slog.Error("storage fault", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// candidateID reads the {id} path parameter
func candidateID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
