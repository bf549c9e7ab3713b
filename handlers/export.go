// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickvote/export"
	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/voting"
)

type ExportHandler struct {
	ledger     *voting.Ledger
	aggregator *voting.Aggregator
}

func NewExportHandler(ledger *voting.Ledger, aggregator *voting.Aggregator) *ExportHandler {
	return &ExportHandler{ledger: ledger, aggregator: aggregator}
}

// ExportExcel handles GET /api/export/excel
// The workbook is built in memory so a failure can still produce a JSON error.
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	details, err := h.ledger.ListDetailed(r.Context())
	if err != nil {
		writeServiceError(w, err, "export votes")
		return
	}

	results, err := h.aggregator.Compute(r.Context())
	if err != nil {
		writeServiceError(w, err, "export summary")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, details, results); err != nil {
		slog.Error("failed to render workbook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	filename := export.Filename(time.Now())
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("export interrupted", "error", err)
		return
	}

	slog.Info("audit exported", "votes", len(details), "candidates", len(results), "file", filename)
}
