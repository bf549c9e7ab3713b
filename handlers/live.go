// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quickvote/middleware"
	"github.com/danielhkuo/quickvote/notify"
)

const (
	// DefaultHeartbeat is how often idle live connections are pinged
	DefaultHeartbeat = 30 * time.Second

	writeWait = 10 * time.Second
)

// LiveHandler pushes change signals to observers over WebSocket or SSE.
// Observers re-fetch state on every signal; events carry no payload.
type LiveHandler struct {
	notifier  *notify.Notifier
	upgrader  websocket.Upgrader
	heartbeat time.Duration
}

func NewLiveHandler(notifier *notify.Notifier) *LiveHandler {
	return &LiveHandler{
		notifier: notifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The ballot page may be served from another origin during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		heartbeat: DefaultHeartbeat,
	}
}

// WithHeartbeat overrides the keepalive interval
func (h *LiveHandler) WithHeartbeat(d time.Duration) *LiveHandler {
	h.heartbeat = d
	return h
}

// WebSocket handles GET /ws
func (h *LiveHandler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	id, events := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(id)

	slog.Info("observer connected", "conn_id", connID, "transport", "websocket", "remote", middleware.GetClientIP(r))

	// Observers never send anything meaningful; reading keeps control frames
	// flowing and tells us when the peer goes away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			slog.Info("observer disconnected", "conn_id", connID)
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("observer ping failed", "conn_id", connID, "error", err)
				return
			}
		case evt, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Notifier shut down
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				slog.Debug("observer write failed", "conn_id", connID, "error", err)
				return
			}
		}
	}
}

// Stream handles GET /api/events as a server-sent event stream
func (h *LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "streaming not supported")
		return
	}
	flusher.Flush()

	connID := uuid.NewString()
	id, events := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(id)

	slog.Info("observer connected", "conn_id", connID, "transport", "sse", "remote", middleware.GetClientIP(r))

	if err := sendSSEEvent(w, flusher, "connected", map[string]string{"status": "connected"}); err != nil {
		slog.Debug("observer disconnected during connect", "conn_id", connID, "error", err)
		return
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("observer disconnected", "conn_id", connID)
			return

		case <-heartbeat.C:
			if err := sendSSEEvent(w, flusher, "heartbeat", map[string]any{}); err != nil {
				slog.Debug("observer disconnected during heartbeat", "conn_id", connID, "error", err)
				return
			}

		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := sendSSEEvent(w, flusher, evt.Type, evt); err != nil {
				slog.Debug("observer disconnected during event", "conn_id", connID, "error", err)
				return
			}
		}
	}
}

// sendSSEEvent writes one event frame and flushes it.
// Returns an error if the write fails (e.g., client disconnected).
func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, eventType string, data any) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.Warn("failed to marshal SSE data", "error", err)
		return nil
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, dataBytes); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	flusher.Flush()
	return nil
}

