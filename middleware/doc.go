// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/api/results", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). The wrapped writer still supports flushing and hijacking.

# CORS Middleware

	r.Use(middleware.CORS)

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key, and exposes Content-Disposition
so the export filename reaches the browser.

# Admin Gate

	admin := middleware.RequireAdmin(cfg.AdminKey)
	r.Post("/api/candidates", admin(h.CreateCandidate))

An empty key leaves the route open.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ErrorResponseWithCode(w, http.StatusBadRequest, models.CodeAlreadyVoted, msg)

# Client IP Extraction

	ip := middleware.GetClientIP(r)

This is the voter identity: first X-Forwarded-For hop, then X-Real-IP,
then RemoteAddr without the port.
*/
package middleware
