// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the QuickVote API server.

QuickVote runs a single live election at one station: an admin maintains the
roster of candidates, each network address may vote once, and every
connected screen updates as soon as a vote lands.

# Starting the Server

With no configuration the server listens on 3001 and keeps its data in
voting.db:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

Print a new admin key and exit:

	go run . -gen-admin-key

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_URL (-d): Database location (default: file:voting.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_KEY (--admin-key): Guards roster changes and the audit log
  - PUBLIC_DIR (--public): Static ballot and admin pages
  - SHUTDOWN_TIMEOUT (--shutdown-timeout): Graceful shutdown limit (default: 30s)
  - DEBUG (--debug): Debug logging

A .env file in the working directory is read first.

# Architecture

  - voting: Candidate registry, vote ledger, results aggregation
  - notify: Live-update fan-out to connected observers
  - handlers: HTTP request handlers
  - router: Route definitions using chi
  - middleware: CORS, logging, admin gate, JSON helpers
  - export: xlsx rendering of the audit log
  - models: Request/response types
  - auth: Admin key generation and validation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
