// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connection setup and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite (pure Go, embedded). A busy_timeout pragma
    is appended to the DSN and the pool is capped at one connection.
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables for the chosen dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - candidates: roster entries
  - votes: the ledger; ip_address is UNIQUE, which is the one-vote-per-address gate

# Relationships

	candidates 1──* votes (by candidate_id, not enforced)

There is no foreign key. Deleting a candidate leaves orphaned votes, which
are excluded from audit listings by inner joins.
*/
package db
