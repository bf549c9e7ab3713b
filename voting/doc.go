// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the candidate roster, the vote ledger, and result
aggregation on top of database/sql.

# Components

  - Registry: candidate CRUD (List, Get, Add, Update, Delete)
  - Ledger: vote admission and the audit log (Cast, ListDetailed, Count)
  - Aggregator: per-candidate tallies and percentages (Compute, Summary)

Registry and Ledger take a Notifier that is called only after a write
succeeds:

	reg := voting.NewRegistry(db, hub)
	ledger := voting.NewLedger(db, hub, prometheus.DefaultRegisterer)

# Admission

One vote per network address. The votes.ip_address column is UNIQUE and
Cast performs a single INSERT, so two concurrent casts from the same
address cannot both succeed. The losing insert is reported as
ErrAlreadyVoted.

Cast does not check that the candidate exists, and deleting a candidate
does not remove its votes. Orphaned votes are excluded from ListDetailed
and Compute by their joins.

# Errors

  - ErrValidation: missing or blank required field
  - ErrAlreadyVoted: the address already has a vote
  - ErrNotFound: unknown candidate on Get/Update
  - ErrStorage: driver failure (the driver error is also wrapped)

Use errors.Is to classify.
*/
package voting
