// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CandidateRequest: name, description, image_url
  - CastVoteRequest: candidateId

# Response Types

Types for JSON responses:

  - DeleteCandidateResponse: message, changes
  - CastVoteResponse: message, voteId
  - ErrorResponse: error, message, code

# Domain Types

  - Candidate: roster entry (name, symbol/description, image)
  - CandidateWithCount: candidate plus its current vote_count
  - Vote: one ledger entry, keyed by voter network address
  - VoteDetail: audit row joined with the candidate name
  - ResultRow: per-candidate tally with percentage
  - LiveEvent: payload-free change signal sent to observers

# Constants

Event kinds:

	EventCandidatesUpdated = "candidates-updated"
	EventVoteSubmitted     = "vote-submitted"

Error codes:

	CodeValidation   = "validation"
	CodeAlreadyVoted = "already_voted"
	CodeNotFound     = "not_found"
*/
package models
