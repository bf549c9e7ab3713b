package models

import "time"

// Live-update event kinds
const (
	EventCandidatesUpdated = "candidates-updated"
	EventVoteSubmitted     = "vote-submitted"
)

// Error codes carried alongside ErrorResponse so clients can tell 400s apart
const (
	CodeValidation   = "validation"
	CodeAlreadyVoted = "already_voted"
	CodeNotFound     = "not_found"
)

// AlreadyVotedMessage is matched by the ballot page to remember the vote locally.
const AlreadyVotedMessage = "You have already voted from this device/network."

// Request types

type CandidateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CastVoteRequest struct {
	CandidateID int64 `json:"candidateId"`
}

// Response types

type DeleteCandidateResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type CastVoteResponse struct {
	Message string `json:"message"`
	VoteID  int64  `json:"voteId"`
}

// Domain types

type Candidate struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CandidateWithCount struct {
	Candidate
	VoteCount int64 `json:"vote_count"`
}

type Vote struct {
	ID           int64     `json:"id"`
	CandidateID  int64     `json:"candidate_id"`
	VoterAddress string    `json:"ip_address"`
	Timestamp    time.Time `json:"timestamp"`
}

// VoteDetail is one audit row: who voted for whom and when.
type VoteDetail struct {
	IPAddress     string    `json:"ip_address"`
	CandidateName string    `json:"candidate_name"`
	Timestamp     time.Time `json:"timestamp"`
}

// ResultRow is derived from the ledger on every read and never stored.
type ResultRow struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	VoteCount   int64   `json:"vote_count"`
	Percentage  float64 `json:"percentage"`
}

type ResultSummary struct {
	TotalVotes int64       `json:"total_votes"`
	Candidates []ResultRow `json:"candidates"`
}

// LiveEvent is the frame pushed to observers. It carries no state; clients re-fetch.
type LiveEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
