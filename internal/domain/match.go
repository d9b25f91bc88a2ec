package domain

import (
	"context"
	"encoding/json"
)

// MatchRequest is the body of POST /match. Identity is resolved from the first
// non-empty of Identity, WalletAddress, FID.
type MatchRequest struct {
	Identity      string  `json:"identity"`
	WalletAddress string  `json:"walletAddress"`
	FID           uint64  `json:"fid"`
	Answers       Answers `json:"answers"`
}

// Match is one scored candidate, computed per request and never persisted
type Match struct {
	Identity      string   `json:"address"`
	Score         int      `json:"score"`
	Commonalities []string `json:"commonalities"`
}

// MatchResult is either a (possibly empty) match list or the NoMatches sentinel.
type MatchResult struct {
	Matches   []Match `json:"matches,omitempty"`
	NoMatches bool    `json:"noMatches,omitempty"`
	Message   string  `json:"message,omitempty"`
}

type MatchUsecase interface {
	// Submit stores the submitter's profile and returns their best matches.
	Submit(ctx context.Context, req *MatchRequest) (*MatchResult, error)
}

// MarshalJSON emits exactly one shape: {"matches":[...]} (never null) or
// {"noMatches":true,"message":...}.
func (r MatchResult) MarshalJSON() ([]byte, error) {
	if r.NoMatches {
		return json.Marshal(struct {
			NoMatches bool   `json:"noMatches"`
			Message   string `json:"message"`
		}{true, r.Message})
	}
	matches := r.Matches
	if matches == nil {
		matches = []Match{}
	}
	return json.Marshal(struct {
		Matches []Match `json:"matches"`
	}{matches})
}
