package domain

import "context"

// Submission is the admin view of a stored profile. Timestamp is Unix milliseconds.
type Submission struct {
	ID        string `json:"id"`
	Focus     string `json:"focus"`
	Ecosystem string `json:"ecosystem"`
	Project   string `json:"project"`
	Approach  string `json:"approach"`
	Motto     string `json:"motto"`
	Timestamp int64  `json:"timestamp"`
}

type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
	Count       int          `json:"count"`
}

type AdminUsecase interface {
	// ListSubmissions dumps every stored profile, newest first, when secret matches.
	ListSubmissions(ctx context.Context, secret string) (*SubmissionList, error)
}
