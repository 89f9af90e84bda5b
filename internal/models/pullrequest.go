package models

import "time"

// PullRequestStatus статус предложения слияния.
type PullRequestStatus int

const (
	PullRequestPending PullRequestStatus = iota + 1
	PullRequestAccepted
	PullRequestRejected
)

// String returns the name of the status.
func (s PullRequestStatus) String() string {
	switch s {
	case PullRequestPending:
		return "pending"
	case PullRequestAccepted:
		return "accepted"
	case PullRequestRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// PullRequest предложение слияния удаленных коммитов в локальную ветку.
// Commits не меняются после создания.
type PullRequest struct {
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	ID          string            `json:"id"`
	LocalBranch string            `json:"local_branch"`
	Reference   string            `json:"reference,omitempty"`
	Head        string            `json:"head,omitempty"`
	Remote      Coordinate        `json:"remote"`
	Commits     []Commit          `json:"commits"`
	Status      PullRequestStatus `json:"status"`
}
