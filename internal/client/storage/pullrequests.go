package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

// PullRequestStorage defines persistence of the pull-request ledger keyed by local branch
type PullRequestStorage interface {
	// SavePullRequest stores or updates a pull request
	SavePullRequest(ctx context.Context, pr *models.PullRequest) error

	// GetPullRequest returns a pull request of the local branch
	// Returns ErrPullRequestNotFound if it doesn't exist
	GetPullRequest(ctx context.Context, localBranch, id string) (*models.PullRequest, error)

	// ListPullRequests returns pull requests of the local branch ordered by creation time
	ListPullRequests(ctx context.Context, localBranch string) ([]*models.PullRequest, error)

	// DeletePullRequests removes all pull requests of the local branch
	DeletePullRequests(ctx context.Context, localBranch string) error
}
