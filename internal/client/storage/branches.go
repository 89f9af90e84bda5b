package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

// BranchStorage defines persistence of branch records
type BranchStorage interface {
	// CreateBranch stores a new branch
	// Returns ErrBranchExists if owner already has a branch with this name
	CreateBranch(ctx context.Context, branch *models.Branch) error

	// GetBranch returns a branch of the owner
	// Returns ErrBranchNotFound if branch doesn't exist
	GetBranch(ctx context.Context, owner, name string) (*models.Branch, error)

	// ListBranches returns all branches of the owner ordered by name
	ListBranches(ctx context.Context, owner string) ([]*models.Branch, error)

	// DeleteBranch removes a branch record
	// Returns ErrBranchNotFound if branch doesn't exist
	DeleteBranch(ctx context.Context, owner, name string) error
}
