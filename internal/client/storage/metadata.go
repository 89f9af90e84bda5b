package storage

import "context"

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveClockTimestamp saves the last commit clock value so timestamps stay monotonic across restarts
	SaveClockTimestamp(ctx context.Context, timestamp int64) error

	// GetClockTimestamp returns the saved commit clock value
	// Returns 0 if nothing was saved yet
	GetClockTimestamp(ctx context.Context) (int64, error)

	// SaveCurrentBranch saves the checked out branch of the owner
	SaveCurrentBranch(ctx context.Context, owner, branch string) error

	// GetCurrentBranch returns the checked out branch of the owner
	// Returns empty string if no branch was checked out yet
	GetCurrentBranch(ctx context.Context, owner string) (string, error)
}
