package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrDocumentNotFound indicates that document was not found in collection
	ErrDocumentNotFound = errors.New("document not found")

	// ErrBranchNotFound indicates that branch record was not found
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that owner already has a branch with this name
	ErrBranchExists = errors.New("branch already exists")

	// ErrPullRequestNotFound indicates that pull request was not found
	ErrPullRequestNotFound = errors.New("pull request not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
