// Package pullrequests keeps proposals to merge remote commits into a local branch.
// The ledger never merges anything itself; a reviewer accepts or rejects entries.
package pullrequests

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/validation"
)

var (
	// ErrNotFound запись не найдена
	ErrNotFound = storage.ErrPullRequestNotFound
	// ErrInvalidTransition статус меняется только из Pending
	ErrInvalidTransition = errors.New("invalid pull request status transition")
	// ErrValidation некорректные аргументы записи
	ErrValidation = errors.New("invalid pull request")
)

// Ledger реестр pull request-ов, хранимый по имени локальной ветки.
type Ledger struct {
	store  storage.PullRequestStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewLedger creates a ledger on top of storage
func NewLedger(store storage.PullRequestStorage, logger *slog.Logger) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Add creates a pending entry for the commits proposed by a remote coordinate
func (l *Ledger) Add(ctx context.Context, localBranch, remoteOwner, remoteBranch, remoteObjectID, reference string, commits []models.Commit, head string) (*models.PullRequest, error) {
	if err := validation.ValidateBranchName(localBranch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	remote := models.Coordinate{Owner: remoteOwner, Branch: remoteBranch, ObjectID: remoteObjectID}
	if err := remote.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validation.ValidateObjectID(remoteObjectID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("%w: no commits", ErrValidation)
	}
	if err := models.VerifyChain(commits, commits[0].ParentHash); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if head != "" && !containsCommit(commits, head) {
		return nil, fmt.Errorf("%w: head %s is not among the commits", ErrValidation, head)
	}

	now := l.now().UTC()
	pr := &models.PullRequest{
		CreatedAt:   now,
		UpdatedAt:   now,
		ID:          uuid.New().String(),
		LocalBranch: localBranch,
		Reference:   reference,
		Head:        head,
		Remote:      remote,
		Commits:     append([]models.Commit(nil), commits...),
		Status:      models.PullRequestPending,
	}

	if err := l.store.SavePullRequest(ctx, pr); err != nil {
		return nil, fmt.Errorf("failed to save pull request: %w", err)
	}

	l.logger.Info("Pull request created",
		"id", pr.ID,
		"branch", localBranch,
		"remote", remote.Key(),
		"commits", len(commits),
	)
	return pr, nil
}

// Get returns an entry of the local branch
func (l *Ledger) Get(ctx context.Context, localBranch, id string) (*models.PullRequest, error) {
	pr, err := l.store.GetPullRequest(ctx, localBranch, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request %s: %w", id, err)
	}
	return pr, nil
}

// List returns entries of the local branch ordered by creation time
func (l *Ledger) List(ctx context.Context, localBranch string) ([]*models.PullRequest, error) {
	prs, err := l.store.ListPullRequests(ctx, localBranch)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}
	return prs, nil
}

// Accept marks a pending entry as accepted
func (l *Ledger) Accept(ctx context.Context, localBranch, id string) (*models.PullRequest, error) {
	return l.transition(ctx, localBranch, id, models.PullRequestAccepted)
}

// Reject marks a pending entry as rejected
func (l *Ledger) Reject(ctx context.Context, localBranch, id string) (*models.PullRequest, error) {
	return l.transition(ctx, localBranch, id, models.PullRequestRejected)
}

func (l *Ledger) transition(ctx context.Context, localBranch, id string, status models.PullRequestStatus) (*models.PullRequest, error) {
	pr, err := l.Get(ctx, localBranch, id)
	if err != nil {
		return nil, err
	}
	if pr.Status != models.PullRequestPending {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, pr.Status, status)
	}

	// меняются только статус и время; коммиты остаются прежними
	pr.Status = status
	pr.UpdatedAt = l.now().UTC()
	if err := l.store.SavePullRequest(ctx, pr); err != nil {
		return nil, fmt.Errorf("failed to save pull request: %w", err)
	}

	l.logger.Info("Pull request updated", "id", id, "status", status.String())
	return pr, nil
}

func containsCommit(commits []models.Commit, id string) bool {
	for i := range commits {
		if commits[i].ID == id {
			return true
		}
	}
	return false
}
