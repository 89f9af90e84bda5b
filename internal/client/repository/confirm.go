package repository

import (
	"context"
	"fmt"

	"github.com/iudanet/docsync/internal/models"
)

// ConfirmMergeToBranch advances the push head of the remote coordinate to the last commit
// Повторное подтверждение той же головы ничего не меняет; подтверждение коммита,
// который в журнале раньше текущей push-головы, игнорируется.
func (r *repository) ConfirmMergeToBranch(ctx context.Context, branch, objID string, commits []models.Commit, remote models.Coordinate) error {
	if err := remote.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(commits) == 0 {
		return nil
	}

	collection, err := r.collection(ctx, branch)
	if err != nil {
		return err
	}

	unlock, err := r.locks.Lock(ctx, objID)
	if err != nil {
		return fmt.Errorf("failed to lock document %s: %w", objID, err)
	}
	defer unlock()

	doc, err := r.load(ctx, collection, objID)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: document %s", ErrNotFound, objID)
	}
	if !r.acl.CanAccess(doc, r.owner, models.AccessWrite) {
		return fmt.Errorf("%w: confirm %s", ErrAccessDenied, objID)
	}

	last := commits[len(commits)-1].ID
	log := doc.Meta.Commits
	target := log.IndexOf(last)
	if target < 0 {
		return fmt.Errorf("%w: commit %s is not in the log of %s", ErrValidation, last, objID)
	}

	pulls := doc.GetPulls()
	current := pulls.GetPushInformation(remote)
	if current == last {
		return nil
	}
	if log.IndexOf(current) > target {
		r.logger.Debug("Ignoring stale push confirmation",
			"object_id", objID,
			"confirmed", last,
			"push_head", current,
		)
		return nil
	}

	pulls.UpdatePush(remote, last)
	if err := r.documents.UpsertDocument(ctx, collection, doc); err != nil {
		return fmt.Errorf("failed to persist push head: %w", err)
	}

	r.logger.Debug("Push confirmed", "object_id", objID, "remote", remote.Key(), "head", last)
	return nil
}

// PendingPush returns local commits after the push head of the remote coordinate
func (r *repository) PendingPush(ctx context.Context, branch, objID string, remote models.Coordinate) ([]models.Commit, error) {
	doc, err := r.Get(ctx, branch, objID)
	if err != nil {
		return nil, err
	}
	return doc.Meta.Commits.Filtered(doc.Meta.Pulls.GetPushInformation(remote), ""), nil
}
