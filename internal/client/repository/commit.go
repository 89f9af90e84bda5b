package repository

import (
	"context"
	"fmt"

	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/validation"
)

// Commit records the difference between the stored document and doc as a new commit
// Неинициализированный документ получает новый id. Если изменений нет, возвращается
// сохраненная версия без добавления коммита. Повтор с тем же commitID идемпотентен.
func (r *repository) Commit(ctx context.Context, branch string, doc *models.Document, message, commitID string) (*models.Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrValidation)
	}
	if err := validation.ValidateFields(doc.Fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	doc.Init()

	collection, err := r.collection(ctx, branch)
	if err != nil {
		return nil, err
	}

	unlock, err := r.locks.Lock(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock document %s: %w", doc.ID, err)
	}
	result, changed, err := r.commitLocked(ctx, collection, doc, message, commitID)
	unlock()

	if err != nil {
		return nil, err
	}

	// Подписчики вызываются вне блокировки: обработчик может сам делать коммит
	if changed {
		r.notifier.Notify(ctx, result)
	}
	return result, nil
}

func (r *repository) commitLocked(ctx context.Context, collection string, doc *models.Document, message, commitID string) (*models.Document, bool, error) {
	stored, err := r.load(ctx, collection, doc.ID)
	if err != nil {
		return nil, false, err
	}

	var result *models.Document
	if stored == nil {
		result = &models.Document{ID: doc.ID, Meta: models.Meta{Owner: doc.Meta.Owner}}
		if result.Meta.Owner == "" {
			result.Meta.Owner = r.owner
		}
		// права нового документа берутся из самого документа
		candidate := *result
		candidate.Meta.Users, candidate.Meta.Groups = doc.Meta.Users, doc.Meta.Groups
		if !r.acl.CanAccess(&candidate, r.owner, models.AccessWrite) {
			return nil, false, fmt.Errorf("%w: create %s", ErrAccessDenied, doc.ID)
		}
	} else {
		if !r.acl.CanAccess(stored, r.owner, models.AccessWrite) {
			return nil, false, fmt.Errorf("%w: write %s", ErrAccessDenied, doc.ID)
		}
		if commitID != "" && stored.Meta.Commits.Contains(commitID) {
			r.logger.Debug("Commit already applied", "object_id", doc.ID, "commit_id", commitID)
			return stored, false, nil
		}
		result = stored
	}

	base := diff.Snapshot(result)
	current := diff.Snapshot(doc)
	d := diff.Compute(base, current)

	if !d.DidChange() {
		if stored != nil {
			return stored, false, nil
		}
		// Пустой новый документ сохраняется без коммита
		diff.Restore(result, current)
		if err := r.documents.UpsertDocument(ctx, collection, result); err != nil {
			return nil, false, fmt.Errorf("failed to persist document: %w", err)
		}
		return result, false, nil
	}

	if commitID == "" {
		commitID = r.newID()
	}
	commit, err := models.NewCommit(commitID, d, message, r.owner, r.clock.Tick(), result.Meta.Commits.LastHash(), models.SourceLocal)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build commit: %w", err)
	}

	// result указывает на свежо прочитанную копию, поэтому изменения до Upsert
	// не видны никому, и при ошибке хранилища цепочка не продвигается
	if err := result.Meta.Commits.Add(commit); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	diff.Restore(result, current)

	if err := r.documents.UpsertDocument(ctx, collection, result); err != nil {
		return nil, false, fmt.Errorf("failed to persist document: %w", err)
	}
	r.persistClock(ctx)

	r.logger.Debug("Commit appended",
		"object_id", result.ID,
		"commit_id", commit.ID,
		"changes", len(d.Changes),
	)
	return result, true, nil
}
