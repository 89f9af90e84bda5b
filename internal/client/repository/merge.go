package repository

import (
	"context"
	"fmt"

	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/merge"
	"github.com/iudanet/docsync/internal/models"
)

// MergeToBranch replays incoming commits on the local document
// Результат не сохраняется: кандидат передается в CommitMerge или отбрасывается.
func (r *repository) MergeToBranch(ctx context.Context, branch, objID string, incoming []models.Commit, opts MergeOptions) (*models.Document, merge.Report, error) {
	collection, err := r.collection(ctx, branch)
	if err != nil {
		return nil, merge.Report{}, err
	}

	unlock, err := r.locks.Lock(ctx, objID)
	if err != nil {
		return nil, merge.Report{}, fmt.Errorf("failed to lock document %s: %w", objID, err)
	}
	defer unlock()

	return r.mergeLocked(ctx, collection, objID, incoming, opts)
}

// CommitMerge persists a merge candidate
func (r *repository) CommitMerge(ctx context.Context, branch string, candidate *models.Document, report merge.Report, opts MergeOptions) (*models.Document, error) {
	if candidate == nil || candidate.ID == "" {
		return nil, fmt.Errorf("%w: merge candidate without id", ErrValidation)
	}

	collection, err := r.collection(ctx, branch)
	if err != nil {
		return nil, err
	}

	unlock, err := r.locks.Lock(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock document %s: %w", candidate.ID, err)
	}
	result, changed, err := r.commitMergeLocked(ctx, collection, candidate, report, opts)
	unlock()

	if err != nil {
		return nil, err
	}
	if changed {
		r.notifier.Notify(ctx, result)
	}
	return result, nil
}

// ApplyPull merges incoming commits and persists the result while holding the lock once
// При конфликтах ничего не сохраняется и возвращается отчет.
func (r *repository) ApplyPull(ctx context.Context, branch, objID string, incoming []models.Commit, opts MergeOptions) (*models.Document, merge.Report, error) {
	collection, err := r.collection(ctx, branch)
	if err != nil {
		return nil, merge.Report{}, err
	}

	unlock, err := r.locks.Lock(ctx, objID)
	if err != nil {
		return nil, merge.Report{}, fmt.Errorf("failed to lock document %s: %w", objID, err)
	}

	candidate, report, err := r.mergeLocked(ctx, collection, objID, incoming, opts)
	if err != nil {
		unlock()
		return nil, report, err
	}
	if report.HasConflicts() {
		unlock()
		r.logger.Info("Pull left conflicts, nothing persisted",
			"object_id", objID,
			"conflicts", len(report.Conflicts),
		)
		return candidate, report, nil
	}

	result, changed, err := r.commitMergeLocked(ctx, collection, candidate, report, opts)
	unlock()
	if err != nil {
		return nil, report, err
	}
	if changed {
		r.notifier.Notify(ctx, result)
	}
	return result, report, nil
}

// GetMergeReport previews a merge of commits without head or remote bookkeeping
func (r *repository) GetMergeReport(ctx context.Context, branch, objID string, commits []models.Commit) (merge.Report, error) {
	_, report, err := r.MergeToBranch(ctx, branch, objID, commits, MergeOptions{})
	return report, err
}

func (r *repository) mergeLocked(ctx context.Context, collection, objID string, incoming []models.Commit, opts MergeOptions) (*models.Document, merge.Report, error) {
	if len(incoming) > 0 {
		if err := models.VerifyChain(incoming, incoming[0].ParentHash); err != nil {
			return nil, merge.Report{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	stored, err := r.load(ctx, collection, objID)
	if err != nil {
		return nil, merge.Report{}, err
	}
	if stored == nil {
		stored = &models.Document{ID: objID, Fields: map[string]any{}, Meta: models.Meta{Owner: opts.Remote.Owner}}
		if stored.Meta.Owner == "" {
			stored.Meta.Owner = r.owner
		}
	} else if !r.acl.CanAccess(stored, r.owner, models.AccessWrite) {
		return nil, merge.Report{}, fmt.Errorf("%w: merge into %s", ErrAccessDenied, objID)
	}

	log := stored.Meta.Commits
	pending := pendingIncoming(log, incoming, r.startHead(stored, opts))
	local := localDivergence(log, incoming, pending, stored.Meta.Pulls, opts)

	for _, c := range pending {
		r.clock.Update(c.Timestamp)
	}

	tree, report := merge.MergeCommits(diff.Snapshot(stored), pending, local)
	report.BaseHash = log.LastHash()
	if len(incoming) > 0 {
		// pull-голова указывает на последний увиденный коммит, даже если он уже был в журнале
		report.Head = incoming[len(incoming)-1].ID
	}

	candidate := *stored
	diff.Restore(&candidate, tree)

	r.logger.Debug("Merge computed",
		"object_id", objID,
		"incoming", len(incoming),
		"pending", len(pending),
		"local", len(local),
		"conflicts", len(report.Conflicts),
	)
	return &candidate, report, nil
}

// startHead коммит входящей цепочки, после которого начинаются неприменённые коммиты
func (r *repository) startHead(stored *models.Document, opts MergeOptions) string {
	if opts.Head != "" {
		return opts.Head
	}
	if opts.Remote.Validate() == nil {
		return stored.Meta.Pulls.GetPullInformation(opts.Remote)
	}
	return ""
}

// pendingIncoming возвращает входящие коммиты после head, без уже имеющихся в журнале
func pendingIncoming(log models.CommitLog, incoming []models.Commit, head string) []models.Commit {
	from := 0
	if head != "" {
		for i := range incoming {
			if incoming[i].ID == head {
				from = i + 1
				break
			}
		}
	}

	pending := make([]models.Commit, 0, len(incoming)-from)
	for _, c := range incoming[from:] {
		if !log.Contains(c.ID) {
			pending = append(pending, c)
		}
	}
	return pending
}

// localDivergence возвращает локальные коммиты после общего предка.
// Предок: самый поздний в журнале из: переданного head, общего с входящей
// цепочкой коммита, родителя первого нового коммита и записанных Base/Push.
func localDivergence(log models.CommitLog, incoming, pending []models.Commit, pulls models.PullState, opts MergeOptions) []models.Commit {
	ancestor := -1
	mark := func(i int) {
		if i > ancestor {
			ancestor = i
		}
	}

	if opts.Head != "" {
		mark(log.IndexOf(opts.Head))
	}
	for _, c := range incoming {
		mark(log.IndexOf(c.ID))
	}
	if len(pending) > 0 && pending[0].ParentHash != "" {
		for i := range log {
			if log[i].Hash == pending[0].ParentHash {
				mark(i)
			}
		}
	}
	if opts.Remote.Validate() == nil {
		mark(log.IndexOf(pulls.GetBase(opts.Remote)))
		mark(log.IndexOf(pulls.GetPushInformation(opts.Remote)))
	}

	local := []models.Commit{}
	for _, c := range log[ancestor+1:] {
		if c.Source == models.SourceLocal {
			local = append(local, c)
		}
	}
	return local
}

func (r *repository) commitMergeLocked(ctx context.Context, collection string, candidate *models.Document, report merge.Report, opts MergeOptions) (*models.Document, bool, error) {
	stored, err := r.load(ctx, collection, candidate.ID)
	if err != nil {
		return nil, false, err
	}

	result := stored
	if result == nil {
		result = &models.Document{ID: candidate.ID, Fields: map[string]any{}, Meta: models.Meta{Owner: candidate.Meta.Owner}}
		if result.Meta.Owner == "" {
			result.Meta.Owner = r.owner
		}
	} else if !r.acl.CanAccess(stored, r.owner, models.AccessWrite) {
		return nil, false, fmt.Errorf("%w: merge into %s", ErrAccessDenied, candidate.ID)
	}

	if result.Meta.Commits.LastHash() != report.BaseHash {
		return nil, false, fmt.Errorf("%w: document %s moved past %q", ErrStaleMerge, candidate.ID, report.BaseHash)
	}

	current := diff.Snapshot(candidate)
	d := diff.Compute(diff.Snapshot(result), current)

	changed := d.DidChange()
	if changed {
		message := "merge"
		if report.Head != "" {
			message = fmt.Sprintf("merge %s", report.Head)
		}
		if opts.Prefix != "" {
			message = opts.Prefix + " " + message
		}

		commit, err := models.NewCommit(r.newID(), d, message, r.owner, r.clock.Tick(), result.Meta.Commits.LastHash(), models.SourceMerge)
		if err != nil {
			return nil, false, fmt.Errorf("failed to build merge commit: %w", err)
		}
		if err := result.Meta.Commits.Add(commit); err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		diff.Restore(result, current)
	}

	if opts.Remote.Validate() == nil {
		pulls := result.GetPulls()
		if report.Head != "" {
			pulls.UpdatePull(opts.Remote, report.Head)
		}
		pulls.UpdateBase(opts.Remote, result.Meta.Commits.Head())
	}

	if err := r.documents.UpsertDocument(ctx, collection, result); err != nil {
		return nil, false, fmt.Errorf("failed to persist document: %w", err)
	}
	if changed {
		r.persistClock(ctx)
	}

	r.logger.Debug("Merge committed",
		"object_id", result.ID,
		"head", report.Head,
		"changed", changed,
	)
	return result, changed, nil
}
