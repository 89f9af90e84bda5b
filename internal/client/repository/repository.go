// Package repository is the single entry point for reading and mutating documents.
// Every commit log append and every merge goes through it under a per-document lock.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iudanet/docsync/internal/acl"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/merge"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/notify"
	"github.com/iudanet/docsync/internal/query"
)

var (
	// ErrAccessDenied ACL отклонил операцию; не повторяется
	ErrAccessDenied = errors.New("access denied")
	// ErrNotFound ветка или документ не существует
	ErrNotFound = errors.New("not found")
	// ErrValidation некорректный документ, коммит или аргументы
	ErrValidation = errors.New("validation failed")
	// ErrStaleMerge кандидат слияния построен на устаревшем состоянии документа
	ErrStaleMerge = errors.New("merge candidate is stale")
)

//go:generate moq -out repository_mock.go . Repository

// Repository defines document operations on branches of the current owner
type Repository interface {
	// Setup creates the default branch of the owner if it doesn't exist
	Setup(ctx context.Context) error

	// Get returns a document after a read access check
	Get(ctx context.Context, branch, id string) (*models.Document, error)

	// Search returns readable documents matching the filter, ordered and paginated
	Search(ctx context.Context, branch string, filter query.Filter, projections []string, sort []query.SortField, offset, limit int) ([]*models.Document, error)

	// Commit records the difference between the stored and the given document
	Commit(ctx context.Context, branch string, doc *models.Document, message, commitID string) (*models.Document, error)

	// MergeToBranch replays incoming commits on the local document without persisting the result
	MergeToBranch(ctx context.Context, branch, objID string, incoming []models.Commit, opts MergeOptions) (*models.Document, merge.Report, error)

	// CommitMerge persists a merge candidate produced by MergeToBranch
	CommitMerge(ctx context.Context, branch string, candidate *models.Document, report merge.Report, opts MergeOptions) (*models.Document, error)

	// ApplyPull merges and persists incoming commits under one lock; nothing is persisted on conflicts
	ApplyPull(ctx context.Context, branch, objID string, incoming []models.Commit, opts MergeOptions) (*models.Document, merge.Report, error)

	// ConfirmMergeToBranch advances the push head after the remote accepted commits
	ConfirmMergeToBranch(ctx context.Context, branch, objID string, commits []models.Commit, remote models.Coordinate) error

	// GetMergeReport previews the conflicts MergeToBranch would report
	GetMergeReport(ctx context.Context, branch, objID string, commits []models.Commit) (merge.Report, error)

	// PendingPush returns local commits not yet confirmed by the remote coordinate
	PendingPush(ctx context.Context, branch, objID string, remote models.Coordinate) ([]models.Commit, error)
}

// MergeOptions параметры слияния с удаленной веткой.
type MergeOptions struct {
	// Prefix префикс сообщения merge-коммита
	Prefix string
	// Head коммит входящей цепочки, после которого начинаются новые коммиты
	Head string
	// Remote координата, для которой запоминаются pull/base головы
	Remote models.Coordinate
}

// Deps зависимости репозитория.
type Deps struct {
	Documents storage.DocumentStore
	Branches  storage.BranchStorage
	Metadata  storage.MetadataStorage
	ACL       *acl.Checker
	Notifier  *notify.Registry
	Clock     *merge.CommitClock
}

type repository struct {
	documents storage.DocumentStore
	branches  storage.BranchStorage
	metadata  storage.MetadataStorage
	acl       *acl.Checker
	notifier  *notify.Registry
	clock     *merge.CommitClock
	locks     *keyedMutex
	logger    *slog.Logger
	newID     func() string
	owner     string
}

// NewRepository creates a repository acting on behalf of owner
func NewRepository(owner string, deps Deps, logger *slog.Logger) Repository {
	if deps.ACL == nil {
		deps.ACL = acl.NewChecker(nil)
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewRegistry(logger)
	}
	if deps.Clock == nil {
		deps.Clock = merge.NewCommitClock()
	}
	return &repository{
		documents: deps.Documents,
		branches:  deps.Branches,
		metadata:  deps.Metadata,
		acl:       deps.ACL,
		notifier:  deps.Notifier,
		clock:     deps.Clock,
		locks:     newKeyedMutex(),
		logger:    logger,
		newID:     func() string { return ulid.Make().String() },
		owner:     owner,
	}
}

// Setup creates the default branch of the owner and restores the commit clock
func (r *repository) Setup(ctx context.Context) error {
	branch := &models.Branch{
		CreatedAt:  time.Now().UTC(),
		Name:       models.DefaultBranch,
		Owner:      r.owner,
		Collection: models.CollectionName(r.owner, models.DefaultBranch),
		Kind:       models.BranchLocal,
	}
	err := r.branches.CreateBranch(ctx, branch)
	if err != nil && !errors.Is(err, storage.ErrBranchExists) {
		return fmt.Errorf("failed to create default branch: %w", err)
	}
	if err == nil {
		r.logger.Info("Default branch created", "owner", r.owner, "branch", branch.Name)
	}

	if r.metadata != nil {
		ts, err := r.metadata.GetClockTimestamp(ctx)
		if err != nil {
			return fmt.Errorf("failed to restore commit clock: %w", err)
		}
		r.clock.Update(ts)
	}

	return nil
}

// Get returns a document of the branch
func (r *repository) Get(ctx context.Context, branch, id string) (*models.Document, error) {
	collection, err := r.collection(ctx, branch)
	if err != nil {
		return nil, err
	}

	doc, err := r.load(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document %s", ErrNotFound, id)
	}

	if !r.acl.CanAccess(doc, r.owner, models.AccessRead) {
		return nil, fmt.Errorf("%w: read %s", ErrAccessDenied, id)
	}
	return doc, nil
}

// Search returns readable documents of the branch
// Пагинация применяется после проверки доступа, чтобы страницы не "проседали".
func (r *repository) Search(ctx context.Context, branch string, filter query.Filter, projections []string, sort []query.SortField, offset, limit int) ([]*models.Document, error) {
	q := query.Query{Filter: filter, Sort: sort, Offset: offset, Limit: limit}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	collection, err := r.collection(ctx, branch)
	if err != nil {
		return nil, err
	}

	found, err := r.documents.FindDocuments(ctx, collection, query.Query{Filter: filter, Sort: sort})
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	readable := make([]*models.Document, 0, len(found))
	for _, doc := range found {
		if r.acl.CanAccess(doc, r.owner, models.AccessRead) {
			readable = append(readable, doc)
		}
	}

	lo, hi := query.Page(len(readable), offset, limit)
	page := readable[lo:hi]
	if len(projections) > 0 {
		for _, doc := range page {
			doc.Fields = query.Project(doc.Fields, projections)
		}
	}

	r.logger.Debug("Search completed", "branch", branch, "matched", len(found), "returned", len(page))
	return page, nil
}

// collection возвращает коллекцию ветки владельца
func (r *repository) collection(ctx context.Context, branch string) (string, error) {
	b, err := r.branches.GetBranch(ctx, r.owner, branch)
	if errors.Is(err, storage.ErrBranchNotFound) {
		return "", fmt.Errorf("%w: branch %s", ErrNotFound, branch)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	return b.Collection, nil
}

// load читает документ; nil без ошибки, если документа нет
func (r *repository) load(ctx context.Context, collection, id string) (*models.Document, error) {
	doc, err := r.documents.GetDocument(ctx, collection, id)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

// persistClock сохраняет часы коммитов; ошибка не прерывает операцию
func (r *repository) persistClock(ctx context.Context) {
	if r.metadata == nil {
		return
	}
	if err := r.metadata.SaveClockTimestamp(ctx, r.clock.Last()); err != nil {
		r.logger.Warn("Failed to persist commit clock", "error", err)
	}
}
